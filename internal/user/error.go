package user

import "errors"

var (
	// -- Validation & Input --
	ErrEmailInvalid     = errors.New("enter a valid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// -- Authentication --
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many sign-in attempts, try again later")
)
