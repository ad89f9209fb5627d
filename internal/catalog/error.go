package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired        = errors.New("product name is required")
	ErrPriceInvalid        = errors.New("price must be a positive number")
	ErrDescriptionRequired = errors.New("product description is required")
	ErrImageRequired       = errors.New("product image is required")
)
