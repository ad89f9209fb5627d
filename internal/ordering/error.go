package ordering

import "errors"

var (
	ErrUnauthenticated = errors.New("sign in to place an order")
	ErrAddressRequired = errors.New("delivery address is required")
	ErrSizeInvalid     = errors.New("size is not offered for this product")
)
