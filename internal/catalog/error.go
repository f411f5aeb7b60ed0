package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidProduct = errors.New("product name, price and image are required")

	// -- Authorization --
	ErrAdminOnly = errors.New("admin role required")
)
