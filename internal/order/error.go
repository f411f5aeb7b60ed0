package order

import "errors"

var (
	// -- Validation & Input --
	ErrMissingCustomerInfo = errors.New("customer name, phone and address are required")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidPayment      = errors.New("invalid payment method")
	ErrInvalidStatus       = errors.New("invalid order status")

	// -- Authorization --
	ErrAdminOnly = errors.New("admin role required")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrIllegalTransition = errors.New("illegal status transition")
)
