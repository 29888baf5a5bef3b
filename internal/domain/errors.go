package domain

import "errors"

// Error taxonomy surfaced to callers. The HTTP layer maps these to
// status codes with errors.Is; services wrap them with context.
var (
	ErrNotFound           = errors.New("entity not found")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateKey       = errors.New("unique constraint violated")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOrderNotEditable   = errors.New("order is not editable")
	ErrInactiveStaff      = errors.New("staff member is inactive")
	ErrProductInactive    = errors.New("product is inactive")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrCannotCancelPaid   = errors.New("cannot cancel a paid order")
	ErrAlreadyPaid        = errors.New("order already paid")
	ErrCashierNotOpen     = errors.New("cashier session is not open")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
