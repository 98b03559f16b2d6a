package orders

import "errors"

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrMissingCustomer = errors.New("order has no customer")
	ErrAuditDisabled   = errors.New("order audit store not configured")
)
