package store

import (
	"errors"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/apperr"
)

var (
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrNoCustomer        = errors.New("no customer selected")
	ErrNotCustomer       = errors.New("account is not a customer account")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrNoDraft           = errors.New("no pending status change")
	ErrInvalidQuantity   = errors.New("quantity must be between 1 and 99")
)

func publicError(err error) string {
	if ae, ok := apperr.As(err); ok {
		return ae.PublicMsg
	}
	return err.Error()
}
