package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/middleware"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/validation"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/invoice"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/apperr"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/store"
)

// classify turns domain sentinels into public errors. Backend errors are
// already AppErrors and pass through.
func classify(err error) error {
	if _, ok := apperr.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return &apperr.AppError{Kind: apperr.Unavailable, PublicMsg: "The request was cancelled.", Err: err}
	case errors.Is(err, store.ErrNotLoggedIn):
		return apperr.UnauthorizedErr("Please log in to continue.")
	case errors.Is(err, status.ErrInvalidTransition):
		return apperr.InvalidErr("That status change is not allowed.", nil)
	case errors.Is(err, status.ErrNoChange):
		return apperr.InvalidErr("The order already has that status.", nil)
	case errors.Is(err, store.ErrNoCustomer):
		return apperr.InvalidErr("Select a customer first.", nil)
	case errors.Is(err, store.ErrNotCustomer):
		return apperr.InvalidErr("That account is not a customer account.", nil)
	case errors.Is(err, store.ErrInsufficientStock):
		return apperr.InvalidErr("Not enough stock for that quantity.", nil)
	case errors.Is(err, store.ErrInvalidQuantity):
		return apperr.InvalidErr("Quantity must be between 1 and 99.", map[string]string{"quantity": "Must be between 1 and 99."})
	case errors.Is(err, store.ErrNoDraft):
		return apperr.InvalidErr("There is no pending status change.", nil)
	case errors.Is(err, orders.ErrEmptyOrder):
		return apperr.InvalidErr("Add at least one book to the order.", nil)
	case errors.Is(err, users.ErrInvalidAccountNumber):
		return apperr.InvalidErr("Enter an account number like CU-1001.", map[string]string{"accountNumber": "Invalid account number."})
	case errors.Is(err, invoice.ErrNoRecipient):
		return apperr.InvalidErr("The customer has no e-mail address.", nil)
	case errors.Is(err, orders.ErrAuditDisabled):
		return apperr.NotFoundErr("Order history is not enabled.")
	}
	return apperr.Wrap(err)
}

func fail(c *gin.Context, err error) {
	middleware.Fail(c, classify(err))
}

// failOrStale answers a failed refresh with the rows of the last good load,
// the failed phase and the load error, so a list page can keep its table
// under an error banner. Without earlier data, or when the session itself
// was rejected, the error is returned as usual.
func failOrStale[T any](c *gin.Context, err error, snap store.Snapshot[T], body func(T) gin.H) {
	if snap.Phase != store.Failed || snap.LoadedAt.IsZero() ||
		errors.Is(err, store.ErrNotLoggedIn) || errors.Is(err, context.Canceled) ||
		apperr.IsKind(err, apperr.Unauthorized) {
		fail(c, err)
		return
	}
	out := body(snap.Data)
	out["phase"] = snap.Phase
	out["error"] = snap.Error
	c.JSON(http.StatusOK, out)
}

// mustStore returns the session store; Session middleware always sets one.
func mustStore(c *gin.Context) *store.Store {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		panic("handlers: no session store on context")
	}
	return st
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		fail(c, apperr.NotFoundErr("The requested resource was not found."))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.Fail(c, validation.BindError(err, dst))
		return false
	}
	return true
}
