package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/invoice"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/apperr"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/store"
)

func TestClassify(t *testing.T) {
	backend := apperr.ConflictErr("ISBN already exists")

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"backend error passes", backend, http.StatusConflict},
		{"not logged in", store.ErrNotLoggedIn, http.StatusUnauthorized},
		{"wrapped transition", fmt.Errorf("x: %w", status.ErrInvalidTransition), http.StatusBadRequest},
		{"no change", status.ErrNoChange, http.StatusBadRequest},
		{"stock", store.ErrInsufficientStock, http.StatusBadRequest},
		{"account", users.ErrInvalidAccountNumber, http.StatusBadRequest},
		{"recipient", invoice.ErrNoRecipient, http.StatusBadRequest},
		{"empty order", orders.ErrEmptyOrder, http.StatusBadRequest},
		{"audit off", orders.ErrAuditDisabled, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, apperr.HTTPStatus(classify(tt.err)))
		})
	}
	assert.Same(t, backend, classify(backend))
}
