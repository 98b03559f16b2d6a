package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   Kind
		msg    string
		fields map[string]string
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"message":"JWT expired"}`,
			kind:   Unauthorized,
			msg:    msgSessionExpired,
		},
		{
			name:   "validation failed",
			status: http.StatusBadRequest,
			body:   `{"message":"Validation failed","errors":[{"field":"email","defaultMessage":"must be a well-formed email address"},{"field":"name","defaultMessage":"must not be blank"}]}`,
			kind:   Invalid,
			msg:    "Validation failed",
			fields: map[string]string{"email": "must be a well-formed email address", "name": "must not be blank"},
		},
		{
			name:   "bad request with message",
			status: http.StatusBadRequest,
			body:   `{"message":"Insufficient stock for book 4"}`,
			kind:   Invalid,
			msg:    "Insufficient stock for book 4",
		},
		{
			name:   "bad request without body",
			status: http.StatusBadRequest,
			kind:   Invalid,
			msg:    msgInvalid,
		},
		{
			name:   "not found plain text",
			status: http.StatusNotFound,
			body:   `Order not found`,
			kind:   NotFound,
			msg:    "Order not found",
		},
		{
			name:   "not found html",
			status: http.StatusNotFound,
			body:   `<html>404</html>`,
			kind:   NotFound,
			msg:    msgNotFound,
		},
		{
			name:   "conflict",
			status: http.StatusConflict,
			body:   `{"error":"Email already registered"}`,
			kind:   Conflict,
			msg:    "Email already registered",
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"message":"NullPointerException"}`,
			kind:   Internal,
			msg:    genericMsg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := FromResponse(tt.status, []byte(tt.body))
			require.NotNil(t, ae)
			assert.Equal(t, tt.kind, ae.Kind)
			assert.Equal(t, tt.msg, ae.PublicMsg)
			assert.Equal(t, tt.fields, ae.Fields)
			assert.Equal(t, tt.status, ae.Status)
		})
	}
}

func TestHTTPStatusAndPublicMessage(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidErr("x", nil)))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(FromTransport(errors.New("dial tcp"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))

	wrapped := fmt.Errorf("loading cart: %w", NotFoundErr("Cart not found."))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
	assert.Equal(t, "Cart not found.", PublicMessage(wrapped))
	assert.Equal(t, genericMsg, PublicMessage(errors.New("boom")))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	ae := ConflictErr("dup")
	assert.Same(t, ae, Wrap(ae))

	w := Wrap(errors.New("db down"))
	assert.Equal(t, Internal, w.Kind)
	assert.True(t, IsKind(w, Internal))
	assert.False(t, IsKind(w, NotFound))
}
