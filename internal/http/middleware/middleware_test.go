package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/apperr"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(log), Recovery(log))
	return r
}

func TestRequestID_KeepsSaneIncomingID(t *testing.T) {
	r := newEngine()
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	cases := []struct {
		in   string
		keep bool
	}{
		{"abc-123", true},
		{"has space", false},
		{strings.Repeat("x", 65), false},
		{"", false},
	}
	for _, tc := range cases {
		in, keep := tc.in, tc.keep
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, in)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if keep {
			assert.Equal(t, in, w.Body.String())
		} else {
			assert.NotEqual(t, in, w.Body.String())
			assert.Len(t, w.Body.String(), 36)
		}
	}
}

func TestErrorHandler_WritesPublicMessage(t *testing.T) {
	r := newEngine()
	r.GET("/invalid", func(c *gin.Context) {
		Fail(c, apperr.InvalidErr("Please check the submitted data.", map[string]string{"name": "This field is required."}))
	})
	r.GET("/internal", func(c *gin.Context) { Fail(c, errors.New("db password is hunter2")) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invalid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"This field is required."`)

	for _, path := range []string{"/internal", "/panic"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Contains(t, w.Body.String(), "Something went wrong")
		assert.NotContains(t, w.Body.String(), "hunter2")
	}
}
