package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/localstore"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	json := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, body)
		}
	}
	mux.HandleFunc("/auth/login", json(`{"token":"tok-9","user":{"id":3,"accountNumber":"CU-1003","name":"Sunil","email":"sunil@example.lk","role":"CUSTOMER"}}`))
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-9" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json(`{"user":{"id":3,"accountNumber":"CU-1003","name":"Sunil","email":"sunil@example.lk","role":"CUSTOMER"}}`)(w, r)
	})
	mux.HandleFunc("/orders/7", json(`{"id":7,"orderNumber":"ORD-7","orderStatus":"SHIPPED","paymentStatus":"PAID","subtotal":2400,"discount":0,"totalAmount":2400,
		"items":[{"bookId":1,"bookName":"Madol Doova","quantity":2,"unitPrice":1200}]}`))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCLI_LoginThenExportInvoice(t *testing.T) {
	srv := fakeAPI(t)
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.yaml")
	t.Setenv("API_URL", srv.URL)
	t.Setenv("PAHANA_STATE", statePath)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"login", "-email", "sunil@example.lk", "-password", "pw123456"}, &out))
	assert.Contains(t, out.String(), "Signed in as Sunil (CU-1003, CUSTOMER)")

	state, err := localstore.Open(statePath)
	require.NoError(t, err)
	tok, ok := state.Get(localstore.TokenKey)
	require.True(t, ok)
	assert.Equal(t, "tok-9", tok)

	out.Reset()
	invDir := filepath.Join(dir, "invoices")
	require.NoError(t, run(ctx, []string{"invoice", "-id", "7", "-out", invDir}, &out))
	assert.Contains(t, out.String(), "Saved invoice-ORD-7.txt")

	data, err := os.ReadFile(filepath.Join(invDir, "invoice-ORD-7.txt"))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Sunil")
	assert.Contains(t, text, "Madol Doova")
	assert.Contains(t, text, "Total: LKR 2400.00")
}

func TestCLI_RejectedTokenIsForgotten(t *testing.T) {
	srv := fakeAPI(t)
	statePath := filepath.Join(t.TempDir(), "state.yaml")
	t.Setenv("API_URL", srv.URL)
	t.Setenv("PAHANA_STATE", statePath)

	state, err := localstore.Open(statePath)
	require.NoError(t, err)
	require.NoError(t, state.Set(localstore.TokenKey, "stale"))

	err = run(context.Background(), []string{"whoami"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pahana login")

	state, err = localstore.Open(statePath)
	require.NoError(t, err)
	_, ok := state.Get(localstore.TokenKey)
	assert.False(t, ok)
}

func TestCLI_UnknownCommand(t *testing.T) {
	t.Setenv("PAHANA_STATE", filepath.Join(t.TempDir(), "state.yaml"))
	var out bytes.Buffer
	err := run(context.Background(), []string{"frobnicate"}, &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "usage: pahana")
}
