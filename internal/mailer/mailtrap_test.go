package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailtrap_Send(t *testing.T) {
	var got mailtrapPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	m := NewMailtrap(srv.URL, "secret-token")
	err := m.Send(context.Background(), Email{
		From:        "shop@pahanaedu.lk",
		FromName:    "Pahana Edu",
		To:          []string{"kamala@example.lk"},
		Subject:     "Invoice",
		TextBody:    "attached",
		Attachments: []Attachment{{Filename: "invoice-ORD-1.txt", ContentType: "text/plain", Data: []byte("hello")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", auth)
	assert.Equal(t, "Pahana Edu", got.From.Name)
	require.Len(t, got.To, 1)
	assert.Equal(t, "kamala@example.lk", got.To[0].Email)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hello")), got.Attachments[0].Content)
}

func TestMailtrap_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := NewMailtrap(srv.URL, "bad").Send(context.Background(), Email{To: []string{"a@b.lk"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
