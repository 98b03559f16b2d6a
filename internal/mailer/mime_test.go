package mailer

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIMEMessage_Validation(t *testing.T) {
	_, err := buildMIMEMessage(Email{From: "a@b.c", Subject: "s", TextBody: "x"}, "local")
	assert.Error(t, err)
	_, err = buildMIMEMessage(Email{To: []string{"x@y.z"}, Subject: "s", TextBody: "x"}, "local")
	assert.Error(t, err)
	_, err = buildMIMEMessage(Email{To: []string{"x@y.z"}, From: "a@b.c", TextBody: "x"}, "local")
	assert.Error(t, err)
	_, err = buildMIMEMessage(Email{To: []string{"x@y.z"}, From: "a@b.c", Subject: "s"}, "local")
	assert.Error(t, err)
}

func TestBuildMIMEMessage_TextOnly(t *testing.T) {
	raw, err := buildMIMEMessage(Email{
		From:     "shop@pahanaedu.lk",
		FromName: "Pahana Edu",
		To:       []string{"kamal@example.com"},
		Subject:  "Your invoice",
		TextBody: "hello",
		Headers:  map[string]string{"X-Order": "ORD-1"},
	}, "pahanaedu.lk")
	require.NoError(t, err)

	assert.Contains(t, raw, "From: Pahana Edu <shop@pahanaedu.lk>\r\n")
	assert.Contains(t, raw, "To: kamal@example.com\r\n")
	assert.Contains(t, raw, "X-Order: ORD-1\r\n")
	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(raw, "hello\r\n"))
	assert.NotContains(t, raw, "multipart")
}

func TestBuildMIMEMessage_WithAttachment(t *testing.T) {
	data := []byte(strings.Repeat("INVOICE LINE\n", 20))
	raw, err := buildMIMEMessage(Email{
		From:     "shop@pahanaedu.lk",
		To:       []string{"kamal@example.com"},
		Subject:  "Invoice ORD-1",
		TextBody: "Please find your invoice attached.",
		Attachments: []Attachment{{
			Filename:    "invoice-ORD-1.txt",
			ContentType: "text/plain",
			Data:        data,
		}},
	}, "pahanaedu.lk")
	require.NoError(t, err)

	assert.Contains(t, raw, "Content-Type: multipart/mixed;")
	assert.Contains(t, raw, `Content-Disposition: attachment; filename="invoice-ORD-1.txt"`)
	assert.Contains(t, raw, "Please find your invoice attached.")

	enc := base64.StdEncoding.EncodeToString(data)
	assert.Contains(t, raw, enc[:76]+"\r\n")
	for _, line := range strings.Split(raw, "\r\n") {
		assert.LessOrEqual(t, len(line), 998)
	}
}

func TestMock(t *testing.T) {
	m := &Mock{}
	_, ok := m.Last()
	assert.False(t, ok)

	require.NoError(t, m.Send(context.Background(), Email{Subject: "a"}))
	last, ok := m.Last()
	require.True(t, ok)
	assert.Equal(t, "a", last.Subject)
}
