package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Mailtrap sends through the Mailtrap HTTP send API.
type Mailtrap struct {
	url    string
	client *resty.Client
}

type mailtrapAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailtrapAttachment struct {
	Content     string `json:"content"` // base64
	Filename    string `json:"filename"`
	Type        string `json:"type,omitempty"`
	Disposition string `json:"disposition"`
}

type mailtrapPayload struct {
	From        mailtrapAddress      `json:"from"`
	To          []mailtrapAddress    `json:"to"`
	Cc          []mailtrapAddress    `json:"cc,omitempty"`
	Bcc         []mailtrapAddress    `json:"bcc,omitempty"`
	Subject     string               `json:"subject"`
	Text        string               `json:"text,omitempty"`
	HTML        string               `json:"html,omitempty"`
	Category    string               `json:"category,omitempty"`
	Headers     map[string]string    `json:"headers,omitempty"`
	Attachments []mailtrapAttachment `json:"attachments,omitempty"`
}

func NewMailtrap(url, token string) *Mailtrap {
	return &Mailtrap{
		url: url,
		client: resty.New().
			SetTimeout(10*time.Second).
			SetAuthToken(token).
			SetHeader("Content-Type", "application/json"),
	}
}

func (m *Mailtrap) Send(ctx context.Context, e Email) error {
	if len(e.AllRecipients()) == 0 {
		return fmt.Errorf("mailtrap: no recipients")
	}
	p := mailtrapPayload{
		From:     mailtrapAddress{Email: e.From, Name: e.FromName},
		To:       addresses(e.To),
		Cc:       addresses(e.Cc),
		Bcc:      addresses(e.Bcc),
		Subject:  e.Subject,
		Text:     e.TextBody,
		HTML:     e.HTMLBody,
		Category: "Transactional",
		Headers:  e.Headers,
	}
	for _, a := range e.Attachments {
		p.Attachments = append(p.Attachments, mailtrapAttachment{
			Content:     base64.StdEncoding.EncodeToString(a.Data),
			Filename:    a.Filename,
			Type:        a.ContentType,
			Disposition: "attachment",
		})
	}

	resp, err := m.client.R().SetContext(ctx).SetBody(p).Post(m.url)
	if err != nil {
		return fmt.Errorf("mailtrap: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mailtrap API error: %d", resp.StatusCode())
	}
	return nil
}

func addresses(list []string) []mailtrapAddress {
	if len(list) == 0 {
		return nil
	}
	out := make([]mailtrapAddress, 0, len(list))
	for _, a := range list {
		out = append(out, mailtrapAddress{Email: a})
	}
	return out
}
