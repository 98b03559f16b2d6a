package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/mailer"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/storage"
)

var ErrNoRecipient = errors.New("customer has no e-mail address")

type Exported struct {
	FileName string `json:"fileName"`
	Key      string `json:"key"`
	URL      string `json:"url"`
	Size     int    `json:"size"`
}

// Exporter writes invoice files to storage.
type Exporter struct {
	Storage storage.Storage
}

func NewExporter(s storage.Storage) *Exporter { return &Exporter{Storage: s} }

func (x *Exporter) Export(ctx context.Context, o orders.Order, customer *users.User) (Exported, error) {
	text := Render(o, customer)
	name := FileName(o)
	res, err := x.Storage.Put(ctx, strings.NewReader(text), storage.PutInput{
		Key:         name,
		Filename:    name,
		ContentType: ContentType,
		Size:        int64(len(text)),
	})
	if err != nil {
		return Exported{}, fmt.Errorf("store %s: %w", name, err)
	}
	return Exported{FileName: name, Key: res.Key, URL: res.URL, Size: len(text)}, nil
}

// Mailer e-mails invoices to the order's customer.
type Mailer struct {
	Service  mailer.Service
	From     string
	FromName string
}

func (m *Mailer) Send(ctx context.Context, o orders.Order, customer *users.User) (string, error) {
	c := customerOf(o, customer)
	to := strings.TrimSpace(c.Email)
	if to == "" {
		return "", ErrNoRecipient
	}
	text := Render(o, customer)

	greeting := "Hello,"
	if c.Name != "" {
		greeting = "Hello " + c.Name + ","
	}
	body := greeting + "\n\nThank you for your order " + o.OrderNumber +
		". Your invoice is attached and copied below.\n\n" + text

	err := m.Service.Send(ctx, mailer.Email{
		From:     m.From,
		FromName: m.FromName,
		To:       []string{to},
		Subject:  "Your Pahana Edu invoice " + o.OrderNumber,
		TextBody: body,
		Attachments: []mailer.Attachment{{
			Filename:    FileName(o),
			ContentType: "text/plain",
			Data:        []byte(text),
		}},
		Headers: map[string]string{"X-Pahana-Order": o.OrderNumber},
	})
	if err != nil {
		return "", fmt.Errorf("send invoice %s: %w", o.OrderNumber, err)
	}
	return to, nil
}
