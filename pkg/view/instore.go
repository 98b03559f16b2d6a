package view

import (
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/store"
)

type DraftLine struct {
	BookID    int64  `json:"bookId"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	Stock     int    `json:"stock"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type InStoreDraft struct {
	Customer      *users.User `json:"customer,omitempty"`
	Lines         []DraftLine `json:"lines"`
	Subtotal      string      `json:"subtotal"`
	PaymentStatus Badge       `json:"paymentStatus"`
	Ready         bool        `json:"ready"`
}

func NewInStoreDraft(d store.InStoreDraft) InStoreDraft {
	v := InStoreDraft{
		Customer:      d.Customer,
		Lines:         make([]DraftLine, 0, len(d.Lines)),
		Subtotal:      MoneyDecimal(d.Subtotal()),
		PaymentStatus: PaymentBadge(d.PaymentStatus),
		Ready:         d.Customer != nil && len(d.Lines) > 0,
	}
	for _, l := range d.Lines {
		v.Lines = append(v.Lines, DraftLine{
			BookID:    l.BookID,
			Name:      l.Name,
			Qty:       l.Quantity,
			Stock:     l.Stock,
			UnitPrice: books.FormatPrice(l.Price),
			LineTotal: MoneyDecimal(l.Total()),
		})
	}
	return v
}
