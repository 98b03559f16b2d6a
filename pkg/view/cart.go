package view

import (
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/cart"
)

type CartLine struct {
	ID        int64  `json:"id"`
	BookID    int64  `json:"bookId"`
	Name      string `json:"name"`
	Cover     string `json:"cover,omitempty"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type Cart struct {
	Lines    []CartLine `json:"lines"`
	Count    int        `json:"count"`
	Subtotal string     `json:"subtotal"`
}

func NewCart(ct cart.Cart) Cart {
	totals := cart.ComputeTotals(ct.Items)
	v := Cart{
		Lines:    make([]CartLine, 0, len(ct.Items)),
		Count:    totals.Count,
		Subtotal: MoneyDecimal(totals.Subtotal),
	}
	for _, it := range ct.Items {
		line := CartLine{
			ID:        it.ID,
			BookID:    it.BookID,
			Qty:       it.Quantity,
			UnitPrice: MoneyDecimal(it.UnitPrice()),
			LineTotal: MoneyDecimal(it.LineTotal()),
		}
		if it.Book != nil {
			line.Name = it.Book.Name
			line.Cover = it.Book.Cover
		}
		v.Lines = append(v.Lines, line)
	}
	return v
}
