package cart

import (
	"github.com/shopspring/decimal"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
)

const MaxQuantity = 99

type Item struct {
	ID       int64       `json:"id"`
	BookID   int64       `json:"bookId"`
	Quantity int         `json:"quantity"`
	Price    float64     `json:"price"`
	Book     *books.Book `json:"book,omitempty"`
}

type Totals struct {
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// UnitPrice prefers the price stored on the cart line and falls back to the
// book snapshot.
func (it Item) UnitPrice() decimal.Decimal {
	if it.Price > 0 || it.Book == nil {
		return decimal.NewFromFloat(it.Price)
	}
	return decimal.NewFromFloat(it.Book.Price)
}

func (it Item) LineTotal() decimal.Decimal {
	return it.UnitPrice().Mul(decimal.NewFromInt(int64(it.Quantity)))
}

func ComputeTotals(items []Item) Totals {
	t := Totals{Subtotal: decimal.Zero}
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		t.Count += it.Quantity
		t.Subtotal = t.Subtotal.Add(it.LineTotal())
	}
	return t
}

func ClampQuantity(q int) int {
	if q < 0 {
		return 0
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// Find returns the cart line holding bookID.
func Find(items []Item, bookID int64) (Item, bool) {
	for _, it := range items {
		if it.BookID == bookID {
			return it, true
		}
	}
	return Item{}, false
}

// Cart is the backend's view of the caller's cart.
type Cart struct {
	ID          int64    `json:"id,omitempty"`
	Items       []Item   `json:"items"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
}

type AddInput struct {
	BookID   int64 `json:"bookId" binding:"required,gt=0"`
	Quantity int   `json:"quantity" binding:"required,gt=0,lte=99"`
}

type QuantityInput struct {
	Quantity int `json:"quantity" binding:"required,gt=0,lte=99"`
}
