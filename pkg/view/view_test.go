package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/cart"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
)

func fp(v float64) *float64 { return &v }

func TestNewOrderDetail_Controls(t *testing.T) {
	o := orders.Order{
		ID:            1,
		OrderNumber:   "ORD-1",
		OrderStatus:   status.OrderShipped,
		PaymentStatus: status.PaymentPaid,
		Items:         []orders.Item{{BookID: 2, BookName: "Atlas", Quantity: 3, UnitPrice: fp(100)}},
	}

	d := NewOrderDetail(o, true)
	require.NotNil(t, d.Controls)
	assert.True(t, d.Controls.OrderEditable)
	assert.False(t, d.Controls.PaymentEditable)
	values := []string{}
	for _, b := range d.Controls.OrderOptions {
		values = append(values, b.Value)
	}
	assert.Equal(t, []string{"SHIPPED", "DELIVERED", "COMPLETED"}, values)
	assert.Equal(t, "purple", d.OrderStatus.Color)
	assert.Equal(t, "LKR 300.00", d.Items[0].LineTotal)
	assert.Equal(t, 3, d.ItemCount)
	assert.Equal(t, "-", d.Total)

	assert.Nil(t, NewOrderDetail(o, false).Controls)
}

func TestNewCatalog(t *testing.T) {
	all := []books.Book{
		{ID: 1, Name: "Atlas", Price: 12.5, CategoryName: "Maps", Stock: 2},
		{ID: 2, Name: "Poems", Price: 5, CategoryName: "Poetry"},
	}
	c := NewCatalog(all, nil, nil, "atl", books.Filters{})
	require.Len(t, c.Books, 1)
	assert.Equal(t, "LKR 12.50", c.Books[0].Price)
	assert.True(t, c.Books[0].InStock)
	assert.Equal(t, "atlas-1", c.Books[0].Slug)
	assert.Equal(t, "No Publisher", c.Books[0].Publisher)
	assert.Len(t, c.CategoryOptions, 3)
}

func TestNewCart(t *testing.T) {
	v := NewCart(cart.Cart{Items: []cart.Item{
		{ID: 1, BookID: 1, Quantity: 2, Price: 150, Book: &books.Book{Name: "Atlas"}},
	}})
	assert.Equal(t, 2, v.Count)
	assert.Equal(t, "LKR 300.00", v.Subtotal)
	assert.Equal(t, "Atlas", v.Lines[0].Name)
}
