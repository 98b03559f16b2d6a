package orders

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
)

func TestNormalize_FillsFromSnapshots(t *testing.T) {
	o := Order{
		ID: 1,
		Items: []Item{
			{Quantity: 2, Book: &books.Book{ID: 9, Name: "Gamperaliya", Cover: "c.jpg", Price: 1500}},
			{BookID: 3, Quantity: 1, BookName: "Kept"},
		},
		Customer: &users.User{ID: 5, Name: "Nimal", AccountNumber: "CU-1101", Email: "n@example.com"},
	}

	got := Normalize(o, ChannelInStore)

	assert.Equal(t, ChannelInStore, got.Channel)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(9), got.Items[0].BookID)
	assert.Equal(t, "Gamperaliya", got.Items[0].BookName)
	assert.Equal(t, "c.jpg", got.Items[0].BookCover)
	require.NotNil(t, got.Items[0].UnitPrice)
	assert.Equal(t, 1500.0, *got.Items[0].UnitPrice)
	assert.Equal(t, "Kept", got.Items[1].BookName)
	assert.Equal(t, "Nimal", got.CustomerName)
	assert.Equal(t, "CU-1101", got.CustomerAccountNumber)
	assert.Equal(t, int64(5), got.CustomerID)
}

func TestNormalize_LeavesInputItemsAlone(t *testing.T) {
	items := []Item{{Quantity: 1, Book: &books.Book{ID: 4, Name: "Madol Doova", Price: 800}}}
	in := Order{ID: 2, Items: items}

	got := Normalize(in, ChannelOnline)

	assert.Equal(t, "Madol Doova", got.Items[0].BookName)
	assert.Empty(t, items[0].BookName)
	assert.Zero(t, items[0].BookID)
	assert.Nil(t, items[0].UnitPrice)
}

func TestNormalize_KeepsExistingChannel(t *testing.T) {
	got := Normalize(Order{Channel: ChannelOnline}, ChannelInStore)
	assert.Equal(t, ChannelOnline, got.Channel)
}

func TestNewOrderNumber(t *testing.T) {
	now := time.UnixMilli(1714550000123)
	n := NewOrderNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^ORD-1714550000123-[0-9A-F]{4}$`), n)
	assert.NotEqual(t, n, NewOrderNumber(now))
}

func TestReplace(t *testing.T) {
	list := []Order{
		{ID: 1, OrderStatus: status.OrderPending},
		{ID: 2, OrderStatus: status.OrderPending},
	}

	out := Replace(list, Order{ID: 2, OrderStatus: status.OrderCancelled})

	assert.Equal(t, status.OrderCancelled, out[1].OrderStatus)
	assert.Equal(t, status.OrderPending, list[1].OrderStatus, "input must not be mutated")

	o, ok := FindByID(out, 2)
	assert.True(t, ok)
	assert.Equal(t, status.OrderCancelled, o.OrderStatus)

	_, ok = FindByID(out, 99)
	assert.False(t, ok)
}
