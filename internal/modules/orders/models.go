package orders

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/jsontime"
)

type Channel string

const (
	ChannelOnline  Channel = "ONLINE"
	ChannelInStore Channel = "IN_STORE"
)

// Order mirrors the last backend response; numeric totals stay nil when the
// backend omits them.
type Order struct {
	ID            int64                `json:"id"`
	OrderNumber   string               `json:"orderNumber"`
	OrderStatus   status.OrderStatus   `json:"orderStatus"`
	PaymentStatus status.PaymentStatus `json:"paymentStatus"`

	Subtotal    *float64 `json:"subtotal,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`

	Items   []Item `json:"items"`
	Address string `json:"address,omitempty"`

	CustomerID            int64       `json:"customerId,omitempty"`
	CustomerName          string      `json:"customerName,omitempty"`
	CustomerAccountNumber string      `json:"customerAccountNumber,omitempty"`
	CustomerEmail         string      `json:"customerEmail,omitempty"`
	CustomerPhone         string      `json:"customerPhone,omitempty"`
	Customer              *users.User `json:"customer,omitempty"`

	Channel   Channel       `json:"channel,omitempty"`
	CreatedAt jsontime.Time `json:"createdAt"`
	UpdatedAt jsontime.Time `json:"updatedAt"`
}

type Item struct {
	ID        int64       `json:"id,omitempty"`
	BookID    int64       `json:"bookId"`
	Quantity  int         `json:"quantity"`
	UnitPrice *float64    `json:"unitPrice,omitempty"`
	BookName  string      `json:"bookName,omitempty"`
	BookCover string      `json:"bookCover,omitempty"`
	Book      *books.Book `json:"book,omitempty"`
}

type CheckoutInput struct {
	OrderNumber string `json:"orderNumber"`
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// InStoreInput is the payload an employee submits on behalf of a customer.
type InStoreInput struct {
	OrderNumber           string      `json:"orderNumber"`
	CustomerAccountNumber string      `json:"customerAccountNumber"`
	Items                 []InputItem `json:"items"`
	PaymentStatus         string      `json:"paymentStatus,omitempty"`
}

type InputItem struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

// Normalize fills the denormalized book fields from a nested book snapshot
// and stamps the channel the order was fetched through.
func Normalize(o Order, ch Channel) Order {
	if o.Channel == "" {
		o.Channel = ch
	}
	if o.Items != nil {
		o.Items = append([]Item(nil), o.Items...)
	}
	for i, it := range o.Items {
		if it.Book == nil {
			continue
		}
		if strings.TrimSpace(it.BookName) == "" {
			it.BookName = it.Book.Name
		}
		if strings.TrimSpace(it.BookCover) == "" {
			it.BookCover = it.Book.Cover
		}
		if it.UnitPrice == nil {
			p := it.Book.Price
			it.UnitPrice = &p
		}
		if it.BookID == 0 {
			it.BookID = it.Book.ID
		}
		o.Items[i] = it
	}
	if o.Customer != nil {
		if o.CustomerName == "" {
			o.CustomerName = o.Customer.Name
		}
		if o.CustomerAccountNumber == "" {
			o.CustomerAccountNumber = o.Customer.AccountNumber
		}
		if o.CustomerEmail == "" {
			o.CustomerEmail = o.Customer.Email
		}
		if o.CustomerPhone == "" {
			o.CustomerPhone = o.Customer.Phone
		}
		if o.CustomerID == 0 {
			o.CustomerID = o.Customer.ID
		}
	}
	return o
}

func NormalizeAll(in []Order, ch Channel) []Order {
	out := make([]Order, len(in))
	for i, o := range in {
		out[i] = Normalize(o, ch)
	}
	return out
}

// NewOrderNumber builds a client-side reference, ORD-<unix millis>-<4 hex>.
// The backend may replace it.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return "ORD-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}

// Replace swaps the order with the same id in list, leaving the rest intact.
func Replace(list []Order, o Order) []Order {
	out := make([]Order, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == o.ID {
			out[i] = o
		}
	}
	return out
}

func FindByID(list []Order, id int64) (Order, bool) {
	for _, o := range list {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
