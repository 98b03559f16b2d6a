package view

import (
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
)

type Badge struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

func OrderBadge(s status.OrderStatus) Badge {
	return Badge{Value: string(s), Label: status.OrderLabel(s), Color: status.OrderColor(s)}
}

func PaymentBadge(s status.PaymentStatus) Badge {
	return Badge{Value: string(s), Label: status.PaymentLabel(s), Color: status.PaymentColor(s)}
}

type OrderItem struct {
	BookID    int64  `json:"bookId"`
	Name      string `json:"name"`
	Cover     string `json:"cover,omitempty"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type OrderListItem struct {
	ID            int64  `json:"id"`
	Number        string `json:"number"`
	Channel       string `json:"channel"`
	Customer      string `json:"customer,omitempty"`
	Account       string `json:"account,omitempty"`
	CreatedAt     string `json:"createdAt"`
	ItemCount     int    `json:"itemCount"`
	Total         string `json:"total"`
	OrderStatus   Badge  `json:"orderStatus"`
	PaymentStatus Badge  `json:"paymentStatus"`
}

// StatusControls tells the shell which status selects to enable and what
// they may offer.
type StatusControls struct {
	OrderEditable   bool    `json:"orderEditable"`
	OrderOptions    []Badge `json:"orderOptions"`
	PaymentEditable bool    `json:"paymentEditable"`
	PaymentOptions  []Badge `json:"paymentOptions"`
}

type OrderDetail struct {
	OrderListItem
	Address  string          `json:"address,omitempty"`
	Email    string          `json:"email,omitempty"`
	Phone    string          `json:"phone,omitempty"`
	Items    []OrderItem     `json:"items"`
	Subtotal string          `json:"subtotal"`
	Discount string          `json:"discount"`
	Controls *StatusControls `json:"controls,omitempty"`
}

func NewOrderListItem(o orders.Order) OrderListItem {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return OrderListItem{
		ID:            o.ID,
		Number:        o.OrderNumber,
		Channel:       string(o.Channel),
		Customer:      o.CustomerName,
		Account:       o.CustomerAccountNumber,
		CreatedAt:     o.CreatedAt.Format(dateLayout),
		ItemCount:     n,
		Total:         Money(o.TotalAmount),
		OrderStatus:   OrderBadge(o.OrderStatus),
		PaymentStatus: PaymentBadge(o.PaymentStatus),
	}
}

func NewOrderList(list []orders.Order) []OrderListItem {
	out := make([]OrderListItem, 0, len(list))
	for _, o := range list {
		out = append(out, NewOrderListItem(o))
	}
	return out
}

// NewOrderDetail builds the detail view; withControls adds the staff status
// selects.
func NewOrderDetail(o orders.Order, withControls bool) OrderDetail {
	d := OrderDetail{
		OrderListItem: NewOrderListItem(o),
		Address:       o.Address,
		Email:         o.CustomerEmail,
		Phone:         o.CustomerPhone,
		Items:         make([]OrderItem, 0, len(o.Items)),
		Subtotal:      Money(o.Subtotal),
		Discount:      Money(o.Discount),
	}
	for _, it := range o.Items {
		line := OrderItem{
			BookID:    it.BookID,
			Name:      it.BookName,
			Cover:     it.BookCover,
			Qty:       it.Quantity,
			UnitPrice: Money(it.UnitPrice),
			LineTotal: "-",
		}
		if it.UnitPrice != nil {
			total := *it.UnitPrice * float64(it.Quantity)
			line.LineTotal = Money(&total)
		}
		d.Items = append(d.Items, line)
	}
	if withControls {
		c := NewStatusControls(o)
		d.Controls = &c
	}
	return d
}

func NewStatusControls(o orders.Order) StatusControls {
	c := StatusControls{
		OrderEditable:   status.OrderEditable(o.OrderStatus),
		PaymentEditable: status.PaymentEditable(o.PaymentStatus),
	}
	for _, s := range status.OrderOptions(o.OrderStatus) {
		c.OrderOptions = append(c.OrderOptions, OrderBadge(s))
	}
	for _, s := range status.PaymentOptions(o.PaymentStatus) {
		c.PaymentOptions = append(c.PaymentOptions, PaymentBadge(s))
	}
	return c
}

type OrderEvent struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
	Actor string `json:"actor,omitempty"`
	Note  string `json:"note,omitempty"`
	At    string `json:"at"`
}

func NewOrderEvents(evs []orders.OrderEvent) []OrderEvent {
	out := make([]OrderEvent, 0, len(evs))
	for _, e := range evs {
		v := OrderEvent{
			Field: e.Field,
			From:  e.FromStatus,
			To:    e.ToStatus,
			Actor: e.ActorAccount,
			At:    e.CreatedAt.Format(dateLayout),
		}
		if e.Note != nil {
			v.Note = *e.Note
		}
		out = append(out, v)
	}
	return out
}
