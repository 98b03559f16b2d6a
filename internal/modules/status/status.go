package status

import "errors"

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoChange          = errors.New("status unchanged")
)

// orderFlow is the only order transition table in the repo; every caller
// goes through OrderOptions or ValidateOrderTransition.
var orderFlow = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCompleted, OrderCancelled},
	OrderShipped:    {OrderDelivered, OrderCompleted},
	OrderDelivered:  {OrderCompleted},
	OrderCompleted:  {},
	OrderCancelled:  {},
}

var paymentSet = []PaymentStatus{PaymentPending, PaymentPaid, PaymentCancelled}

// OrderStatuses lists every known order status in flow order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCompleted, OrderCancelled}
}

func PaymentStatuses() []PaymentStatus {
	out := make([]PaymentStatus, len(paymentSet))
	copy(out, paymentSet)
	return out
}

func (s OrderStatus) Valid() bool {
	_, ok := orderFlow[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

func (s PaymentStatus) Valid() bool {
	for _, p := range paymentSet {
		if p == s {
			return true
		}
	}
	return false
}

// OrderOptions returns the statuses selectable from current, current first.
// Unknown statuses only offer themselves.
func OrderOptions(current OrderStatus) []OrderStatus {
	next := orderFlow[current]
	out := make([]OrderStatus, 0, len(next)+1)
	out = append(out, current)
	return append(out, next...)
}

func OrderEditable(current OrderStatus) bool {
	return len(orderFlow[current]) > 0
}

func ValidateOrderTransition(from, to OrderStatus) error {
	if from == to {
		return ErrNoChange
	}
	for _, s := range orderFlow[from] {
		if s == to {
			return nil
		}
	}
	return ErrInvalidTransition
}

// PaymentOptions returns current followed by the remaining payment statuses.
func PaymentOptions(current PaymentStatus) []PaymentStatus {
	out := make([]PaymentStatus, 0, len(paymentSet)+1)
	out = append(out, current)
	for _, p := range paymentSet {
		if p != current {
			out = append(out, p)
		}
	}
	return out
}

// PaymentEditable is false once the payment is PAID.
func PaymentEditable(current PaymentStatus) bool {
	return current != PaymentPaid
}

func ValidatePaymentTransition(from, to PaymentStatus) error {
	if from == to {
		return ErrNoChange
	}
	if !PaymentEditable(from) || !to.Valid() {
		return ErrInvalidTransition
	}
	return nil
}
