package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
)

type DraftLine struct {
	BookID   int64   `json:"bookId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Stock    int     `json:"stock"`
}

func (l DraftLine) Total() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// InStoreDraft is the order an employee is assembling at the counter.
type InStoreDraft struct {
	Customer      *users.User          `json:"customer,omitempty"`
	Lines         []DraftLine          `json:"lines"`
	PaymentStatus status.PaymentStatus `json:"paymentStatus"`
}

func (d InStoreDraft) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range d.Lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// EmployeeOrders is the in-store channel.
type EmployeeOrders struct {
	*orderBook

	draftLock sync.Mutex
	order     InStoreDraft
}

func newEmployeeOrders(sess *session) *EmployeeOrders {
	return &EmployeeOrders{
		orderBook: &orderBook{sess: sess, channel: orders.ChannelInStore},
		order:     InStoreDraft{PaymentStatus: status.PaymentPending},
	}
}

func (e *EmployeeOrders) Draft() InStoreDraft {
	e.draftLock.Lock()
	defer e.draftLock.Unlock()
	return e.copyDraft()
}

func (e *EmployeeOrders) copyDraft() InStoreDraft {
	d := e.order
	d.Lines = make([]DraftLine, len(e.order.Lines))
	copy(d.Lines, e.order.Lines)
	if e.order.Customer != nil {
		c := *e.order.Customer
		d.Customer = &c
	}
	return d
}

// SelectCustomer looks the account up on the backend. Only CUSTOMER
// accounts can own an in-store order.
func (e *EmployeeOrders) SelectCustomer(ctx context.Context, accountNumber string) (users.User, error) {
	tok, err := e.sess.authed()
	if err != nil {
		return users.User{}, err
	}
	role, _, err := users.ParseAccountNumber(accountNumber)
	if err != nil {
		return users.User{}, err
	}
	if role != users.RoleCustomer {
		return users.User{}, ErrNotCustomer
	}
	u, err := e.sess.deps.API.UserByAccount(ctx, tok, accountNumber)
	if err != nil {
		return users.User{}, e.sess.check(err)
	}
	if u.Role != "" && u.Role != users.RoleCustomer {
		return users.User{}, ErrNotCustomer
	}

	e.draftLock.Lock()
	e.order.Customer = &u
	e.draftLock.Unlock()
	return u, nil
}

// AddBook adds quantity copies of a book, merging with an existing line.
// The running quantity may not exceed the book's stock.
func (e *EmployeeOrders) AddBook(ctx context.Context, bookID int64, quantity int) (InStoreDraft, error) {
	tok, err := e.sess.authed()
	if err != nil {
		return InStoreDraft{}, err
	}
	if quantity <= 0 {
		return InStoreDraft{}, ErrInvalidQuantity
	}
	b, err := e.sess.deps.API.Book(ctx, tok, bookID)
	if err != nil {
		return InStoreDraft{}, e.sess.check(err)
	}

	e.draftLock.Lock()
	defer e.draftLock.Unlock()
	for i, l := range e.order.Lines {
		if l.BookID != bookID {
			continue
		}
		if l.Quantity+quantity > b.Stock {
			return e.copyDraft(), fmt.Errorf("%w: %q has %d in stock", ErrInsufficientStock, b.Name, b.Stock)
		}
		l.Quantity += quantity
		l.Price = b.Price
		l.Stock = b.Stock
		e.order.Lines[i] = l
		return e.copyDraft(), nil
	}
	if quantity > b.Stock {
		return e.copyDraft(), fmt.Errorf("%w: %q has %d in stock", ErrInsufficientStock, b.Name, b.Stock)
	}
	e.order.Lines = append(e.order.Lines, DraftLine{
		BookID:   b.ID,
		Name:     b.Name,
		Price:    b.Price,
		Quantity: quantity,
		Stock:    b.Stock,
	})
	return e.copyDraft(), nil
}

func (e *EmployeeOrders) RemoveBook(bookID int64) InStoreDraft {
	e.draftLock.Lock()
	defer e.draftLock.Unlock()
	lines := e.order.Lines[:0:0]
	for _, l := range e.order.Lines {
		if l.BookID != bookID {
			lines = append(lines, l)
		}
	}
	e.order.Lines = lines
	return e.copyDraft()
}

func (e *EmployeeOrders) SetPaymentStatus(p status.PaymentStatus) error {
	if !p.Valid() {
		return fmt.Errorf("%w: payment status %q", status.ErrInvalidTransition, p)
	}
	e.draftLock.Lock()
	e.order.PaymentStatus = p
	e.draftLock.Unlock()
	return nil
}

func (e *EmployeeOrders) Reset() {
	e.draftLock.Lock()
	e.order = InStoreDraft{PaymentStatus: status.PaymentPending}
	e.draftLock.Unlock()
}

// Confirm submits the draft. On success the draft is cleared and the new
// order heads the cached list.
func (e *EmployeeOrders) Confirm(ctx context.Context) (orders.Order, error) {
	tok, err := e.sess.authed()
	if err != nil {
		return orders.Order{}, err
	}
	var out orders.Order
	err = e.mut.Do(ctx, "instore:draft", func(ctx context.Context) error {
		d := e.Draft()
		if d.Customer == nil || strings.TrimSpace(d.Customer.AccountNumber) == "" {
			return ErrNoCustomer
		}
		if len(d.Lines) == 0 {
			return orders.ErrEmptyOrder
		}
		in := orders.InStoreInput{
			OrderNumber:           orders.NewOrderNumber(e.sess.deps.Now()),
			CustomerAccountNumber: d.Customer.AccountNumber,
			PaymentStatus:         string(d.PaymentStatus),
		}
		for _, l := range d.Lines {
			in.Items = append(in.Items, orders.InputItem{BookID: l.BookID, Quantity: l.Quantity})
		}

		o, err := e.sess.deps.API.CreateInStoreOrder(ctx, tok, in)
		if err != nil {
			return e.sess.check(err)
		}
		out = o
		e.Reset()
		e.list.Update(func(list []orders.Order) []orders.Order {
			return append([]orders.Order{o}, list...)
		})
		e.sess.log.Info("in-store order placed",
			slog.Int64("order_id", o.ID),
			slog.String("order_number", o.OrderNumber),
			slog.String("customer", in.CustomerAccountNumber),
		)
		return nil
	})
	return out, err
}

func (e *EmployeeOrders) reset() {
	e.orderBook.reset()
	e.Reset()
}
