package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
)

// StatusEdit is a status change the user picked but has not confirmed yet.
type StatusEdit struct {
	OrderID int64  `json:"orderId"`
	Field   string `json:"field"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// orderBook is the state shared by online and in-store orders: the staff
// list, the order being viewed and the pending status edit.
type orderBook struct {
	sess    *session
	channel orders.Channel

	list    Resource[[]orders.Order]
	current Resource[orders.Order]
	mut     Serializer

	draftMu sync.Mutex
	draft   *StatusEdit
}

func (b *orderBook) Snapshot() Snapshot[[]orders.Order] { return b.list.Snapshot() }

// FetchAll loads every order of the channel; staff only on the backend.
func (b *orderBook) FetchAll(ctx context.Context) ([]orders.Order, error) {
	tok, err := b.sess.authed()
	if err != nil {
		return nil, err
	}
	return b.list.Load(ctx, "all", func(ctx context.Context) ([]orders.Order, error) {
		list, err := b.sess.deps.API.Orders(ctx, tok, b.channel)
		return list, b.sess.check(err)
	})
}

func (b *orderBook) FetchByID(ctx context.Context, id int64) (orders.Order, error) {
	tok, err := b.sess.authed()
	if err != nil {
		return orders.Order{}, err
	}
	return b.current.Load(ctx, "order:"+strconv.FormatInt(id, 10), func(ctx context.Context) (orders.Order, error) {
		o, err := b.sess.deps.API.Order(ctx, tok, b.channel, id)
		return o, b.sess.check(err)
	})
}

// lookup prefers the cached copy so the transition check sees what the user
// saw when picking the new status.
func (b *orderBook) lookup(ctx context.Context, id int64) (orders.Order, error) {
	if list, ok := b.list.Get(); ok {
		if o, found := orders.FindByID(list, id); found {
			return o, nil
		}
	}
	if o, ok := b.current.Get(); ok && o.ID == id {
		return o, nil
	}
	return b.FetchByID(ctx, id)
}

func (b *orderBook) UpdateStatus(ctx context.Context, id int64, to status.OrderStatus) (orders.Order, error) {
	tok, err := b.sess.authed()
	if err != nil {
		return orders.Order{}, err
	}
	var out orders.Order
	err = b.mut.Do(ctx, orderKey(id), func(ctx context.Context) error {
		cur, err := b.lookup(ctx, id)
		if err != nil {
			return err
		}
		if err := status.ValidateOrderTransition(cur.OrderStatus, to); err != nil {
			return fmt.Errorf("order %d: %w", id, err)
		}
		updated, err := b.sess.deps.API.UpdateOrderStatus(ctx, tok, b.channel, id, to)
		if err != nil {
			return b.sess.check(err)
		}
		out = b.store(cur, updated, func(o *orders.Order) { o.OrderStatus = to })
		b.audit(ctx, out, orders.FieldOrderStatus, string(cur.OrderStatus), string(to))
		return nil
	})
	return out, err
}

func (b *orderBook) UpdatePaymentStatus(ctx context.Context, id int64, to status.PaymentStatus) (orders.Order, error) {
	tok, err := b.sess.authed()
	if err != nil {
		return orders.Order{}, err
	}
	var out orders.Order
	err = b.mut.Do(ctx, orderKey(id), func(ctx context.Context) error {
		cur, err := b.lookup(ctx, id)
		if err != nil {
			return err
		}
		if err := status.ValidatePaymentTransition(cur.PaymentStatus, to); err != nil {
			return fmt.Errorf("order %d: %w", id, err)
		}
		updated, err := b.sess.deps.API.UpdatePaymentStatus(ctx, tok, b.channel, id, to)
		if err != nil {
			return b.sess.check(err)
		}
		out = b.store(cur, updated, func(o *orders.Order) { o.PaymentStatus = to })
		b.audit(ctx, out, orders.FieldPaymentStatus, string(cur.PaymentStatus), string(to))
		return nil
	})
	return out, err
}

// store merges the backend's answer into the cached list. Backends that
// answer with only a message get the change applied to the cached copy.
func (b *orderBook) store(cur, updated orders.Order, apply func(*orders.Order)) orders.Order {
	if updated.ID == 0 {
		updated = cur
		apply(&updated)
	}
	b.list.Update(func(list []orders.Order) []orders.Order { return orders.Replace(list, updated) })
	b.current.Update(func(o orders.Order) orders.Order {
		if o.ID == updated.ID {
			return updated
		}
		return o
	})
	return updated
}

func (b *orderBook) audit(ctx context.Context, o orders.Order, field, from, to string) {
	if b.sess.deps.Audit == nil {
		return
	}
	actor := ""
	if u, ok := b.sess.me.Get(); ok {
		actor = u.AccountNumber
	}
	_, err := b.sess.deps.Audit.Record(detached(ctx), orders.RecordInput{
		Order:        o,
		Field:        field,
		From:         from,
		To:           to,
		ActorAccount: actor,
	})
	if err != nil {
		// the backend already applied the change; a lost audit row is logged only
		b.sess.log.Error("order audit failed", slog.Int64("order_id", o.ID), slog.String("field", field), slog.Any("err", err))
	}
}

// Select records the status the user picked for an order. Nothing is sent
// until ConfirmEdit.
func (b *orderBook) Select(ctx context.Context, id int64, field, to string) (StatusEdit, error) {
	cur, err := b.lookup(ctx, id)
	if err != nil {
		return StatusEdit{}, err
	}
	edit := StatusEdit{OrderID: id, Field: field, To: to}
	switch field {
	case orders.FieldOrderStatus:
		edit.From = string(cur.OrderStatus)
		err = status.ValidateOrderTransition(cur.OrderStatus, status.OrderStatus(to))
	case orders.FieldPaymentStatus:
		edit.From = string(cur.PaymentStatus)
		err = status.ValidatePaymentTransition(cur.PaymentStatus, status.PaymentStatus(to))
	default:
		err = fmt.Errorf("unknown status field %q", field)
	}
	if err != nil {
		return StatusEdit{}, err
	}

	b.draftMu.Lock()
	b.draft = &edit
	b.draftMu.Unlock()
	return edit, nil
}

func (b *orderBook) Pending() (StatusEdit, bool) {
	b.draftMu.Lock()
	defer b.draftMu.Unlock()
	if b.draft == nil {
		return StatusEdit{}, false
	}
	return *b.draft, true
}

func (b *orderBook) CancelEdit() {
	b.draftMu.Lock()
	b.draft = nil
	b.draftMu.Unlock()
}

// ConfirmEdit dispatches the pending edit. The draft is cleared whether or
// not the backend accepts it.
func (b *orderBook) ConfirmEdit(ctx context.Context) (orders.Order, error) {
	b.draftMu.Lock()
	edit := b.draft
	b.draft = nil
	b.draftMu.Unlock()
	if edit == nil {
		return orders.Order{}, ErrNoDraft
	}
	if edit.Field == orders.FieldPaymentStatus {
		return b.UpdatePaymentStatus(ctx, edit.OrderID, status.PaymentStatus(edit.To))
	}
	return b.UpdateStatus(ctx, edit.OrderID, status.OrderStatus(edit.To))
}

func (b *orderBook) reset() {
	b.list.Reset()
	b.current.Reset()
	b.CancelEdit()
}

func orderKey(id int64) string { return "order:" + strconv.FormatInt(id, 10) }

// Orders is the online channel: the customer's own orders plus the staff
// view of all of them.
type Orders struct {
	*orderBook
	mine Resource[[]orders.Order]
}

func newOrders(sess *session) *Orders {
	return &Orders{orderBook: &orderBook{sess: sess, channel: orders.ChannelOnline}}
}

func (o *Orders) Mine() Snapshot[[]orders.Order] { return o.mine.Snapshot() }

func (o *Orders) FetchMine(ctx context.Context) ([]orders.Order, error) {
	tok, err := o.sess.authed()
	if err != nil {
		return nil, err
	}
	return o.mine.Load(ctx, "mine", func(ctx context.Context) ([]orders.Order, error) {
		list, err := o.sess.deps.API.MyOrders(ctx, tok)
		return list, o.sess.check(err)
	})
}

// placed records an order created by checkout.
func (o *Orders) placed(ord orders.Order) {
	o.mine.Update(func(list []orders.Order) []orders.Order {
		return append([]orders.Order{ord}, list...)
	})
	o.current.Set(ord)
}

func (o *Orders) reset() {
	o.orderBook.reset()
	o.mine.Reset()
}
