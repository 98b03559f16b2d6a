package store

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/cart"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
)

// cartKey serializes every cart mutation: adding a book and changing the
// quantity of its line touch the same row on the backend.
const cartKey = "cart"

type Cart struct {
	sess   *session
	orders *Orders
	res    Resource[cart.Cart]
	mut    Serializer
}

func (c *Cart) Snapshot() Snapshot[cart.Cart] { return c.res.Snapshot() }

// retryableCartError matches the two backend failures seen while a cart row
// is still being written. Only Fetch retries, and only once.
func retryableCartError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "transaction") || strings.Contains(msg, "CartItem")
}

func (c *Cart) Fetch(ctx context.Context) (cart.Cart, error) {
	tok, err := c.sess.authed()
	if err != nil {
		return cart.Cart{}, err
	}
	return c.res.Load(ctx, "cart", func(ctx context.Context) (cart.Cart, error) {
		ct, err := c.sess.deps.API.Cart(ctx, tok)
		if err != nil && retryableCartError(err) {
			delay := c.sess.deps.CartRetryDelay
			c.sess.log.Warn("cart fetch failed, retrying once", slog.Duration("delay", delay), slog.Any("err", err))
			t := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				t.Stop()
				return cart.Cart{}, ctx.Err()
			case <-t.C:
			}
			ct, err = c.sess.deps.API.Cart(ctx, tok)
		}
		return ct, c.sess.check(err)
	})
}

// apply stores a mutation result. Endpoints that answer with only a message
// leave Items nil, so the cart is fetched again.
func (c *Cart) apply(ctx context.Context, tok string, ct cart.Cart) (cart.Cart, error) {
	if ct.Items != nil {
		c.res.Set(ct)
		return ct, nil
	}
	fresh, err := c.sess.deps.API.Cart(ctx, tok)
	if err != nil {
		c.res.Fail(err)
		return cart.Cart{}, c.sess.check(err)
	}
	c.res.Set(fresh)
	return fresh, nil
}

func (c *Cart) Add(ctx context.Context, in cart.AddInput) (cart.Cart, error) {
	tok, err := c.sess.authed()
	if err != nil {
		return cart.Cart{}, err
	}
	if in.Quantity <= 0 || in.Quantity > cart.MaxQuantity {
		return cart.Cart{}, ErrInvalidQuantity
	}
	var out cart.Cart
	err = c.mut.Do(ctx, cartKey, func(ctx context.Context) error {
		ct, err := c.sess.deps.API.AddToCart(ctx, tok, in)
		if err != nil {
			return c.sess.check(err)
		}
		out, err = c.apply(ctx, tok, ct)
		return err
	})
	return out, err
}

// UpdateQuantity changes one line. Cart mutations are applied in the order
// they were made.
func (c *Cart) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (cart.Cart, error) {
	tok, err := c.sess.authed()
	if err != nil {
		return cart.Cart{}, err
	}
	if quantity <= 0 || quantity > cart.MaxQuantity {
		return cart.Cart{}, ErrInvalidQuantity
	}
	var out cart.Cart
	err = c.mut.Do(ctx, cartKey, func(ctx context.Context) error {
		ct, err := c.sess.deps.API.UpdateCartItem(ctx, tok, itemID, quantity)
		if err != nil {
			return c.sess.check(err)
		}
		out, err = c.apply(ctx, tok, ct)
		return err
	})
	return out, err
}

func (c *Cart) Remove(ctx context.Context, itemID int64) (cart.Cart, error) {
	tok, err := c.sess.authed()
	if err != nil {
		return cart.Cart{}, err
	}
	var out cart.Cart
	err = c.mut.Do(ctx, cartKey, func(ctx context.Context) error {
		if err := c.sess.deps.API.RemoveCartItem(ctx, tok, itemID); err != nil {
			return c.sess.check(err)
		}
		c.res.Update(func(ct cart.Cart) cart.Cart {
			items := make([]cart.Item, 0, len(ct.Items))
			for _, it := range ct.Items {
				if it.ID != itemID {
					items = append(items, it)
				}
			}
			ct.Items = items
			return ct
		})
		out, _ = c.res.Get()
		return nil
	})
	return out, err
}

func (c *Cart) Clear(ctx context.Context) error {
	tok, err := c.sess.authed()
	if err != nil {
		return err
	}
	return c.mut.Do(ctx, cartKey, func(ctx context.Context) error {
		if err := c.sess.deps.API.ClearCart(ctx, tok); err != nil {
			return c.sess.check(err)
		}
		c.res.Set(cart.Cart{Items: []cart.Item{}})
		return nil
	})
}

// Checkout turns the cart into an order. A missing order number is
// generated here; the backend may replace it.
func (c *Cart) Checkout(ctx context.Context, in orders.CheckoutInput) (orders.Order, error) {
	tok, err := c.sess.authed()
	if err != nil {
		return orders.Order{}, err
	}
	if strings.TrimSpace(in.OrderNumber) == "" {
		in.OrderNumber = orders.NewOrderNumber(c.sess.deps.Now())
	}
	var out orders.Order
	err = c.mut.Do(ctx, cartKey, func(ctx context.Context) error {
		o, err := c.sess.deps.API.Checkout(ctx, tok, in)
		if err != nil {
			return c.sess.check(err)
		}
		out = o
		c.res.Set(cart.Cart{Items: []cart.Item{}})
		c.orders.placed(o)
		c.sess.log.Info("checkout", slog.Int64("order_id", o.ID), slog.String("order_number", o.OrderNumber))
		return nil
	})
	return out, err
}
