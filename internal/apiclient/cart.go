package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/cart"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
)

func cartItemPath(id int64) string { return "/cart/items/" + strconv.FormatInt(id, 10) }

func (c *Client) Cart(ctx context.Context, token string) (cart.Cart, error) {
	body, err := c.get(ctx, token, "/cart")
	if err != nil {
		return cart.Cart{}, err
	}
	return decodeCart(body)
}

func (c *Client) AddToCart(ctx context.Context, token string, in cart.AddInput) (cart.Cart, error) {
	body, err := c.do(ctx, call{method: http.MethodPost, path: "/cart/items", token: token, body: in})
	if err != nil {
		return cart.Cart{}, err
	}
	return decodeCart(body)
}

func (c *Client) UpdateCartItem(ctx context.Context, token string, itemID int64, quantity int) (cart.Cart, error) {
	body, err := c.do(ctx, call{
		method: http.MethodPut,
		path:   cartItemPath(itemID),
		token:  token,
		body:   cart.QuantityInput{Quantity: quantity},
	})
	if err != nil {
		return cart.Cart{}, err
	}
	return decodeCart(body)
}

func (c *Client) RemoveCartItem(ctx context.Context, token string, itemID int64) error {
	return c.delete(ctx, token, cartItemPath(itemID))
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.delete(ctx, token, "/cart")
}

func (c *Client) Checkout(ctx context.Context, token string, in orders.CheckoutInput) (orders.Order, error) {
	body, err := c.do(ctx, call{method: http.MethodPost, path: "/cart/checkout", token: token, body: in})
	if err != nil {
		return orders.Order{}, err
	}
	o, err := decodeEnvelope[orders.Order](body, "order")
	if err != nil {
		return orders.Order{}, err
	}
	return orders.Normalize(o, orders.ChannelOnline), nil
}

// decodeCart also accepts a bare item array. Mutation endpoints that answer
// with only a message decode to an empty cart with Items == nil.
func decodeCart(body []byte) (cart.Cart, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []cart.Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return cart.Cart{}, fmt.Errorf("decode cart items: %w", err)
		}
		return normalizeCart(cart.Cart{Items: items}), nil
	}
	ct, err := decodeEnvelope[cart.Cart](body, "cart")
	if err != nil {
		return cart.Cart{}, err
	}
	return normalizeCart(ct), nil
}

func normalizeCart(ct cart.Cart) cart.Cart {
	for i, it := range ct.Items {
		if it.Book != nil {
			b := books.Normalize(*it.Book)
			it.Book = &b
			if it.BookID == 0 {
				it.BookID = b.ID
			}
		}
		ct.Items[i] = it
	}
	return ct
}
