package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
)

// Online orders live under /orders, in-store ones under /employee-orders.
// Both share the same shape.
func basePath(ch orders.Channel) string {
	if ch == orders.ChannelInStore {
		return "/employee-orders"
	}
	return "/orders"
}

func orderPath(ch orders.Channel, id int64) string {
	return basePath(ch) + "/" + strconv.FormatInt(id, 10)
}

func singleKeys(ch orders.Channel) []string {
	if ch == orders.ChannelInStore {
		return []string{"employeeOrder", "order"}
	}
	return []string{"order"}
}

func listKeys(ch orders.Channel) []string {
	if ch == orders.ChannelInStore {
		return []string{"employeeOrders", "orders"}
	}
	return []string{"orders"}
}

func (c *Client) decodeOrder(body []byte, ch orders.Channel) (orders.Order, error) {
	o, err := decodeEnvelope[orders.Order](body, singleKeys(ch)...)
	if err != nil {
		return orders.Order{}, err
	}
	return orders.Normalize(o, ch), nil
}

func (c *Client) decodeOrders(body []byte, ch orders.Channel) ([]orders.Order, error) {
	list, err := decodeEnvelope[[]orders.Order](body, listKeys(ch)...)
	if err != nil {
		return nil, err
	}
	return orders.NormalizeAll(list, ch), nil
}

// MyOrders lists the caller's online orders.
func (c *Client) MyOrders(ctx context.Context, token string) ([]orders.Order, error) {
	body, err := c.get(ctx, token, "/orders/my")
	if err != nil {
		return nil, err
	}
	return c.decodeOrders(body, orders.ChannelOnline)
}

// Orders lists every order of the channel (staff only).
func (c *Client) Orders(ctx context.Context, token string, ch orders.Channel) ([]orders.Order, error) {
	body, err := c.get(ctx, token, basePath(ch))
	if err != nil {
		return nil, err
	}
	return c.decodeOrders(body, ch)
}

func (c *Client) Order(ctx context.Context, token string, ch orders.Channel, id int64) (orders.Order, error) {
	body, err := c.get(ctx, token, orderPath(ch, id))
	if err != nil {
		return orders.Order{}, err
	}
	return c.decodeOrder(body, ch)
}

func (c *Client) CreateInStoreOrder(ctx context.Context, token string, in orders.InStoreInput) (orders.Order, error) {
	body, err := c.do(ctx, call{
		method: http.MethodPost,
		path:   basePath(orders.ChannelInStore),
		token:  token,
		body:   in,
	})
	if err != nil {
		return orders.Order{}, err
	}
	return c.decodeOrder(body, orders.ChannelInStore)
}

// UpdateOrderStatus sends the new status as a query parameter, not a body.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, ch orders.Channel, id int64, to status.OrderStatus) (orders.Order, error) {
	return c.patchStatus(ctx, token, ch, orderPath(ch, id)+"/status", string(to))
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, token string, ch orders.Channel, id int64, to status.PaymentStatus) (orders.Order, error) {
	return c.patchStatus(ctx, token, ch, orderPath(ch, id)+"/payment-status", string(to))
}

func (c *Client) patchStatus(ctx context.Context, token string, ch orders.Channel, path, value string) (orders.Order, error) {
	body, err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   path,
		token:  token,
		query:  map[string]string{"status": value},
	})
	if err != nil {
		return orders.Order{}, err
	}
	return c.decodeOrder(body, ch)
}
