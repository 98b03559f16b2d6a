package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
)

func userPath(id int64) string { return "/user/" + strconv.FormatInt(id, 10) }

func (c *Client) Users(ctx context.Context, token string) ([]users.User, error) {
	body, err := c.get(ctx, token, "/user")
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]users.User](body, "users")
}

func (c *Client) Customers(ctx context.Context, token string) ([]users.User, error) {
	body, err := c.get(ctx, token, "/user/customers")
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]users.User](body, "customers", "users")
}

func (c *Client) User(ctx context.Context, token string, id int64) (users.User, error) {
	body, err := c.get(ctx, token, userPath(id))
	if err != nil {
		return users.User{}, err
	}
	return decodeEnvelope[users.User](body, "user")
}

func (c *Client) UserByAccount(ctx context.Context, token, accountNumber string) (users.User, error) {
	acc := url.PathEscape(strings.ToUpper(strings.TrimSpace(accountNumber)))
	body, err := c.get(ctx, token, "/user/account/"+acc)
	if err != nil {
		return users.User{}, err
	}
	return decodeEnvelope[users.User](body, "user")
}

func (c *Client) CreateUser(ctx context.Context, token string, in users.Input) (users.User, error) {
	body, err := c.do(ctx, call{method: http.MethodPost, path: "/user", token: token, body: in})
	if err != nil {
		return users.User{}, err
	}
	return decodeEnvelope[users.User](body, "user")
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int64, in users.Input) (users.User, error) {
	body, err := c.do(ctx, call{method: http.MethodPut, path: userPath(id), token: token, body: in})
	if err != nil {
		return users.User{}, err
	}
	return decodeEnvelope[users.User](body, "user")
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, token, userPath(id))
}
