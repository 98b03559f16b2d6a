package apiclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
)

var ErrNoToken = errors.New("login response carried no token")

// AuthResult is what login and register hand back. User may be nil when the
// backend only returns a token.
type AuthResult struct {
	Token string      `json:"token"`
	User  *users.User `json:"user,omitempty"`
	Role  users.Role  `json:"role,omitempty"`
}

func (c *Client) Login(ctx context.Context, in users.Credentials) (AuthResult, error) {
	body, err := c.do(ctx, call{method: http.MethodPost, path: "/auth/login", body: in})
	if err != nil {
		return AuthResult{}, err
	}
	res, err := decodeEnvelope[AuthResult](body, "data")
	if err != nil {
		return AuthResult{}, err
	}
	res.Token = strings.TrimSpace(strings.TrimPrefix(res.Token, "Bearer "))
	if res.Token == "" {
		return AuthResult{}, ErrNoToken
	}
	if res.User != nil && res.User.Role == "" {
		res.User.Role = res.Role
	}
	return res, nil
}

// Register creates a customer account. The backend may or may not log the
// new user in; Token is empty when it does not.
func (c *Client) Register(ctx context.Context, in users.Registration) (AuthResult, error) {
	body, err := c.do(ctx, call{method: http.MethodPost, path: "/auth/register", body: in})
	if err != nil {
		return AuthResult{}, err
	}
	res, err := decodeEnvelope[AuthResult](body, "data")
	if err != nil {
		return AuthResult{}, err
	}
	res.Token = strings.TrimSpace(strings.TrimPrefix(res.Token, "Bearer "))
	return res, nil
}

func (c *Client) Me(ctx context.Context, token string) (users.User, error) {
	body, err := c.get(ctx, token, "/auth/me")
	if err != nil {
		return users.User{}, err
	}
	return decodeEnvelope[users.User](body, "user")
}
