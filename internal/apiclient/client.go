// Package apiclient talks to the PahanaEdu REST backend. It is the only place
// that knows the backend's paths, response envelopes and error bodies.
package apiclient

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/apperr"
)

const DefaultTimeout = 15 * time.Second

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	rc  *resty.Client
	log *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = "pahanaedu-client"
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", ua)

	return &Client{rc: rc, log: log}
}

type call struct {
	method string
	path   string
	token  string
	body   any
	query  map[string]string
}

// do executes the call and returns the raw body of a 2xx response. Transport
// failures become apperr.Unavailable and non-2xx responses go through
// apperr.FromResponse.
func (c *Client) do(ctx context.Context, cl call) ([]byte, error) {
	req := c.rc.R().SetContext(ctx)
	if cl.token != "" {
		req.SetAuthToken(cl.token)
	}
	if cl.body != nil {
		req.SetBody(cl.body)
	}
	if len(cl.query) > 0 {
		req.SetQueryParams(cl.query)
	}

	start := time.Now()
	resp, err := req.Execute(cl.method, cl.path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.log.Warn("backend unreachable",
			slog.String("method", cl.method),
			slog.String("path", cl.path),
			slog.Any("err", err),
		)
		return nil, apperr.FromTransport(err)
	}

	if resp.IsError() {
		ae := apperr.FromResponse(resp.StatusCode(), resp.Body())
		c.log.Info("backend error",
			slog.String("method", cl.method),
			slog.String("path", cl.path),
			slog.Int("status", resp.StatusCode()),
			slog.String("kind", string(ae.Kind)),
			slog.Duration("latency", time.Since(start)),
		)
		return nil, ae
	}
	return resp.Body(), nil
}

func (c *Client) get(ctx context.Context, token, path string) ([]byte, error) {
	return c.do(ctx, call{method: http.MethodGet, path: path, token: token})
}

func (c *Client) delete(ctx context.Context, token, path string) error {
	_, err := c.do(ctx, call{method: http.MethodDelete, path: path, token: token})
	return err
}

// IsUnauthorized reports whether err is the backend rejecting the token.
func IsUnauthorized(err error) bool {
	return apperr.IsKind(err, apperr.Unauthorized)
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	return apperr.IsKind(err, apperr.Unavailable) || errors.Is(err, context.DeadlineExceeded)
}
