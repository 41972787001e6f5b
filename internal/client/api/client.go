// Package api is the Go client of the Daybook REST API. It converts wire
// bodies to domain types and maps HTTP status codes back onto the domain
// sentinel errors, so callers can use errors.Is exactly as on the server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultReconnect = 2 * time.Second

// Client talks to one Daybook server. It is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	stream    *http.Client
	log       *slog.Logger
	reconnect time.Duration

	mu          sync.RWMutex
	accessToken string
	online      *bool
	onConnected func(online bool)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the client used for request/response calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger for transport diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithReconnect sets the delay before a dropped notification stream is reopened.
func WithReconnect(d time.Duration) Option {
	return func(c *Client) { c.reconnect = d }
}

// WithConnectivity registers fn to be told when the server becomes
// unreachable (false) and reachable again (true). Only changes are reported.
func WithConnectivity(fn func(online bool)) Option {
	return func(c *Client) { c.onConnected = fn }
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: 15 * time.Second},
		stream:    &http.Client{},
		log:       slog.Default(),
		reconnect: defaultReconnect,
	}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.With("component", "api_client")
	return c
}

// SetAccessToken sets the bearer token sent with every request. An empty
// token makes requests anonymous.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Client) setOnline(online bool) {
	c.mu.Lock()
	changed := c.online == nil || *c.online != online
	c.online = &online
	fn := c.onConnected
	c.mu.Unlock()

	if changed && fn != nil {
		fn(online)
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

// send performs the request and reports connectivity. Non-2xx responses are
// turned into errors and their bodies closed.
func (c *Client) send(hc *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := hc.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}
		c.setOnline(false)
		c.log.DebugContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, req.Method, req.URL.Path, err)
	}
	c.setOnline(true)

	if resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

// do sends in as JSON and decodes the response into out. out may be nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	resp, err := c.send(c.http, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}
