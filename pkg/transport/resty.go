// Package transport provides a ready-made HTTP transport for signed
// requests, backed by resty. It sends the pre-signed bytes verbatim and
// hands the raw response body back; envelope decoding stays with the caller.
package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"nakula/pkg/bybit"
)

// ErrClientClosed is returned when attempting to use a closed client.
var ErrClientClosed = errors.New("client is closed")

// HTTPError is a non-2xx reply from the HTTP edge (gateway, load balancer),
// reported before any response envelope exists. Replies that reach the API
// itself come back 200 with their error inside the envelope.
type HTTPError struct {
	// StatusCode is the numeric HTTP status.
	StatusCode int
	// Status is the full status line, e.g. "502 Bad Gateway".
	Status string
	// Body is the raw reply body, kept for diagnostics.
	Body []byte
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s", e.Status)
}

// Config holds the transport's networking options.
type Config struct {
	// Timeout is the maximum duration for a request, connection included.
	Timeout time.Duration `validate:"min=1ms"`
	// Headers are added to every request, e.g. a User-Agent.
	Headers map[string]string `validate:"omitempty"`
}

// DefaultConfig returns a Config with a 10s timeout.
func DefaultConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

// Client executes signed requests over a shared resty client. Its Do method
// satisfies bybit.Transport. The zero value is not usable; construct with
// NewClient and Close when done.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
	mu     sync.RWMutex
	closed bool
}

// Option configures optional Client behavior.
type Option func(*Client)

// WithLogger sets the logger for request and response diagnostics. The
// default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient validates the config and returns a ready transport client.
func NewClient(config *Config, opts ...Option) (*Client, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := resty.New()
	client.SetTimeout(config.Timeout)
	for k, v := range config.Headers {
		client.SetHeader(k, v)
	}

	c := &Client{
		client: client,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		c.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		c.logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return c, nil
}

// Do executes a signed request and returns the raw response body. The body
// bytes of req are transmitted exactly as signed; nothing is re-encoded.
// Non-2xx statuses come back as *HTTPError.
func (c *Client) Do(ctx context.Context, req *bybit.SignedRequest) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrClientClosed
	}

	r := c.client.R().SetContext(ctx)
	for name, values := range req.Header {
		for _, value := range values {
			r.SetHeader(name, value)
		}
	}
	if len(req.Body) > 0 {
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	if resp.StatusCode() >= 400 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       append([]byte(nil), resp.Bytes()...),
		}
	}

	return resp.Bytes(), nil
}

// Close releases the underlying connections. Subsequent calls to Do return
// ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}
