package bybit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNilTransport is returned by New when no transport is supplied.
var ErrNilTransport = errors.New("nil transport")

// Client builds, signs, and executes requests against the asset endpoints.
// It holds immutable configuration only and is safe for concurrent use.
//
// The Client is a convenience layer; the request constructors and
// DecodeResponse work standalone for endpoints the Client does not cover.
type Client struct {
	creds      Credentials
	recvWindow time.Duration
	domain     string
	transport  Transport
	logger     zerolog.Logger
}

// Option configures optional Client behavior.
type Option func(*Client)

// WithLogger sets the logger for request diagnostics. The default discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New validates the config and returns a Client that sends requests through
// transport. The API domain is resolved once from Config.Sandbox.
func New(config *Config, transport Transport, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if transport == nil {
		return nil, ErrNilTransport
	}

	domain := Mainnet
	if config.Sandbox {
		domain = Testnet
	}

	c := &Client{
		creds:      *config.Credentials,
		recvWindow: config.RecvWindow,
		domain:     domain,
		transport:  transport,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetFundingBalance retrieves the coin balances of the wallet named by
// params.AccountType.
func (c *Client) GetFundingBalance(ctx context.Context, params FundingBalanceParams) (FundingBalance, error) {
	if params.Domain == "" {
		params.Domain = c.domain
	}

	req, err := NewGetRequest[FundingBalance](params, c.creds, c.recvWindow)
	if err != nil {
		return FundingBalance{}, err
	}

	c.logRequest(http.MethodGet, PathFundingBalance)
	return req.Execute(ctx, c.transport)
}

// CreateInternalTransfer moves funds between two wallets of the same
// account. A fresh UUID is generated as the transfer ID when
// params.TransferID is empty; the reply echoes the ID back.
func (c *Client) CreateInternalTransfer(ctx context.Context, params InternalTransferParams) (TransferResult, error) {
	if params.Domain == "" {
		params.Domain = c.domain
	}
	if params.TransferID == "" {
		params.TransferID = uuid.NewString()
	}

	req, err := NewPostRequest[TransferResult](params, c.creds, c.recvWindow)
	if err != nil {
		return TransferResult{}, err
	}

	c.logRequest(http.MethodPost, PathInternalTransfer)
	return req.Execute(ctx, c.transport)
}

// GetTransferRecords pages through the internal transfer history. Feed
// NextPageCursor from the reply into params.Cursor to fetch the next page.
func (c *Client) GetTransferRecords(ctx context.Context, params TransferRecordsParams) (TransferRecords, error) {
	if params.Domain == "" {
		params.Domain = c.domain
	}

	req, err := NewGetRequest[TransferRecords](params, c.creds, c.recvWindow)
	if err != nil {
		return TransferRecords{}, err
	}

	c.logRequest(http.MethodGet, PathTransferRecords)
	return req.Execute(ctx, c.transport)
}

func (c *Client) logRequest(method, path string) {
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("api_key", maskKey(c.creds.APIKey)).
		Msg("signed request")
}

// maskKey hides the middle of an API key for log output.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
