package bybit

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Credentials holds the API key pair used to sign requests.
type Credentials struct {
	// APIKey is the public key identifier, transmitted in X-BAPI-API-KEY.
	APIKey string `json:"api_key" validate:"required"`
	// SecretKey is the private key requests are signed with. It is only ever
	// fed to the HMAC and never transmitted.
	SecretKey string `json:"secret_key" validate:"required"`
}

// Config contains all configuration options for a Client. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	Credentials *Credentials `json:"credentials" validate:"required"`

	// RecvWindow is the staleness tolerance the exchange grants between the
	// request's X-BAPI-TIMESTAMP and its own clock. Requests older than this
	// are rejected with an authentication error.
	RecvWindow time.Duration `json:"recv_window" validate:"min=1ms"`

	// Sandbox routes requests to the testnet domain instead of production.
	Sandbox bool `json:"sandbox"`
}

// DefaultConfig returns a Config with the given credentials and the
// conventional 5 second receive window.
func DefaultConfig(creds Credentials) *Config {
	return &Config{
		Credentials: &creds,
		RecvWindow:  5 * time.Second,
		Sandbox:     false,
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithRecvWindow sets the receive window and returns the config for chaining.
func (c *Config) WithRecvWindow(window time.Duration) *Config {
	c.RecvWindow = window
	return c
}

// WithSandbox enables or disables sandbox mode and returns the config for chaining.
func (c *Config) WithSandbox(sandbox bool) *Config {
	c.Sandbox = sandbox
	return c
}
