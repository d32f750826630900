package bybit

import (
	"github.com/bytedance/sonic"

	"nakula/internal/qs"
)

// Mode selects the wire encoding of a request payload.
type Mode int

// Transmission modes. The request builder picks the mode from the HTTP verb;
// it is never inferred from the payload's shape.
const (
	// ModeQuery encodes the payload as a URL query string. Used by GET
	// endpoints.
	ModeQuery Mode = iota
	// ModeBody encodes the payload as a compact JSON object. Used by POST
	// endpoints.
	ModeBody
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeQuery:
		return "QUERY"
	case ModeBody:
		return "BODY"
	default:
		return "UNKNOWN"
	}
}

// Params pairs a typed request payload with its transmission mode. The zero
// value is not meaningful; construct values with Query or Body.
type Params[T any] struct {
	mode  Mode
	value T
}

// Query wraps a payload for transmission as a URL query string.
func Query[T any](v T) Params[T] {
	return Params[T]{mode: ModeQuery, value: v}
}

// Body wraps a payload for transmission as a JSON request body.
func Body[T any](v T) Params[T] {
	return Params[T]{mode: ModeBody, value: v}
}

// Mode reports the transmission mode the payload was wrapped with.
func (p Params[T]) Mode() Mode {
	return p.mode
}

// Value returns the wrapped payload.
func (p Params[T]) Value() T {
	return p.value
}

// Encode renders the payload in its wire form: a percent-encoded query string
// with parameters in field declaration order for ModeQuery, compact JSON for
// ModeBody. The result is the exact string the request signature covers.
func (p Params[T]) Encode() (string, error) {
	switch p.mode {
	case ModeQuery:
		encoded, err := qs.Encode(p.value)
		if err != nil {
			return "", &EncodeError{Mode: ModeQuery, Err: err}
		}
		return encoded, nil
	case ModeBody:
		data, err := sonic.Marshal(p.value)
		if err != nil {
			return "", &EncodeError{Mode: ModeBody, Err: err}
		}
		return string(data), nil
	default:
		return "", &EncodeError{Mode: p.mode, Err: errUnknownMode}
	}
}
