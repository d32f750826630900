package bybit

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes an exchange error code for programmatic handling.
type Kind int

// Kind constants group the V5 retCode space into handling categories.
const (
	// KindUnknown indicates a code this library has no classification for.
	KindUnknown Kind = iota
	// KindBadRequest indicates invalid request parameters.
	KindBadRequest
	// KindAuthentication indicates an invalid signature, key, or permission.
	KindAuthentication
	// KindRateLimit indicates the request budget was exceeded.
	KindRateLimit
	// KindInsufficientBalance indicates the account lacks required funds.
	KindInsufficientBalance
	// KindInvalidOrder indicates the operation violates exchange rules.
	KindInvalidOrder
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return [...]string{
		"UNKNOWN",
		"BAD_REQUEST",
		"AUTHENTICATION",
		"RATE_LIMIT",
		"INSUFFICIENT_BALANCE",
		"INVALID_ORDER",
	}[k]
}

// Sentinel errors for malformed replies and payloads.
var (
	// errMissingRetCode is reported when a reply carries no retCode field, so
	// neither outcome of the envelope can be established.
	errMissingRetCode = errors.New("reply has no retCode field")
	// errUnknownMode is reported when params carry a mode this library does
	// not define.
	errUnknownMode = errors.New("unknown transmission mode")
)

// EncodeError reports that a request payload could not be rendered in its
// wire encoding. Nothing is signed or sent when encoding fails.
type EncodeError struct {
	// Mode is the transmission mode that was being rendered.
	Mode Mode
	// Err is the underlying encoder failure.
	Err error
}

// Error implements the error interface for EncodeError.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s params: %v", strings.ToLower(e.Mode.String()), e.Err)
}

// Unwrap returns the underlying encoder failure.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError reports a reply that matched neither the success envelope nor
// the error shape. It is fatal for the call and usually means the response
// was not produced by the API, or the API contract changed.
type DecodeError struct {
	// Err is the underlying decoder failure.
	Err error
}

// Error implements the error interface for DecodeError.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying decoder failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError is an application-level failure the exchange reports in-band:
// HTTP 200 with a non-zero retCode in the envelope. Code is never zero.
type APIError struct {
	// Code is the exchange-specific error code from retCode.
	Code int
	// Message is the human-readable description from retMsg. It may be empty
	// when the exchange sends none.
	Message string
}

// Error returns the exchange message followed by the numeric code, with N/A
// standing in when the reply carried no message.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "N/A"
	}
	return fmt.Sprintf("bybit: %s (%d)", msg, e.Code)
}

// Kind classifies the error code into a handling category. Codes outside the
// mapped ranges come back as KindUnknown.
func (e *APIError) Kind() Kind {
	return classifyRetCode(e.Code)
}

// classifyRetCode maps a V5 error code to its handling category,
// per the error code reference: https://bybit-exchange.github.io/docs/v5/error
func classifyRetCode(code int) Kind {
	switch code {
	case 10001, 10002, 10003:
		return KindBadRequest
	case 10004, 10005:
		return KindAuthentication
	case 10006, 10010, 10017, 10018:
		return KindRateLimit
	case 110007, 110012, 110013, 110043, 131212:
		return KindInsufficientBalance
	case 110001, 110002, 110003, 110004, 110005:
		return KindInvalidOrder
	default:
		if code >= 10000 && code < 11000 {
			return KindBadRequest
		}
		if code >= 11000 && code < 12000 {
			return KindInvalidOrder
		}
		return KindUnknown
	}
}

// IsAPIError extracts the exchange-reported error from err, if any.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAuthError checks if the error is an authentication failure reported by
// the exchange.
func IsAuthError(err error) bool {
	apiErr, ok := IsAPIError(err)
	return ok && apiErr.Kind() == KindAuthentication
}

// IsRateLimitError checks if the error is a rate limit rejection reported by
// the exchange.
func IsRateLimitError(err error) bool {
	apiErr, ok := IsAPIError(err)
	return ok && apiErr.Kind() == KindRateLimit
}

// IsDecodeError checks if the error came from an unrecognizable reply.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}
