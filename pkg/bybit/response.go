package bybit

import (
	"encoding/json"

	"github.com/bytedance/sonic"
)

// Response is the envelope the exchange wraps around every reply. Success
// and failure share this shape and arrive with HTTP 200 alike; only RetCode
// tells them apart.
type Response[T any] struct {
	// RetCode is zero on success and an error code otherwise.
	RetCode int `json:"retCode"`
	// RetMsg is "OK" or similar on success, a description on failure.
	RetMsg string `json:"retMsg"`
	// Result carries the operation's payload. On failure it is empty or
	// absent.
	Result T `json:"result"`
	// RetExtInfo carries extra detail for a few endpoints; usually {}.
	RetExtInfo json.RawMessage `json:"retExtInfo,omitempty"`
	// Time is the server timestamp in epoch milliseconds.
	Time int64 `json:"time"`
}

// envelopeProbe is the loosely-typed first pass over a reply. RetCode is a
// pointer so a missing discriminator is told apart from a literal zero.
type envelopeProbe struct {
	RetCode *int   `json:"retCode"`
	RetMsg  string `json:"retMsg"`
}

// DecodeResponse disambiguates the two structurally identical reply shapes
// and returns the typed result or a structured error.
//
// The discriminator is probed first: a missing or unreadable retCode is a
// *DecodeError, a non-zero one is an *APIError carrying the exchange's code
// and message, and only a literal zero causes the full envelope to be
// decoded into T. The HTTP status plays no part here; transports handle
// non-2xx replies before bytes reach this function.
func DecodeResponse[T any](data []byte) (T, error) {
	var zero T

	var probe envelopeProbe
	if err := sonic.Unmarshal(data, &probe); err != nil {
		return zero, &DecodeError{Err: err}
	}
	if probe.RetCode == nil {
		return zero, &DecodeError{Err: errMissingRetCode}
	}
	if *probe.RetCode != 0 {
		return zero, &APIError{Code: *probe.RetCode, Message: probe.RetMsg}
	}

	var envelope Response[T]
	if err := sonic.Unmarshal(data, &envelope); err != nil {
		return zero, &DecodeError{Err: err}
	}
	return envelope.Result, nil
}
