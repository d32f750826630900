package bybit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Authentication headers required on every signed request.
const (
	HeaderAPIKey     = "X-BAPI-API-KEY"
	HeaderSignature  = "X-BAPI-SIGN"
	HeaderTimestamp  = "X-BAPI-TIMESTAMP"
	HeaderRecvWindow = "X-BAPI-RECV-WINDOW"
)

// GetEndpoint is implemented by parameter structs of read-style operations.
// Such payloads travel as the URL query string of a signed GET request.
type GetEndpoint interface {
	GetEndpoint() Endpoint
}

// PostEndpoint is implemented by parameter structs of write-style operations.
// Such payloads travel as the JSON body of a signed POST request.
type PostEndpoint interface {
	PostEndpoint() Endpoint
}

// SignedRequest is a fully materialized signed request. It owns its method,
// URL, headers, and body, and never changes once built. Body holds the exact
// bytes the signature covers; transports must send them unmodified or the
// exchange rejects the signature.
type SignedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Transport executes a signed request and returns the raw response body.
// Timeouts, retries, and connection reuse are entirely the transport's
// business; the library invokes it exactly once per call and wraps whatever
// error it returns.
type Transport func(ctx context.Context, req *SignedRequest) ([]byte, error)

// Request is an inert signed request bound to the response payload type R.
// Building one performs no I/O; Execute sends it. Requests are
// self-contained and safe to build concurrently.
type Request[R any] struct {
	signed *SignedRequest
}

// Signed exposes the underlying wire request, e.g. for logging or for
// transports with richer interfaces than the Transport func.
func (r *Request[R]) Signed() *SignedRequest {
	return r.signed
}

// NewGetRequest encodes and signs p for the read-style endpoint it
// describes, binding the response payload type R. The query string is
// encoded once and the same bytes are signed and transmitted.
func NewGetRequest[R any](p GetEndpoint, creds Credentials, recvWindow time.Duration) (*Request[R], error) {
	return buildGet[R](p, creds, recvWindow, time.Now())
}

// NewPostRequest encodes and signs p for the write-style endpoint it
// describes, binding the response payload type R. The JSON body is encoded
// once and the same bytes are signed and transmitted.
func NewPostRequest[R any](p PostEndpoint, creds Credentials, recvWindow time.Duration) (*Request[R], error) {
	return buildPost[R](p, creds, recvWindow, time.Now())
}

func buildGet[R any](p GetEndpoint, creds Credentials, recvWindow time.Duration, now time.Time) (*Request[R], error) {
	query, err := Query(p).Encode()
	if err != nil {
		return nil, fmt.Errorf("build get request: %w", err)
	}

	signature := signPayload(creds.SecretKey, now, creds.APIKey, recvWindow, query)
	endpoint := p.GetEndpoint()

	return &Request[R]{signed: &SignedRequest{
		Method: http.MethodGet,
		URL:    endpoint.URI() + "?" + query,
		Header: authHeaders(creds.APIKey, signature, now, recvWindow),
	}}, nil
}

func buildPost[R any](p PostEndpoint, creds Credentials, recvWindow time.Duration, now time.Time) (*Request[R], error) {
	body, err := Body(p).Encode()
	if err != nil {
		return nil, fmt.Errorf("build post request: %w", err)
	}

	signature := signPayload(creds.SecretKey, now, creds.APIKey, recvWindow, body)
	endpoint := p.PostEndpoint()

	return &Request[R]{signed: &SignedRequest{
		Method: http.MethodPost,
		URL:    endpoint.URI(),
		Header: authHeaders(creds.APIKey, signature, now, recvWindow),
		Body:   []byte(body),
	}}, nil
}

// authHeaders assembles the authentication headers. The timestamp and window
// values must match the ones the signature was computed over.
func authHeaders(apiKey, signature string, timestamp time.Time, recvWindow time.Duration) http.Header {
	h := make(http.Header, 4)
	h.Set(HeaderAPIKey, apiKey)
	h.Set(HeaderSignature, signature)
	h.Set(HeaderTimestamp, strconv.FormatInt(timestamp.UnixMilli(), 10))
	h.Set(HeaderRecvWindow, strconv.FormatInt(recvWindow.Milliseconds(), 10))
	return h
}

// Execute sends the request through transport and decodes the reply.
// Transport failures are wrapped and propagated; retry policy is left to the
// caller. A reply with a non-zero retCode comes back as an *APIError.
func (r *Request[R]) Execute(ctx context.Context, transport Transport) (R, error) {
	raw, err := transport(ctx, r.signed)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("transport: %w", err)
	}
	return DecodeResponse[R](raw)
}
