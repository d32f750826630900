package bybit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with message",
			err:  &APIError{Code: 10001, Message: "bad request"},
			want: "bybit: bad request (10001)",
		},
		{
			name: "without message",
			err:  &APIError{Code: 10002},
			want: "bybit: N/A (10002)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAPIError_Kind(t *testing.T) {
	tests := []struct {
		code int
		want Kind
	}{
		{code: 10001, want: KindBadRequest},
		{code: 10003, want: KindBadRequest},
		{code: 10004, want: KindAuthentication},
		{code: 10005, want: KindAuthentication},
		{code: 10006, want: KindRateLimit},
		{code: 10018, want: KindRateLimit},
		{code: 110007, want: KindInsufficientBalance},
		{code: 131212, want: KindInsufficientBalance},
		{code: 110001, want: KindInvalidOrder},
		{code: 10777, want: KindBadRequest},
		{code: 11777, want: KindInvalidOrder},
		{code: 999999, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("code %d", tt.code), func(t *testing.T) {
			err := &APIError{Code: tt.code}
			assert.Equal(t, tt.want, err.Kind())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "UNKNOWN", KindUnknown.String())
	assert.Equal(t, "BAD_REQUEST", KindBadRequest.String())
	assert.Equal(t, "AUTHENTICATION", KindAuthentication.String())
	assert.Equal(t, "RATE_LIMIT", KindRateLimit.String())
	assert.Equal(t, "INSUFFICIENT_BALANCE", KindInsufficientBalance.String())
	assert.Equal(t, "INVALID_ORDER", KindInvalidOrder.String())
}

func TestIsAPIError_Wrapped(t *testing.T) {
	inner := &APIError{Code: 10006, Message: "too many visits"}
	wrapped := fmt.Errorf("get funding balance: %w", inner)

	apiErr, ok := IsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 10006, apiErr.Code)
	assert.True(t, IsRateLimitError(wrapped))
	assert.False(t, IsAuthError(wrapped))
}

func TestIsAPIError_NotAPIError(t *testing.T) {
	_, ok := IsAPIError(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsAuthError(errors.New("plain")))
	assert.False(t, IsRateLimitError(nil))
}

func TestEncodeError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &EncodeError{Mode: ModeBody, Err: cause}

	assert.Equal(t, "encode body params: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestDecodeError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: cause}

	assert.Equal(t, "decode response: unexpected end of JSON input", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsDecodeError(fmt.Errorf("wrapped: %w", err)))
}
