package bybit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// Sign computes the request signature required by the V5 authentication
// scheme: HMAC-SHA256 over the concatenation of the millisecond timestamp,
// the API key, the millisecond receive window, and the encoded parameters,
// keyed with the API secret and rendered as lowercase hex.
//
// The concatenation carries no delimiters, so the exchange can only verify
// it against the header values transmitted with the request; the same
// timestamp and window must appear in X-BAPI-TIMESTAMP and
// X-BAPI-RECV-WINDOW. Signing itself accepts any inputs and fails only when
// the payload cannot be encoded.
func Sign[T any](secret string, timestamp time.Time, apiKey string, recvWindow time.Duration, params Params[T]) (string, error) {
	encoded, err := params.Encode()
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}
	return signPayload(secret, timestamp, apiKey, recvWindow, encoded), nil
}

// signPayload signs an already-encoded payload. Split from Sign so request
// building encodes exactly once and signs the same bytes it transmits.
func signPayload(secret string, timestamp time.Time, apiKey string, recvWindow time.Duration, payload string) string {
	base := strconv.FormatInt(timestamp.UnixMilli(), 10) +
		apiKey +
		strconv.FormatInt(recvWindow.Milliseconds(), 10) +
		payload

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(base))
	return hex.EncodeToString(mac.Sum(nil))
}
