package qs

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_DeclarationOrder(t *testing.T) {
	type params struct {
		A int    `url:"a"`
		B string `url:"b"`
	}

	got, err := Encode(params{A: 1, B: "x"})
	require.NoError(t, err)
	assert.Equal(t, "a=1&b=x", got)
}

func TestEncode_OrderNotAlphabetical(t *testing.T) {
	type params struct {
		Zulu  string `url:"zulu"`
		Alpha string `url:"alpha"`
		Mike  string `url:"mike"`
	}

	got, err := Encode(params{Zulu: "1", Alpha: "2", Mike: "3"})
	require.NoError(t, err)
	assert.Equal(t, "zulu=1&alpha=2&mike=3", got)
}

func TestEncode_OmitEmpty(t *testing.T) {
	type params struct {
		AccountType string `url:"accountType"`
		Coin        string `url:"coin,omitempty"`
		WithBonus   int    `url:"withBonus"`
	}

	tests := []struct {
		name   string
		params params
		want   string
	}{
		{
			name:   "coin omitted",
			params: params{AccountType: "FUND", WithBonus: 0},
			want:   "accountType=FUND&withBonus=0",
		},
		{
			name:   "coin present",
			params: params{AccountType: "FUND", Coin: "BTC", WithBonus: 1},
			want:   "accountType=FUND&coin=BTC&withBonus=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A standard query-string decoder recovers the original field values from
// the encoded form.
func TestEncode_RoundTrip(t *testing.T) {
	type params struct {
		AccountType string `url:"accountType"`
		Coin        string `url:"coin,omitempty"`
		WithBonus   int    `url:"withBonus"`
	}

	encoded, err := Encode(params{AccountType: "FUND", Coin: "BTC", WithBonus: 1})
	require.NoError(t, err)

	vals, err := url.ParseQuery(encoded)
	require.NoError(t, err)
	assert.Equal(t, "FUND", vals.Get("accountType"))
	assert.Equal(t, "BTC", vals.Get("coin"))
	assert.Equal(t, "1", vals.Get("withBonus"))
}

func TestEncode_PercentEncoding(t *testing.T) {
	type params struct {
		Note string `url:"note"`
	}

	got, err := Encode(params{Note: "a b&c=d"})
	require.NoError(t, err)
	assert.Equal(t, "note=a+b%26c%3Dd", got)
}

func TestEncode_SkipsDashTag(t *testing.T) {
	type params struct {
		Domain string `url:"-"`
		Coin   string `url:"coin"`
	}

	got, err := Encode(params{Domain: "https://example.com", Coin: "ETH"})
	require.NoError(t, err)
	assert.Equal(t, "coin=ETH", got)
}

func TestEncode_SkipsUnexported(t *testing.T) {
	type params struct {
		Coin   string `url:"coin"`
		cursor string
	}

	got, err := Encode(params{Coin: "ETH", cursor: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "coin=ETH", got)
}

func TestEncode_EmbeddedStruct(t *testing.T) {
	type page struct {
		Limit  int    `url:"limit,omitempty"`
		Cursor string `url:"cursor,omitempty"`
	}
	type params struct {
		Coin string `url:"coin"`
		page
	}

	got, err := Encode(params{Coin: "BTC", page: page{Limit: 20, Cursor: "next"}})
	require.NoError(t, err)
	assert.Equal(t, "coin=BTC&limit=20&cursor=next", got)
}

func TestEncode_NilPointer(t *testing.T) {
	type params struct {
		Coin string `url:"coin"`
	}

	got, err := Encode((*params)(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEncode_PointerToStruct(t *testing.T) {
	type params struct {
		Coin string `url:"coin"`
	}

	got, err := Encode(&params{Coin: "SOL"})
	require.NoError(t, err)
	assert.Equal(t, "coin=SOL", got)
}

func TestEncode_EmptyStruct(t *testing.T) {
	type params struct {
		Coin   string `url:"coin,omitempty"`
		Cursor string `url:"cursor,omitempty"`
	}

	got, err := Encode(params{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEncode_NotAStruct(t *testing.T) {
	_, err := Encode("coin=BTC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected struct")
}
