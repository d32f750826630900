package bybit

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
)

// V5 asset endpoint paths.
const (
	PathFundingBalance   = "/v5/asset/transfer/query-account-coins-balance"
	PathInternalTransfer = "/v5/asset/transfer/inter-transfer"
	PathTransferRecords  = "/v5/asset/transfer/query-inter-transfer-list"
)

// AccountType names the wallet an asset operation addresses.
type AccountType string

// Account types recognized by the V5 asset endpoints.
const (
	AccountUnified  AccountType = "UNIFIED"
	AccountFund     AccountType = "FUND"
	AccountContract AccountType = "CONTRACT"
	AccountSpot     AccountType = "SPOT"
)

// IsValid reports whether t is one of the recognized account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountUnified, AccountFund, AccountContract, AccountSpot:
		return true
	default:
		return false
	}
}

// TransferStatus is the lifecycle state of an internal transfer.
type TransferStatus string

// Transfer states reported by the exchange.
const (
	TransferSuccess TransferStatus = "SUCCESS"
	TransferPending TransferStatus = "PENDING"
	TransferFailed  TransferStatus = "FAILED"
)

// Decimal is an arbitrary-precision decimal as the exchange transmits it: a
// JSON string. The empty string, which the exchange uses for absent amounts,
// decodes to zero.
type Decimal struct {
	apd.Decimal
}

// NewDecimal parses s as an arbitrary-precision decimal.
func NewDecimal(s string) (Decimal, error) {
	var d Decimal
	if _, _, err := apd.BaseContext.SetString(&d.Decimal, s); err != nil {
		return Decimal{}, fmt.Errorf("set decimal from string: %w", err)
	}
	return d, nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting a JSON string.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	var s string
	if err := sonic.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decimal must be a JSON string: %w", err)
	}
	if s == "" {
		d.Decimal = apd.Decimal{}
		return nil
	}
	if _, _, err := apd.BaseContext.SetString(&d.Decimal, s); err != nil {
		return fmt.Errorf("set decimal from string: %w", err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler, rendering the decimal as a JSON
// string the way the exchange expects amounts.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(d.Decimal.String())
}

// EncodeValues implements query.Encoder so decimals render as their plain
// string form in URL queries.
func (d Decimal) EncodeValues(key string, v *url.Values) error {
	v.Set(key, d.Decimal.String())
	return nil
}

// FundingBalanceParams queries the coin balances of one wallet. With
// AccountFund it covers the funding wallet, the default destination of
// fiat on-ramps and internal transfers.
type FundingBalanceParams struct {
	// Domain overrides the API environment; empty means Mainnet. A Client
	// fills it from its own configuration.
	Domain string `url:"-" json:"-"`

	// AccountType selects the wallet to read.
	AccountType AccountType `url:"accountType" json:"accountType"`
	// Coin narrows the reply to a single coin when set.
	Coin string `url:"coin,omitempty" json:"coin,omitempty"`
	// WithBonus set to 1 includes bonus balances in the reply.
	WithBonus int `url:"withBonus" json:"withBonus"`
}

// GetEndpoint marks the params as a read-style operation.
func (p FundingBalanceParams) GetEndpoint() Endpoint {
	return Endpoint{Domain: defaultDomain(p.Domain), Path: PathFundingBalance}
}

// CoinBalance is one coin's balance inside a wallet.
type CoinBalance struct {
	Coin            string  `json:"coin"`
	TransferBalance Decimal `json:"transferBalance"`
	WalletBalance   Decimal `json:"walletBalance"`
	Bonus           Decimal `json:"bonus"`
}

// FundingBalance is the reply payload of the funding balance query.
type FundingBalance struct {
	AccountType AccountType   `json:"accountType"`
	MemberID    string        `json:"memberId"`
	Balance     []CoinBalance `json:"balance"`
}

// InternalTransferParams moves funds between two wallets of the same
// account, a write-style operation.
type InternalTransferParams struct {
	// Domain overrides the API environment; empty means Mainnet. A Client
	// fills it from its own configuration.
	Domain string `url:"-" json:"-"`

	// TransferID is the idempotency key of the transfer, a UUID. The Client
	// generates one when left empty.
	TransferID string `json:"transferId" url:"transferId"`
	// Coin names the asset to move, e.g. "USDT".
	Coin string `json:"coin" url:"coin"`
	// Amount is the quantity to move, transmitted as a decimal string.
	Amount Decimal `json:"amount" url:"amount"`
	// FromAccountType is the wallet debited.
	FromAccountType AccountType `json:"fromAccountType" url:"fromAccountType"`
	// ToAccountType is the wallet credited.
	ToAccountType AccountType `json:"toAccountType" url:"toAccountType"`
}

// PostEndpoint marks the params as a write-style operation.
func (p InternalTransferParams) PostEndpoint() Endpoint {
	return Endpoint{Domain: defaultDomain(p.Domain), Path: PathInternalTransfer}
}

// TransferResult is the reply payload of a transfer creation. Status may be
// empty when the exchange omits it.
type TransferResult struct {
	TransferID string         `json:"transferId"`
	Status     TransferStatus `json:"status"`
}

// TransferRecordsParams pages through the internal transfer history. All
// filters are optional; an empty struct returns the most recent records.
type TransferRecordsParams struct {
	// Domain overrides the API environment; empty means Mainnet. A Client
	// fills it from its own configuration.
	Domain string `url:"-" json:"-"`

	TransferID string         `url:"transferId,omitempty" json:"transferId,omitempty"`
	Coin       string         `url:"coin,omitempty" json:"coin,omitempty"`
	Status     TransferStatus `url:"status,omitempty" json:"status,omitempty"`
	// StartTime and EndTime bound the query in epoch milliseconds.
	StartTime int64 `url:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   int64 `url:"endTime,omitempty" json:"endTime,omitempty"`
	// Limit caps the page size; the exchange allows at most 50.
	Limit  int    `url:"limit,omitempty" json:"limit,omitempty"`
	Cursor string `url:"cursor,omitempty" json:"cursor,omitempty"`
}

// GetEndpoint marks the params as a read-style operation.
func (p TransferRecordsParams) GetEndpoint() Endpoint {
	return Endpoint{Domain: defaultDomain(p.Domain), Path: PathTransferRecords}
}

// TransferRecord is one internal transfer returned by the history query.
type TransferRecord struct {
	TransferID      string      `json:"transferId"`
	Coin            string      `json:"coin"`
	Amount          Decimal     `json:"amount"`
	FromAccountType AccountType `json:"fromAccountType"`
	ToAccountType   AccountType `json:"toAccountType"`
	// Timestamp is the creation time in epoch milliseconds, transmitted as a
	// string. Use Time to parse it.
	Timestamp string         `json:"timestamp"`
	Status    TransferStatus `json:"status"`
}

// Time parses the record's millisecond timestamp.
func (r TransferRecord) Time() (time.Time, error) {
	ms, err := strconv.ParseInt(r.Timestamp, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse transfer timestamp: %w", err)
	}
	return time.UnixMilli(ms), nil
}

// TransferRecords is the reply payload of the transfer history query.
type TransferRecords struct {
	List []TransferRecord `json:"list"`
	// NextPageCursor feeds the next query's Cursor; empty on the last page.
	NextPageCursor string `json:"nextPageCursor"`
}
