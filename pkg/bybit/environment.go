package bybit

// API base URLs.
const (
	// Mainnet is the production REST domain.
	Mainnet = "https://api.bybit.com"
	// Testnet is the sandbox REST domain. Orders and transfers placed here
	// never touch real funds.
	Testnet = "https://api-testnet.bybit.com"
)

// Endpoint identifies where a request is sent: an API domain plus the path
// of one concrete operation.
type Endpoint struct {
	Domain string
	Path   string
}

// URI returns the full address of the endpoint without query parameters.
func (e Endpoint) URI() string {
	return e.Domain + e.Path
}

// defaultDomain falls back to Mainnet when no domain is configured, matching
// the zero value of the endpoint parameter structs.
func defaultDomain(domain string) string {
	if domain == "" {
		return Mainnet
	}
	return domain
}
