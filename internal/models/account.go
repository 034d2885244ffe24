package models

// Balances holds the balance snapshot reported for an account.
// Limit and UnofficialCurrencyCode are nullable on the wire.
type Balances struct {
	Available              float64  `json:"available"`
	Current                float64  `json:"current"`
	Limit                  *float64 `json:"limit"`
	ISOCurrencyCode        string   `json:"iso_currency_code"`
	UnofficialCurrencyCode *string  `json:"unofficial_currency_code"`
}

// Account represents a simulated bank account as exposed by the API.
type Account struct {
	AccountID    string   `json:"account_id"`
	Balances     Balances `json:"balances"`
	Mask         string   `json:"mask"`
	Name         string   `json:"name"`
	OfficialName string   `json:"official_name"`
	Subtype      string   `json:"subtype"`
	Type         string   `json:"type"`
}

// AccountNumber carries the banking numbers (RIB and SWIFT routing) for an
// account. Not every account has one.
type AccountNumber struct {
	Account     string `json:"account"`
	AccountID   string `json:"account_id"`
	Routing     string `json:"routing"`
	WireRouting string `json:"wire_routing"`
}

// Item is a simulated bank connection grouping account IDs under one access token.
type Item struct {
	ItemID     string
	AccountIDs []string
}
