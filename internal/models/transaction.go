package models

// Transaction is a synthetic transaction record. Records are generated fresh
// on every query and never stored.
type Transaction struct {
	TransactionID string   `json:"transaction_id"`
	AccountID     string   `json:"account_id"`
	Amount        float64  `json:"amount"`
	Date          string   `json:"date"`
	Datetime      string   `json:"datetime"`
	Name          string   `json:"name"`
	MerchantName  string   `json:"merchant_name"`
	Pending       bool     `json:"pending"`
	Category      []string `json:"category"`
}

// IsDebit reports whether the transaction is a debit (negative amount).
func (t Transaction) IsDebit() bool {
	return t.Amount < 0
}
