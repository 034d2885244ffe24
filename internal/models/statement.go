package models

// Statement is a synthetic monthly statement record. The totals are
// independent random draws and are not required to reconcile the balances.
type Statement struct {
	StatementID      string  `json:"statement_id"`
	AccountID        string  `json:"account_id"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	StartingBalance  float64 `json:"starting_balance"`
	EndingBalance    float64 `json:"ending_balance"`
	TotalDeposits    float64 `json:"total_deposits"`
	TotalWithdrawals float64 `json:"total_withdrawals"`
	PDFURL           string  `json:"pdf_url"`
}
