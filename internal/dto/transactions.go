package dto

import "sahl-bank-api/internal/models"

// TransactionsGetRequest is the body of POST /transactions/get. The date
// bounds are optional ISO calendar dates; the handler defaults them to the
// trailing 30-day window ending today.
type TransactionsGetRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionsGetResponse is the success body of POST /transactions/get.
type TransactionsGetResponse struct {
	Accounts          []models.Account     `json:"accounts"`
	Transactions      []models.Transaction `json:"transactions"`
	TotalTransactions int                  `json:"total_transactions"`
	RequestID         string               `json:"request_id"`
}
