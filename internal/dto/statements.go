package dto

import "sahl-bank-api/internal/models"

// StatementsGetRequest is the body of POST /statements/get.
type StatementsGetRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// StatementsGetResponse is the success body of POST /statements/get.
type StatementsGetResponse struct {
	Accounts        []models.Account   `json:"accounts"`
	Statements      []models.Statement `json:"statements"`
	TotalStatements int                `json:"total_statements"`
	RequestID       string             `json:"request_id"`
}
