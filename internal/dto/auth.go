package dto

import "sahl-bank-api/internal/models"

// AuthGetRequest is the body of POST /auth/get.
type AuthGetRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// AccountNumbers wraps the banking numbers under their transfer network.
type AccountNumbers struct {
	ACH []models.AccountNumber `json:"ach"`
}

// AuthGetResponse is the success body of POST /auth/get.
type AuthGetResponse struct {
	Accounts  []models.Account `json:"accounts"`
	Numbers   AccountNumbers   `json:"numbers"`
	RequestID string           `json:"request_id"`
}
