package services

import "sahl-bank-api/internal/models"

// TransactionGeneratorInterface produces synthetic transactions for an account
type TransactionGeneratorInterface interface {
	Generate(accountID string, count int) []models.Transaction
}

// StatementGeneratorInterface produces synthetic monthly statements for an account
type StatementGeneratorInterface interface {
	Generate(accountID string, count int) []models.Statement
}

// SessionServiceInterface answers the business queries behind the data routes
type SessionServiceInterface interface {
	GetTransactions(accessToken, startDate, endDate string) ([]models.Account, []models.Transaction)
	GetStatements(accessToken string) ([]models.Account, []models.Statement)
	GetAuth(accessToken string) ([]models.Account, []models.AccountNumber)
}

// TokenServiceInterface issues link tokens and exchanges public tokens
type TokenServiceInterface interface {
	CreateLinkToken(clientID, userID string) models.LinkToken
	ExchangePublicToken(publicToken string) models.AccessTokenGrant
}
