package services

import (
	"sort"

	"sahl-bank-api/internal/catalog"
	"sahl-bank-api/internal/models"
)

type sessionService struct {
	catalog *catalog.Catalog
	txGen   TransactionGeneratorInterface
	stmtGen StatementGeneratorInterface
}

// NewSessionService wires the catalog and generators behind the data routes.
func NewSessionService(
	cat *catalog.Catalog,
	txGen TransactionGeneratorInterface,
	stmtGen StatementGeneratorInterface,
) SessionServiceInterface {
	return &sessionService{
		catalog: cat,
		txGen:   txGen,
		stmtGen: stmtGen,
	}
}

// GetTransactions resolves the token's accounts, generates 20 transactions
// per account, keeps those inside [startDate, endDate] when both bounds are
// set, and returns the merged set sorted by date descending. Unknown tokens
// yield empty results, not errors.
func (s *sessionService) GetTransactions(accessToken, startDate, endDate string) ([]models.Account, []models.Transaction) {
	accounts := s.catalog.AccountsForToken(accessToken)

	transactions := make([]models.Transaction, 0)
	for _, accountID := range s.catalog.AccountIDsForToken(accessToken) {
		generated := s.txGen.Generate(accountID, DefaultTransactionCount)
		if startDate != "" && endDate != "" {
			generated = filterByDateRange(generated, startDate, endDate)
		}
		transactions = append(transactions, generated...)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	return accounts, transactions
}

// GetStatements resolves the token's accounts and generates 6 statements per
// account, merged and sorted by end date descending.
func (s *sessionService) GetStatements(accessToken string) ([]models.Account, []models.Statement) {
	accounts := s.catalog.AccountsForToken(accessToken)

	statements := make([]models.Statement, 0)
	for _, accountID := range s.catalog.AccountIDsForToken(accessToken) {
		statements = append(statements, s.stmtGen.Generate(accountID, DefaultStatementCount)...)
	}

	sort.SliceStable(statements, func(i, j int) bool {
		return statements[i].EndDate > statements[j].EndDate
	})

	return accounts, statements
}

// GetAuth is pure catalog delegation: accounts plus their banking numbers.
func (s *sessionService) GetAuth(accessToken string) ([]models.Account, []models.AccountNumber) {
	return s.catalog.AccountsForToken(accessToken), s.catalog.AccountNumbersForToken(accessToken)
}

// filterByDateRange keeps transactions whose date lies in the inclusive
// range. ISO dates make the lexicographic comparison chronological.
func filterByDateRange(transactions []models.Transaction, startDate, endDate string) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Date >= startDate && t.Date <= endDate {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
