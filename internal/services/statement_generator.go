package services

import (
	"fmt"
	"math/rand"
	"time"

	"sahl-bank-api/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// DefaultStatementCount is the number of monthly statements generated
	// per account on each query.
	DefaultStatementCount = 6

	minEndingBalance  = 10.00
	maxEndingBalance  = 100.00
	maxBalanceDelta   = 10.00
	minStatementTotal = 5.00
	maxStatementTotal = 30.00
)

type statementGenerator struct {
	pdfBaseURL string
	rng        *rand.Rand
	now        func() time.Time
}

// NewStatementGenerator creates a statement generator backed by an unseeded
// time-based random source.
func NewStatementGenerator(pdfBaseURL string) StatementGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return NewStatementGeneratorWithRand(pdfBaseURL, rand.New(source), time.Now)
}

// NewStatementGeneratorWithRand creates a generator with an injected random
// source and clock for deterministic tests.
func NewStatementGeneratorWithRand(pdfBaseURL string, rng *rand.Rand, now func() time.Time) StatementGeneratorInterface {
	return &statementGenerator{
		pdfBaseURL: pdfBaseURL,
		rng:        rng,
		now:        now,
	}
}

// Generate produces one statement per calendar month for the last count
// months, most recent first. The anchor starts at day 1 of the current month;
// each iteration closes the window the day before the anchor, then moves the
// anchor back one month to become the window's start. Windows are therefore
// contiguous and non-overlapping.
func (g *statementGenerator) Generate(accountID string, count int) []models.Statement {
	today := g.now()
	anchor := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	statements := make([]models.Statement, 0, count)
	for i := 0; i < count; i++ {
		endDate := anchor.AddDate(0, 0, -1)
		anchor = anchor.AddDate(0, -1, 0)

		endingBalance := g.roundedAmount(minEndingBalance, maxEndingBalance)
		delta := g.rng.Float64()*(2*maxBalanceDelta) - maxBalanceDelta
		// Not clamped: the starting balance may go negative or exceed the
		// ending balance, and the totals below never reconcile the two.
		startingBalance := decimal.NewFromFloat(endingBalance - delta).Round(2).InexactFloat64()

		statements = append(statements, models.Statement{
			StatementID:      fmt.Sprintf("stmt_%s_%d", accountID, i),
			AccountID:        accountID,
			StartDate:        anchor.Format(time.DateOnly),
			EndDate:          endDate.Format(time.DateOnly),
			StartingBalance:  startingBalance,
			EndingBalance:    endingBalance,
			TotalDeposits:    g.roundedAmount(minStatementTotal, maxStatementTotal),
			TotalWithdrawals: g.roundedAmount(minStatementTotal, maxStatementTotal),
			PDFURL:           g.pdfURL(accountID, endDate),
		})
	}

	return statements
}

func (g *statementGenerator) roundedAmount(minValue, maxValue float64) float64 {
	value := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// pdfURL is deterministic in the account ID and the statement's end year-month.
func (g *statementGenerator) pdfURL(accountID string, endDate time.Time) string {
	return fmt.Sprintf("%s/statements/%s/%s.pdf", g.pdfBaseURL, accountID, endDate.Format("2006-01"))
}
