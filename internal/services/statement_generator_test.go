package services

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type StatementGeneratorTestSuite struct {
	suite.Suite
	generator *statementGenerator
	today     time.Time
}

func TestStatementGeneratorSuite(t *testing.T) {
	suite.Run(t, new(StatementGeneratorTestSuite))
}

func (s *StatementGeneratorTestSuite) SetupTest() {
	s.today = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(7))
	s.generator = NewStatementGeneratorWithRand(
		"https://api.sahlfinancial.com",
		rng,
		func() time.Time { return s.today },
	).(*statementGenerator)
}

func (s *StatementGeneratorTestSuite) TestGenerate_ReturnsRequestedCount() {
	s.Len(s.generator.Generate("acc_1", 6), 6)
}

func (s *StatementGeneratorTestSuite) TestGenerate_MonthlyWindowsMostRecentFirst() {
	statements := s.generator.Generate("acc_1", 6)

	// With a June 15 clock the first statement covers May.
	s.Equal("2025-05-01", statements[0].StartDate)
	s.Equal("2025-05-31", statements[0].EndDate)
	s.Equal("2024-12-01", statements[5].StartDate)
	s.Equal("2024-12-31", statements[5].EndDate)

	for _, st := range statements {
		start, err := time.Parse(time.DateOnly, st.StartDate)
		s.NoError(err)
		end, err := time.Parse(time.DateOnly, st.EndDate)
		s.NoError(err)

		s.Equal(1, start.Day(), "window starts on the first of the month")
		s.Equal(start.Month(), end.Month(), "window stays inside one month")
		s.Equal(end.AddDate(0, 0, 1).Day(), 1, "window ends the day before a month boundary")
	}
}

func (s *StatementGeneratorTestSuite) TestGenerate_WindowsContiguousNonOverlapping() {
	statements := s.generator.Generate("acc_1", 6)

	for i := 1; i < len(statements); i++ {
		previousStart, err := time.Parse(time.DateOnly, statements[i-1].StartDate)
		s.NoError(err)
		end, err := time.Parse(time.DateOnly, statements[i].EndDate)
		s.NoError(err)

		s.Equal(previousStart.AddDate(0, 0, -1), end,
			"window %d must end the day before window %d starts", i, i-1)
	}
}

func (s *StatementGeneratorTestSuite) TestGenerate_BalanceBounds() {
	for _, st := range s.generator.Generate("acc_1", 100) {
		s.GreaterOrEqual(st.EndingBalance, minEndingBalance)
		s.LessOrEqual(st.EndingBalance, maxEndingBalance)
		s.InDelta(st.EndingBalance, st.StartingBalance, maxBalanceDelta+0.01)

		s.GreaterOrEqual(st.TotalDeposits, minStatementTotal)
		s.LessOrEqual(st.TotalDeposits, maxStatementTotal)
		s.GreaterOrEqual(st.TotalWithdrawals, minStatementTotal)
		s.LessOrEqual(st.TotalWithdrawals, maxStatementTotal)
	}
}

func (s *StatementGeneratorTestSuite) TestGenerate_PDFURLShape() {
	statements := s.generator.Generate("acc_9", 3)

	s.Equal("https://api.sahlfinancial.com/statements/acc_9/2025-05.pdf", statements[0].PDFURL)
	s.Equal("https://api.sahlfinancial.com/statements/acc_9/2025-04.pdf", statements[1].PDFURL)
	s.Equal("https://api.sahlfinancial.com/statements/acc_9/2025-03.pdf", statements[2].PDFURL)
}

func (s *StatementGeneratorTestSuite) TestGenerate_StatementIDsEmbedAccount() {
	statements := s.generator.Generate("acc_1", 6)
	for i, st := range statements {
		s.Equal(fmt.Sprintf("stmt_acc_1_%d", i), st.StatementID)
		s.Equal("acc_1", st.AccountID)
	}
}
