package handlers

import (
	"net/http"
	"time"

	"sahl-bank-api/internal/dto"
	"sahl-bank-api/internal/services"

	"github.com/labstack/echo/v4"
)

// defaultWindowDays is the trailing window applied when the caller supplies
// no date range.
const defaultWindowDays = 30

// TransactionHandler serves synthetic transaction queries
type TransactionHandler struct {
	sessionService services.SessionServiceInterface
	now            func() time.Time
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(sessionService services.SessionServiceInterface) *TransactionHandler {
	return &TransactionHandler{sessionService: sessionService, now: time.Now}
}

// GetTransactions answers POST /transactions/get. Missing date bounds default
// to the trailing 30-day window ending today. Unknown access tokens resolve
// to empty collections with a 200.
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	var req dto.TransactionsGetRequest
	if err := c.Bind(&req); err != nil {
		return SendSystemError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	today := h.now()
	startDate := req.StartDate
	if startDate == "" {
		startDate = today.AddDate(0, 0, -defaultWindowDays).Format(time.DateOnly)
	}
	endDate := req.EndDate
	if endDate == "" {
		endDate = today.Format(time.DateOnly)
	}

	accounts, transactions := h.sessionService.GetTransactions(req.AccessToken, startDate, endDate)

	return c.JSON(http.StatusOK, dto.TransactionsGetResponse{
		Accounts:          accounts,
		Transactions:      transactions,
		TotalTransactions: len(transactions),
		RequestID:         services.NewRequestID(),
	})
}
