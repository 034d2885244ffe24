package handlers

import (
	"net/http"

	"sahl-bank-api/internal/dto"
	"sahl-bank-api/internal/services"

	"github.com/labstack/echo/v4"
)

// StatementHandler serves synthetic statement queries
type StatementHandler struct {
	sessionService services.SessionServiceInterface
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(sessionService services.SessionServiceInterface) *StatementHandler {
	return &StatementHandler{sessionService: sessionService}
}

// GetStatements answers POST /statements/get. Unknown access tokens resolve
// to empty collections with a 200.
func (h *StatementHandler) GetStatements(c echo.Context) error {
	var req dto.StatementsGetRequest
	if err := c.Bind(&req); err != nil {
		return SendSystemError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	accounts, statements := h.sessionService.GetStatements(req.AccessToken)

	return c.JSON(http.StatusOK, dto.StatementsGetResponse{
		Accounts:        accounts,
		Statements:      statements,
		TotalStatements: len(statements),
		RequestID:       services.NewRequestID(),
	})
}
