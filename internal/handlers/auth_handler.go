package handlers

import (
	"net/http"

	"sahl-bank-api/internal/dto"
	"sahl-bank-api/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves account and banking number lookups
type AuthHandler struct {
	sessionService services.SessionServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionService services.SessionServiceInterface) *AuthHandler {
	return &AuthHandler{sessionService: sessionService}
}

// GetAuth answers POST /auth/get. Unknown access tokens resolve to empty
// collections with a 200, never an error.
func (h *AuthHandler) GetAuth(c echo.Context) error {
	var req dto.AuthGetRequest
	if err := c.Bind(&req); err != nil {
		return SendSystemError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	accounts, numbers := h.sessionService.GetAuth(req.AccessToken)

	return c.JSON(http.StatusOK, dto.AuthGetResponse{
		Accounts:  accounts,
		Numbers:   dto.AccountNumbers{ACH: numbers},
		RequestID: services.NewRequestID(),
	})
}
