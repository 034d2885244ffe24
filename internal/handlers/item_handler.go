package handlers

import (
	"net/http"

	"sahl-bank-api/internal/dto"
	"sahl-bank-api/internal/services"

	"github.com/labstack/echo/v4"
)

// ItemHandler serves the public token exchange
type ItemHandler struct {
	tokenService services.TokenServiceInterface
}

// NewItemHandler creates a new item handler
func NewItemHandler(tokenService services.TokenServiceInterface) *ItemHandler {
	return &ItemHandler{tokenService: tokenService}
}

// ExchangePublicToken answers POST /item/public_token/exchange. Every call
// mints a fresh token; the exchange is non-idempotent by design.
func (h *ItemHandler) ExchangePublicToken(c echo.Context) error {
	var req dto.PublicTokenExchangeRequest
	if err := c.Bind(&req); err != nil {
		return SendSystemError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	grant := h.tokenService.ExchangePublicToken(req.PublicToken)

	return c.JSON(http.StatusOK, dto.PublicTokenExchangeResponse{
		AccessToken: grant.AccessToken,
		ItemID:      grant.ItemID,
		RequestID:   grant.RequestID,
	})
}
