package handlers

import (
	"net/http"

	"sahl-bank-api/internal/dto"
	"sahl-bank-api/internal/services"

	"github.com/labstack/echo/v4"
)

// LinkHandler serves the link phase of the simulated OAuth-like flow
type LinkHandler struct {
	tokenService services.TokenServiceInterface
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(tokenService services.TokenServiceInterface) *LinkHandler {
	return &LinkHandler{tokenService: tokenService}
}

// CreateLinkToken answers POST /link/token/create. The issued token embeds
// the authenticated tenant and the caller-supplied user ID.
func (h *LinkHandler) CreateLinkToken(c echo.Context) error {
	var req dto.LinkTokenCreateRequest
	if err := c.Bind(&req); err != nil {
		return SendSystemError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	grant := h.tokenService.CreateLinkToken(getClientIDFromContext(c), req.User.ClientUserID)

	return c.JSON(http.StatusOK, dto.LinkTokenCreateResponse{
		LinkToken:  grant.Token,
		Expiration: grant.Expiration,
		RequestID:  grant.RequestID,
	})
}
