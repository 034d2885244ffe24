package handlers

import (
	"net/http"

	"sahl-bank-api/internal/config"
	"sahl-bank-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// InfoHandler serves the provider metadata endpoint
type InfoHandler struct {
	provider config.ProviderConfig
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(provider config.ProviderConfig) *InfoHandler {
	return &InfoHandler{provider: provider}
}

// GetInfo answers GET /info with the provider identity and endpoint list.
func (h *InfoHandler) GetInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.InfoResponse{
		Name:        h.provider.Name,
		Version:     h.provider.Version,
		Description: h.provider.Description,
		Endpoints: []string{
			"/link/token/create",
			"/item/public_token/exchange",
			"/auth/get",
			"/transactions/get",
			"/statements/get",
			"/info",
		},
		Documentation: h.provider.DocumentationURL,
	})
}
