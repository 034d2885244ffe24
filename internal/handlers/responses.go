package handlers

import (
	"log/slog"
	"net/http"

	"sahl-bank-api/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	// TraceIDContextKey is the context key for the server-side trace ID
	TraceIDContextKey = "trace_id"
	// ClientIDContextKey is the context key holding the authenticated tenant
	ClientIDContextKey = "client_id"
)

// SendError sends a standardized error response for the given error code
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.Option) error {
	response := errors.NewResponse(code, opts...)
	return c.JSON(response.HTTPStatus(), response)
}

// SendSystemError answers with the generic internal error body and logs the
// underlying failure server-side. Internals never reach the caller.
func SendSystemError(c echo.Context, err error) error {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	slog.Error("internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)
	return c.JSON(http.StatusInternalServerError, errors.NewResponse(errors.SystemInternalError))
}

// getClientIDFromContext extracts the authenticated tenant's client ID.
func getClientIDFromContext(c echo.Context) string {
	clientID, _ := c.Get(ClientIDContextKey).(string)
	return clientID
}
