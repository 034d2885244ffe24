package middleware

import (
	"net/http"

	"sahl-bank-api/internal/catalog"
	"sahl-bank-api/internal/errors"
	"sahl-bank-api/internal/handlers"

	"github.com/labstack/echo/v4"
)

const (
	// ClientIDHeader carries the tenant client ID on every call.
	ClientIDHeader = "X-Client-ID"
	// ClientSecretHeader carries the tenant client secret on every call.
	ClientSecretHeader = "X-Client-Secret"
	// ClientIDContextKey is the context key holding the authenticated tenant.
	ClientIDContextKey = "client_id"
)

// ClientAuth requires valid tenant credentials on every non-preflight call.
// Registered globally it also runs ahead of the router's 404 fallback, so an
// unroutable path still answers 401 first. Paths in skipPaths (e.g. /metrics)
// are exempt.
func ClientAuth(store *catalog.CredentialStore, skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodOptions {
				return next(c)
			}
			if _, ok := skip[c.Request().URL.Path]; ok {
				return next(c)
			}

			clientID := c.Request().Header.Get(ClientIDHeader)
			clientSecret := c.Request().Header.Get(ClientSecretHeader)
			if clientID == "" || clientSecret == "" || !store.Validate(clientID, clientSecret) {
				return handlers.SendError(c, errors.AuthInvalidCredentials)
			}

			c.Set(ClientIDContextKey, clientID)
			return next(c)
		}
	}
}
