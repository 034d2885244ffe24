package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"sahl-bank-api/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery recovers from handler panics and answers with the generic
// internal error body. The panic and stack trace go to the server log only;
// nothing internal leaks to the caller.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					slog.Error("panic recovered",
						"trace_id", traceID,
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", string(debug.Stack()),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)

					response := errors.NewResponse(errors.SystemInternalError)
					if err := c.JSON(http.StatusInternalServerError, response); err != nil {
						slog.Error("failed to send panic recovery response",
							"trace_id", traceID,
							"error", err.Error(),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
