package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"sahl-bank-api/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler formats errors escaping the handlers as the API's
// flat error bodies. The route dispatcher knows only exact method+path pairs,
// so both unknown paths and method mismatches answer 404 "Endpoint not
// found"; everything unexpected collapses to the generic 500.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var response *errors.Response
	if echoErr, ok := err.(*echo.HTTPError); ok {
		switch echoErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			response = errors.NewResponse(errors.RouteNotFound)
		case http.StatusUnauthorized:
			response = errors.NewResponse(errors.AuthInvalidCredentials)
		case http.StatusBadRequest:
			response = errors.NewResponse(errors.ValidationMissingField)
		default:
			response = errors.NewResponse(errors.SystemInternalError)
		}
	} else {
		response = errors.NewResponse(errors.SystemInternalError)
	}

	httpStatus := response.HTTPStatus()

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", string(response.Code()),
		"status", httpStatus,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		string(response.Code()),
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, response); sendErr != nil {
		slog.Error("failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}
