package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	ValidationMissingField ErrorCode = "VALIDATION_001"
	RouteNotFound          ErrorCode = "ROUTE_001"
	SystemInternalError    ErrorCode = "SYSTEM_001"
	SystemRateLimited      ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to the exact wire messages of the API.
// These strings are part of the public contract and must not change.
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid client credentials",
	ValidationMissingField: "Missing required fields",
	RouteNotFound:          "Endpoint not found",
	SystemInternalError:    "Internal server error",
	SystemRateLimited:      "Too many requests",
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetHTTPStatus returns the HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationMissingField:
		return http.StatusBadRequest
	case AuthInvalidCredentials:
		return http.StatusUnauthorized
	case RouteNotFound:
		return http.StatusNotFound
	case SystemRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// IsValidErrorCode checks if the provided error code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
