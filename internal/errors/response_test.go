package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResponse_DefaultMessages(t *testing.T) {
	tests := []struct {
		code       ErrorCode
		message    string
		httpStatus int
	}{
		{AuthInvalidCredentials, "Invalid client credentials", http.StatusUnauthorized},
		{ValidationMissingField, "Missing required fields", http.StatusBadRequest},
		{RouteNotFound, "Endpoint not found", http.StatusNotFound},
		{SystemInternalError, "Internal server error", http.StatusInternalServerError},
		{SystemRateLimited, "Too many requests", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		response := NewResponse(tt.code)
		assert.Equal(t, tt.message, response.Error)
		assert.Equal(t, tt.httpStatus, response.HTTPStatus())
		assert.Equal(t, tt.code, response.Code())
	}
}

func TestNewResponse_WithMessageOverride(t *testing.T) {
	response := NewResponse(ValidationMissingField, WithMessage("Missing access_token"))

	assert.Equal(t, "Missing access_token", response.Error)
	assert.Equal(t, http.StatusBadRequest, response.HTTPStatus())
}

func TestMissingField(t *testing.T) {
	response := MissingField("public_token")

	assert.Equal(t, "Missing public_token", response.Error)
	assert.Equal(t, http.StatusBadRequest, response.HTTPStatus())
}

func TestToJSON_FlatWireShape(t *testing.T) {
	response := NewResponse(AuthInvalidCredentials)

	data, err := response.ToJSON()

	assert.NoError(t, err)
	assert.JSONEq(t, `{"error":"Invalid client credentials"}`, string(data))
}

func TestGetHTTPStatus_UnknownCodeDefaultsTo500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(ErrorCode("BOGUS")))
	assert.False(t, IsValidErrorCode(ErrorCode("BOGUS")))
	assert.True(t, IsValidErrorCode(RouteNotFound))
}
