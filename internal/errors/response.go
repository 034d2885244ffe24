package errors

import (
	"encoding/json"
	"fmt"
)

// Response is the standardized API error body. The wire shape is a single
// flat field: {"error": "<message>"}.
type Response struct {
	code  ErrorCode
	Error string `json:"error"`
}

// Option is a functional option for configuring error responses
type Option func(*Response)

// WithMessage overrides the default message for the error code
func WithMessage(message string) Option {
	return func(r *Response) {
		r.Error = message
	}
}

// NewResponse creates a standardized error response for the given error code
func NewResponse(code ErrorCode, opts ...Option) *Response {
	response := &Response{
		code:  code,
		Error: GetErrorMessage(code),
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// MissingField creates a 400 response for an absent required body field.
func MissingField(field string) *Response {
	return NewResponse(ValidationMissingField, WithMessage("Missing "+field))
}

// HTTPStatus returns the HTTP status code for the response
func (r *Response) HTTPStatus() int {
	return GetHTTPStatus(r.code)
}

// Code returns the internal error code of the response
func (r *Response) Code() ErrorCode {
	return r.code
}

// IsClientError returns true if the error is a 4xx client error
func (r *Response) IsClientError() bool {
	status := r.HTTPStatus()
	return status >= 400 && status < 500
}

// ToJSON serializes the error response to JSON bytes
func (r *Response) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// String returns a string representation of the error response
func (r *Response) String() string {
	return fmt.Sprintf("[%s] %s", r.code, r.Error)
}
