// Package response provides standardized HTTP response builders for the
// hotel search API. It centralizes response formatting to ensure
// consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error envelope returned on every non-2xx response.
type ErrorBody struct {
	// Error is a stable machine-readable error label.
	Error string `json:"error"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details carries field-specific validation errors (a map) or the
	// original upstream error string for diagnostics.
	Details interface{} `json:"details,omitempty"`
}

// Error labels used in API responses.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeValidationError  = "validation_error"
	CodeExternalAPIError = "external_api_error"
	CodeUpstreamShape    = "invalid_upstream_shape"
	CodeMaxAttempts      = "max_attempts_exceeded"
	CodeTimeout          = "timeout"
	CodeInternalError    = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgUpstreamFailed     = "Hotel data could not be retrieved"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
