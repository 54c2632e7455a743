// Package response provides standardized HTTP response builders for the hotel search API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return JSON(c, http.StatusBadRequest, &ErrorBody{
		Error:   CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// ValidationError writes a 400 Bad Request response with per-field details.
func ValidationError(c echo.Context, details map[string]string) error {
	return JSON(c, http.StatusBadRequest, &ErrorBody{
		Error:   CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return JSON(c, http.StatusBadRequest, &ErrorBody{
		Error:   CodeValidationError,
		Message: message,
	})
}

// UpstreamFailure writes a 500 response for pipeline failures, keeping the
// top-level label stable and nesting the original message for diagnostics.
func UpstreamFailure(c echo.Context, label string, err error) error {
	return JSON(c, http.StatusInternalServerError, &ErrorBody{
		Error:   label,
		Message: MsgUpstreamFailed,
		Details: err.Error(),
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return JSON(c, http.StatusGatewayTimeout, &ErrorBody{
		Error:   CodeTimeout,
		Message: MsgTimeout,
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return JSON(c, http.StatusGatewayTimeout, &ErrorBody{
		Error:   CodeTimeout,
		Message: MsgRequestCancelled,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return JSON(c, http.StatusInternalServerError, &ErrorBody{
		Error:   CodeInternalError,
		Message: MsgInternalError,
	})
}
