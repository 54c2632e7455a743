// Package http provides the HTTP handler layer for the hotel search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/adapter/http/response"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/usecase"
)

// HotelHandler handles HTTP requests for hotel-related endpoints.
type HotelHandler struct {
	useCase usecase.HotelSearchUseCase
}

// NewHotelHandler creates a new HotelHandler with the given use case.
func NewHotelHandler(uc usecase.HotelSearchUseCase) *HotelHandler {
	return &HotelHandler{
		useCase: uc,
	}
}

// SearchHotels handles POST /hotelresults
//
// @Summary Search for hotels
// @Description Search for available hotels for a destination and stay window
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body SearchHotelsRequest true "Search criteria"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorBody "Validation error"
// @Failure 500 {object} response.ErrorBody "Upstream or internal failure"
// @Failure 504 {object} response.ErrorBody "Gateway timeout"
// @Router /hotelresults [post]
func (h *HotelHandler) SearchHotels(c echo.Context) error {
	var req SearchHotelsRequest

	// Bind request body
	if err := c.Bind(&req); err != nil {
		return h.handleBindError(c, err)
	}

	// Validate request
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	// Convert to domain types and call the use case
	result, err := h.useCase.Search(c.Request().Context(), ToDomain(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// handleBindError maps body decode failures to a 400 response. A wrong-typed
// field surfaces as a per-field validation error so the caller knows which
// field to fix; anything else (malformed JSON, wrong content type) gets the
// generic invalid-request body.
func (h *HotelHandler) handleBindError(c echo.Context, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return response.ValidationError(c, map[string]string{
			typeErr.Field: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
		})
	}
	return response.InvalidRequestBody(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *HotelHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *HotelHandler) handleError(c echo.Context, err error) error {
	// Domain-level validation (date window rules) also maps to 400
	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Upstream pipeline failures keep a stable top-level label and nest
	// the original error for diagnostics.
	if domain.IsMaxAttempts(err) {
		return response.UpstreamFailure(c, response.CodeMaxAttempts, err)
	}
	if domain.IsUpstreamShape(err) {
		return response.UpstreamFailure(c, response.CodeUpstreamShape, err)
	}
	if domain.IsExternalAPI(err) {
		return response.UpstreamFailure(c, response.CodeExternalAPIError, err)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *HotelHandler) Health(c echo.Context) error {
	return response.Health(c)
}
