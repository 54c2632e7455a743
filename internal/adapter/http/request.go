// Package http provides the HTTP handler layer for the hotel search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
)

// SearchHotelsRequest represents the request body for hotel search.
//
// Upstream callers are not consistent about numeric types, so guests and
// rooms accept both JSON numbers and numeric strings.
type SearchHotelsRequest struct {
	// DestinationID identifies the destination to search (e.g., "WD0M")
	DestinationID string `json:"destination_id"`

	// HotelID optionally narrows the search to a single hotel
	HotelID string `json:"hotel_id,omitempty"`

	// CheckIn is the check-in date in YYYY-MM-DD format
	CheckIn string `json:"check_in"`

	// CheckOut is the check-out date in YYYY-MM-DD format
	CheckOut string `json:"check_out"`

	// Lang is the language code for hotel content (e.g., "en_US")
	Lang string `json:"lang"`

	// Currency is the currency code for prices (e.g., "SGD")
	Currency string `json:"currency"`

	// Guests is the number of guests per room; number or numeric string
	Guests json.RawMessage `json:"guests"`

	// Rooms is the number of rooms; number or numeric string
	Rooms json.RawMessage `json:"rooms"`

	// SortExist indicates whether sorting should be applied (required)
	SortExist *bool `json:"sort_exist"`

	// Sort contains the sort criteria; required when sort_exist is true
	Sort *SortDTO `json:"sort,omitempty"`

	// FilterExist indicates whether filtering should be applied (required)
	FilterExist *bool `json:"filter_exist"`

	// Filters contains the filter bounds; required when filter_exist is true
	Filters *FilterDTO `json:"filters,omitempty"`

	// Parsed numeric values, populated by Validate.
	guests int
	rooms  int
}

// SortDTO represents the sort criteria for hotel search.
type SortDTO struct {
	// Field is the sort key: price, rating, or score
	Field string `json:"field"`

	// Reverse sorts descending when true; bool or 0/1
	Reverse *FlexBool `json:"reverse,omitempty"`
}

// FilterDTO represents optional inclusive filter bounds for hotel search.
// All bounds are optional; a result must satisfy every bound that is set.
type FilterDTO struct {
	// MinPrice excludes hotels priced below this amount
	MinPrice *float64 `json:"min_price,omitempty" example:"100"`

	// MaxPrice excludes hotels priced above this amount
	MaxPrice *float64 `json:"max_price,omitempty" example:"200"`

	// MinRating excludes hotels rated below this value
	MinRating *float64 `json:"min_rating,omitempty" example:"3.5"`

	// MaxRating excludes hotels rated above this value
	MaxRating *float64 `json:"max_rating,omitempty" example:"5"`

	// MinScore excludes hotels scored below this value
	MinScore *float64 `json:"min_score,omitempty" example:"70"`

	// MaxScore excludes hotels scored above this value
	MaxScore *float64 `json:"max_score,omitempty" example:"100"`
}

// FlexBool is a bool that also accepts 0/1 in JSON.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler for FlexBool.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true", "1":
		*b = true
		return nil
	case "false", "0":
		*b = false
		return nil
	}
	return fmt.Errorf("invalid boolean value: %s", data)
}

// Bool returns the underlying bool value.
func (b FlexBool) Bool() bool {
	return bool(b)
}

// Validation regex patterns.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Valid sort fields.
var validSortFields = map[string]bool{
	"price":  true,
	"rating": true,
	"score":  true,
}

// FieldError represents a field-level validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Structural checks only; date window rules are enforced in the domain layer
// against the server clock.
func (r *SearchHotelsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateDestination(errs)
	r.validateDates(errs)
	r.validateLangCurrency(errs)
	r.validateGuests(errs)
	r.validateRooms(errs)
	r.validateSort(errs)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchHotelsRequest) validateDestination(errs *ValidationErrors) {
	if r.DestinationID == "" {
		errs.Add("destination_id", "destination_id is required")
	}
}

func (r *SearchHotelsRequest) validateDates(errs *ValidationErrors) {
	r.validateDate(errs, "check_in", r.CheckIn)
	r.validateDate(errs, "check_out", r.CheckOut)
}

func (r *SearchHotelsRequest) validateDate(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, field+" is required")
		return
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

func (r *SearchHotelsRequest) validateLangCurrency(errs *ValidationErrors) {
	if r.Lang == "" {
		errs.Add("lang", "lang is required")
	}
	if r.Currency == "" {
		errs.Add("currency", "currency is required")
	}
}

func (r *SearchHotelsRequest) validateGuests(errs *ValidationErrors) {
	n, err := parseFlexCount(r.Guests)
	if err != nil {
		errs.Add("guests", "guests must be a number or numeric string")
		return
	}
	if n < 1 {
		errs.Add("guests", "guests must be at least 1")
		return
	}
	r.guests = n
}

func (r *SearchHotelsRequest) validateRooms(errs *ValidationErrors) {
	n, err := parseFlexCount(r.Rooms)
	if err != nil {
		errs.Add("rooms", "rooms must be a number or numeric string")
		return
	}
	if n < 1 {
		errs.Add("rooms", "rooms must be at least 1")
		return
	}
	r.rooms = n
}

func (r *SearchHotelsRequest) validateSort(errs *ValidationErrors) {
	if r.SortExist == nil {
		errs.Add("sort_exist", "sort_exist is required")
		return
	}
	if !*r.SortExist {
		return
	}
	if r.Sort == nil {
		errs.Add("sort", "sort is required when sort_exist is true")
		return
	}
	if !validSortFields[r.Sort.Field] {
		errs.Add("sort.field", "sort field must be one of: price, rating, score")
	}
	if r.Sort.Reverse == nil {
		errs.Add("sort.reverse", "sort.reverse is required when sort_exist is true")
	}
}

func (r *SearchHotelsRequest) validateFilters(errs *ValidationErrors) {
	if r.FilterExist == nil {
		errs.Add("filter_exist", "filter_exist is required")
		return
	}
	if !*r.FilterExist {
		return
	}
	if r.Filters == nil {
		errs.Add("filters", "filters is required when filter_exist is true")
		return
	}

	f := r.Filters
	checkBound(errs, "filters.min_price", f.MinPrice)
	checkBound(errs, "filters.max_price", f.MaxPrice)
	checkBound(errs, "filters.min_rating", f.MinRating)
	checkBound(errs, "filters.max_rating", f.MaxRating)
	checkBound(errs, "filters.min_score", f.MinScore)
	checkBound(errs, "filters.max_score", f.MaxScore)

	checkRange(errs, "filters.min_price", f.MinPrice, f.MaxPrice)
	checkRange(errs, "filters.min_rating", f.MinRating, f.MaxRating)
	checkRange(errs, "filters.min_score", f.MinScore, f.MaxScore)
}

func checkBound(errs *ValidationErrors, field string, v *float64) {
	if v != nil && *v < 0 {
		errs.Add(field, field+" must be a non-negative number")
	}
}

func checkRange(errs *ValidationErrors, field string, lo, hi *float64) {
	if lo != nil && hi != nil && *lo > *hi {
		errs.Add(field, field+" must be less than or equal to its upper bound")
	}
}

// parseFlexCount parses a JSON value that may be a number or a numeric string.
func parseFlexCount(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("value is missing")
	}
	var n domain.FlexInt
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return n.Int(), nil
}
