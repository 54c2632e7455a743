// Package domain contains the core business entities and rules for the hotel search system.
// These entities are upstream-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// MinAdvanceDays is the minimum number of calendar days between "today"
// and the check-in date. Bookings closer than this are rejected.
const MinAdvanceDays = 3

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// SearchRequest is a validated hotel search. It is constructed by the HTTP
// adapter after field-level validation and carries everything the pipeline
// needs to query upstream and post-process results.
type SearchRequest struct {
	// DestinationID identifies the city/region to search in.
	DestinationID string `json:"destinationId"`

	// HotelID optionally narrows the search to a single hotel.
	HotelID string `json:"hotelId,omitempty"`

	// CheckIn is the check-in date in YYYY-MM-DD format.
	CheckIn string `json:"checkIn"`

	// CheckOut is the check-out date in YYYY-MM-DD format.
	CheckOut string `json:"checkOut"`

	// Language is the language code for upstream content (e.g. "en").
	Language string `json:"language"`

	// Currency is the ISO 4217 currency code for prices (e.g. "USD").
	Currency string `json:"currency"`

	// GuestsPerRoom is the number of guests in each room.
	GuestsPerRoom int `json:"guestsPerRoom"`

	// Rooms is the number of rooms requested.
	Rooms int `json:"rooms"`

	// Filter holds optional numeric range filters, nil when absent.
	Filter *FilterSpec `json:"filter,omitempty"`

	// Sort holds the optional sort spec, nil when absent.
	Sort *SortSpec `json:"sort,omitempty"`
}

// GuestsString derives the upstream guests query parameter: for N rooms of
// G guests each, the literal string "G|G|...|G" with exactly N segments.
func (s *SearchRequest) GuestsString() string {
	segments := make([]string, s.Rooms)
	for i := range segments {
		segments[i] = fmt.Sprintf("%d", s.GuestsPerRoom)
	}
	return strings.Join(segments, "|")
}

// Validate checks the business rules that depend on the current time.
// Field presence and types are checked earlier by the HTTP adapter;
// this method owns the date rules.
//
// Rules:
//   - check-in and check-out must parse as YYYY-MM-DD dates
//   - check-in must be at least MinAdvanceDays calendar days from now
//     (date-only comparison, time-of-day ignored)
//   - check-out must be strictly after check-in
//   - guest and room counts must be positive
func (s *SearchRequest) Validate(now time.Time) error {
	checkIn, err := time.Parse(DateLayout, s.CheckIn)
	if err != nil {
		return fmt.Errorf("%w: checkIn is not a valid date: %q", ErrInvalidRequest, s.CheckIn)
	}

	checkOut, err := time.Parse(DateLayout, s.CheckOut)
	if err != nil {
		return fmt.Errorf("%w: checkOut is not a valid date: %q", ErrInvalidRequest, s.CheckOut)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(0, 0, MinAdvanceDays)
	if checkIn.Before(earliest) {
		return fmt.Errorf("%w: checkIn must be at least %d days from today", ErrInvalidRequest, MinAdvanceDays)
	}

	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRequest)
	}

	if s.GuestsPerRoom < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrInvalidRequest)
	}
	if s.Rooms < 1 {
		return fmt.Errorf("%w: rooms must be at least 1", ErrInvalidRequest)
	}

	return nil
}

// CacheKey builds the cache key from the fields actually forwarded upstream.
// Filter and sort are deliberately excluded: they are applied after
// retrieval and do not change what was fetched.
func (s *SearchRequest) CacheKey(partnerID string) string {
	return strings.Join([]string{
		s.DestinationID,
		s.HotelID,
		s.CheckIn,
		s.CheckOut,
		s.Language,
		s.Currency,
		s.GuestsString(),
		partnerID,
	}, ":")
}
