// Package http provides the HTTP handler layer for the hotel search API.
package http

import (
	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
)

// ToDomain converts a validated SearchHotelsRequest to a domain SearchRequest.
// It must be called after Validate, which populates the parsed numeric fields.
func ToDomain(r *SearchHotelsRequest) *domain.SearchRequest {
	req := &domain.SearchRequest{
		DestinationID: r.DestinationID,
		HotelID:       r.HotelID,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Language:      r.Lang,
		Currency:      r.Currency,
		GuestsPerRoom: r.guests,
		Rooms:         r.rooms,
	}

	if r.SortExist != nil && *r.SortExist && r.Sort != nil {
		req.Sort = toSortSpec(r.Sort)
	}
	if r.FilterExist != nil && *r.FilterExist && r.Filters != nil {
		req.Filter = toFilterSpec(r.Filters)
	}

	return req
}

func toSortSpec(s *SortDTO) *domain.SortSpec {
	spec := &domain.SortSpec{
		Field: domain.SortField(s.Field),
	}
	if s.Reverse != nil {
		spec.Reverse = s.Reverse.Bool()
	}
	return spec
}

func toFilterSpec(f *FilterDTO) *domain.FilterSpec {
	return &domain.FilterSpec{
		MinPrice:  f.MinPrice,
		MaxPrice:  f.MaxPrice,
		MinRating: f.MinRating,
		MaxRating: f.MaxRating,
		MinScore:  f.MinScore,
		MaxScore:  f.MaxScore,
	}
}
