// Package usecase provides the business logic for the hotel search
// pipeline: merging the price feed with static metadata, filtering,
// sorting, and the orchestration around cache and upstream gateway.
package usecase

import (
	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
)

// Merge joins the price list against the static metadata list by hotel
// identifier and produces one uniform result record per priced hotel.
//
// Behavior:
//   - An empty price list returns an empty slice immediately.
//   - Entries with a null price are discarded entirely; they represent
//     unavailable inventory.
//   - Output preserves the relative order of surviving price entries.
//   - Missing static info yields a minimal row: identifier and price
//     populated, rating and score at their defaults, everything else null.
//   - Rating defaults to domain.DefaultRating and the trust score to
//     domain.DefaultScore when the source values are null or absent.
//
// Inputs are assumed to have passed gateway shape validation; missing or
// null leaf fields never cause an error here.
func Merge(priceList []domain.PriceListEntry, staticInfo []domain.StaticInfoEntry) []domain.MergedHotelResult {
	if len(priceList) == 0 {
		return []domain.MergedHotelResult{}
	}

	// One pass over the static list; last entry wins on duplicate ids.
	staticByID := make(map[string]domain.StaticInfoEntry, len(staticInfo))
	for _, entry := range staticInfo {
		staticByID[entry.HotelID.String()] = entry
	}

	results := make([]domain.MergedHotelResult, 0, len(priceList))
	for _, priced := range priceList {
		if priced.Price == nil {
			continue
		}

		result := domain.MergedHotelResult{
			ID:     priced.HotelID.String(),
			Price:  *priced.Price,
			Rating: domain.DefaultRating,
			Score:  domain.DefaultScore,
		}

		if static, ok := staticByID[result.ID]; ok {
			result.Name = safeString(static.Name)
			result.Latitude = static.Latitude
			result.Longitude = static.Longitude
			result.Description = safeString(static.Description)
			result.Address = safeString(static.Address)
			result.Distance = static.Distance
			result.CheckInTime = safeString(static.CheckInTime)
			result.ImageURL = static.FirstImageURL()

			if static.Rating != nil {
				result.Rating = *static.Rating
			}
			if score := static.OverallScore(); score != nil {
				result.Score = *score
			}
		}

		results = append(results, result)
	}

	return results
}

// safeString normalizes an empty string to nil, the string half of the
// safe-assign rule. Zero numeric values pass through via the pointer
// fields directly.
func safeString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
