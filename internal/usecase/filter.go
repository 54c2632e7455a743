package usecase

import (
	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
)

// ApplyFilter applies the optional numeric range filters to the merged
// results. Bounds combine conjunctively: a result survives only when every
// non-nil bound holds. A nil filter returns the input unchanged.
//
// The input slice is never mutated.
func ApplyFilter(results []domain.MergedHotelResult, filter *domain.FilterSpec) []domain.MergedHotelResult {
	if filter == nil {
		return results
	}

	filtered := make([]domain.MergedHotelResult, 0, len(results))
	for _, r := range results {
		if filter.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
