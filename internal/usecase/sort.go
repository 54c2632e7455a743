package usecase

import (
	"sort"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
)

// SortResults orders the merged results by the spec's field. The sort is
// stable so equal keys keep their merged-output order, which makes result
// ordering deterministic. Reverse selects descending order.
//
// A nil spec or an unsupported field name is a no-op: the input is
// returned in its original order. The input slice is never mutated.
func SortResults(results []domain.MergedHotelResult, spec *domain.SortSpec) []domain.MergedHotelResult {
	if spec == nil || !spec.Field.IsValid() {
		return results
	}

	sorted := make([]domain.MergedHotelResult, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, _ := sorted[i].MetricValue(spec.Field)
		vj, _ := sorted[j].MetricValue(spec.Field)
		if spec.Reverse {
			return vi > vj
		}
		return vi < vj
	})

	return sorted
}
