package domain

// SortField names the metric a result list can be sorted on.
type SortField string

// Supported sort fields.
const (
	SortByPrice  SortField = "price"
	SortByRating SortField = "rating"
	SortByScore  SortField = "score"
)

// IsValid reports whether the sort field is one of the supported metrics.
// Unsupported fields are a documented no-op, not an error.
func (s SortField) IsValid() bool {
	switch s {
	case SortByPrice, SortByRating, SortByScore:
		return true
	default:
		return false
	}
}

// SortSpec describes an optional single-key sort over the merged results.
type SortSpec struct {
	// Field is the metric to sort on.
	Field SortField `json:"field"`

	// Reverse selects descending order when true.
	Reverse bool `json:"reverse"`
}

// FilterSpec holds six independent nullable numeric bounds. A nil bound
// means "no constraint on this side"; non-nil bounds combine conjunctively.
type FilterSpec struct {
	MinPrice  *float64 `json:"minPrice"`
	MaxPrice  *float64 `json:"maxPrice"`
	MinRating *float64 `json:"minRating"`
	MaxRating *float64 `json:"maxRating"`
	MinScore  *float64 `json:"minScore"`
	MaxScore  *float64 `json:"maxScore"`
}

// Matches reports whether a result satisfies every non-nil bound.
func (f *FilterSpec) Matches(r MergedHotelResult) bool {
	if f == nil {
		return true
	}

	if !within(r.Price, f.MinPrice, f.MaxPrice) {
		return false
	}
	if !within(r.Rating, f.MinRating, f.MaxRating) {
		return false
	}
	if !within(r.Score, f.MinScore, f.MaxScore) {
		return false
	}
	return true
}

// within checks a single value against an optional min/max pair.
func within(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}
