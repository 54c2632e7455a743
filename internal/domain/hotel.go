package domain

// Default values applied during merge when upstream data is missing.
const (
	// DefaultRating is used when the static-info rating is null or absent.
	DefaultRating = 2.5

	// DefaultScore is used when the nested trust score is null or absent.
	DefaultScore = 70.0
)

// MergedHotelResult is the canonical per-hotel output record. It combines a
// live price with static metadata; every field other than the identifier,
// price, rating and score is nullable and marshals as JSON null when absent.
//
// A result is immutable after construction: the filter/sort pass only
// selects and reorders, it never mutates fields.
type MergedHotelResult struct {
	// ID is the hotel identifier shared by both upstream feeds.
	ID string `json:"id"`

	// Price is the live price; hotels without a usable price are never
	// emitted, so this is always populated.
	Price float64 `json:"price"`

	// Name is the hotel name, nil when the static feed had no match.
	Name *string `json:"name"`

	// Latitude and Longitude are the hotel coordinates.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// Description is the free-text hotel description.
	Description *string `json:"description"`

	// Address is the street address.
	Address *string `json:"address"`

	// Rating is the star rating; defaults to DefaultRating when missing.
	Rating float64 `json:"rating"`

	// Distance is the distance from the destination center.
	Distance *float64 `json:"distance"`

	// CheckInTime is the hotel's check-in time (e.g. "14:00").
	CheckInTime *string `json:"checkInTime"`

	// ImageURL points at the first hotel image, nil when the static feed
	// reported no images.
	ImageURL *string `json:"imageUrl"`

	// Score is the trust/review score; defaults to DefaultScore when missing.
	Score float64 `json:"score"`
}

// MetricValue returns the value of the named sortable/filterable metric.
// The second return is false for unsupported field names.
func (r *MergedHotelResult) MetricValue(field SortField) (float64, bool) {
	switch field {
	case SortByPrice:
		return r.Price, true
	case SortByRating:
		return r.Rating, true
	case SortByScore:
		return r.Score, true
	default:
		return 0, false
	}
}
