package domain

// PriceJobPayload is the response body of the asynchronous price-search job.
// The job endpoint returns completed=false while the search is still
// running; hotels are only present once completed is true.
type PriceJobPayload struct {
	// Completed reports whether the upstream search job has finished.
	Completed bool `json:"completed"`

	// Hotels is the price list. The gateway rejects payloads where this
	// field is absent on a completed job.
	Hotels []PriceListEntry `json:"hotels"`
}

// PriceListEntry is one hotel's row in the upstream price feed.
// Price is a pointer because upstream reports unavailable inventory as
// null; such entries are excluded from the merged result entirely.
type PriceListEntry struct {
	HotelID        FlexID   `json:"hotel_id"`
	Price          *float64 `json:"price"`
	SearchRank     *float64 `json:"rank"`
	RoomsAvailable *int     `json:"rooms_available"`
	MarketRates    []Rate   `json:"market_rates,omitempty"`
}

// Rate is an ancillary per-market price quote. It is carried through the
// cache but never surfaced downstream.
type Rate struct {
	Market string  `json:"market"`
	Price  float64 `json:"price"`
}

// StaticInfoEntry is one hotel's row in the static metadata feed.
// Nullable leaves are pointers so that JSON null and absent fields both
// normalize to nil (the safe-assign rule).
type StaticInfoEntry struct {
	HotelID     FlexID    `json:"id"`
	Name        *string   `json:"name"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Address     *string   `json:"address"`
	Description *string   `json:"description"`
	Rating      *float64  `json:"rating"`
	Distance    *float64  `json:"distance"`
	CheckInTime *string   `json:"checkin_time"`
	Images      ImageInfo `json:"image_details"`

	// TrustYou holds the nested review score; the whole object, the score
	// object and the overall value are each independently nullable.
	TrustYou *TrustYou `json:"trustyou"`
}

// ImageInfo describes the hotel image set: a URL prefix and a count.
// The first image URL is prefix + "1.jpg" when Count is nonzero.
type ImageInfo struct {
	Prefix *string `json:"prefix"`
	Count  int     `json:"count"`
}

// TrustYou is the nested trust/review block from the static feed.
type TrustYou struct {
	ID    *string        `json:"id"`
	Score *TrustYouScore `json:"score"`
}

// TrustYouScore holds the actual review score values.
type TrustYouScore struct {
	Overall *float64 `json:"overall"`
}

// OverallScore digs out trustyou.score.overall, tolerating any level of the
// nesting being absent. Returns nil when no score is available.
func (s *StaticInfoEntry) OverallScore() *float64 {
	if s.TrustYou == nil || s.TrustYou.Score == nil {
		return nil
	}
	return s.TrustYou.Score.Overall
}

// FirstImageURL returns the URL of the first hotel image, or nil when the
// entry reports no images or carries no usable prefix.
func (s *StaticInfoEntry) FirstImageURL() *string {
	if s.Images.Count == 0 || s.Images.Prefix == nil || *s.Images.Prefix == "" {
		return nil
	}
	url := *s.Images.Prefix + "1.jpg"
	return &url
}
