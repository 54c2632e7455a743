package domain

// SearchResponse is the aggregated response for a hotel search.
type SearchResponse struct {
	// ReqParams echoes the validated request parameters back to the client.
	ReqParams ReqParams `json:"reqParams"`

	// Metadata contains information about the search execution.
	Metadata SearchMetadata `json:"metadata"`

	// Data contains the merged results after filtering and sorting.
	Data []MergedHotelResult `json:"data"`
}

// ReqParams is the echo of the request as it was forwarded upstream,
// including the derived guests string.
type ReqParams struct {
	DestinationID string `json:"destinationId"`
	HotelID       string `json:"hotelId,omitempty"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Language      string `json:"language"`
	Currency      string `json:"currency"`
	Guests        string `json:"guests"`
	Rooms         int    `json:"rooms"`
	PartnerID     string `json:"partnerId"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of results returned after filtering.
	TotalResults int `json:"total_results"`

	// SearchTimeMs is the total pipeline duration in milliseconds.
	SearchTimeMs int64 `json:"search_time_ms"`

	// CacheHit indicates whether the raw payloads came from cache.
	CacheHit bool `json:"cache_hit"`
}

// NewSearchResponse builds a SearchResponse, normalizing nil result slices
// to empty arrays so the JSON data field is never null.
func NewSearchResponse(params ReqParams, results []MergedHotelResult, metadata SearchMetadata) *SearchResponse {
	if results == nil {
		results = []MergedHotelResult{}
	}
	metadata.TotalResults = len(results)

	return &SearchResponse{
		ReqParams: params,
		Metadata:  metadata,
		Data:      results,
	}
}

// NewReqParams derives the echoed request parameters from a validated
// search request and the partner identifier attached to the upstream call.
func NewReqParams(req *SearchRequest, partnerID string) ReqParams {
	return ReqParams{
		DestinationID: req.DestinationID,
		HotelID:       req.HotelID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Language:      req.Language,
		Currency:      req.Currency,
		Guests:        req.GuestsString(),
		Rooms:         req.Rooms,
		PartnerID:     partnerID,
	}
}
