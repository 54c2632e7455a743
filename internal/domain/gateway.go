package domain

import "context"

// UpstreamGateway abstracts the two third-party hotel feeds: the
// asynchronous price-search job and the synchronous static-metadata
// listing. Implementations normalize transport and parse failures into
// ExternalAPIError and shape violations into UpstreamShapeError.
type UpstreamGateway interface {
	// FetchPriceJob runs the upstream price-search job to completion,
	// polling until the job reports completed, and returns the price list.
	FetchPriceJob(ctx context.Context, req *SearchRequest) ([]PriceListEntry, error)

	// FetchStaticInfo retrieves the static hotel metadata listing.
	FetchStaticInfo(ctx context.Context, req *SearchRequest) ([]StaticInfoEntry, error)
}
