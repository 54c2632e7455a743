package usecase

import (
	"context"
	"time"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/cache"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/infrastructure/logger"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/infrastructure/timeutil"
)

// HotelSearchUseCase defines the interface for hotel search operations.
type HotelSearchUseCase interface {
	// Search runs the full pipeline for a validated request: cache lookup,
	// parallel upstream fetch on miss, merge, filter, sort.
	Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error)
}

// hotelSearchUseCase implements HotelSearchUseCase.
type hotelSearchUseCase struct {
	gateway   domain.UpstreamGateway
	cache     *cache.Cache
	partnerID string
	clock     timeutil.Clock
	log       *logger.Logger
}

// Config contains configuration options for the use case.
type Config struct {
	// PartnerID is the partner/correlation constant attached to upstream
	// price-job requests and included in the cache key.
	PartnerID string

	// Clock supplies the current time for date validation; defaults to
	// the system clock.
	Clock timeutil.Clock

	// Log is the structured logger; defaults to a no-op logger.
	Log *logger.Logger
}

// NewHotelSearchUseCase creates a HotelSearchUseCase over the given
// gateway and cache.
func NewHotelSearchUseCase(gateway domain.UpstreamGateway, resultCache *cache.Cache, cfg Config) HotelSearchUseCase {
	clock := cfg.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	return &hotelSearchUseCase{
		gateway:   gateway,
		cache:     resultCache,
		partnerID: cfg.PartnerID,
		clock:     clock,
		log:       log,
	}
}

// fetchOutcome carries one upstream call's result across the goroutine
// boundary during the parallel fetch.
type fetchOutcome[T any] struct {
	payload []T
	err     error
}

// Search implements HotelSearchUseCase.
func (uc *hotelSearchUseCase) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	startTime := uc.clock.Now()

	// Validation errors short-circuit before any upstream call.
	if err := req.Validate(uc.clock.Now()); err != nil {
		return nil, err
	}

	key := req.CacheKey(uc.partnerID)

	entry, hit, err := uc.cache.GetOrFetch(ctx, key, func(ctx context.Context) (*cache.Entry, error) {
		priceList, staticInfo, err := uc.fetchBoth(ctx, req)
		if err != nil {
			return nil, err
		}
		return &cache.Entry{PriceList: priceList, StaticInfo: staticInfo}, nil
	})
	if err != nil {
		uc.log.Error().
			Err(err).
			Str("destination", req.DestinationID).
			Msg("upstream fetch failed")
		return nil, err
	}

	uc.log.Debug().
		Bool("cache_hit", hit).
		Str("destination", req.DestinationID).
		Int("price_entries", len(entry.PriceList)).
		Int("static_entries", len(entry.StaticInfo)).
		Msg("payloads ready")

	merged := Merge(entry.PriceList, entry.StaticInfo)
	filtered := ApplyFilter(merged, req.Filter)
	sorted := SortResults(filtered, req.Sort)

	metadata := domain.SearchMetadata{
		SearchTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:     hit,
	}

	return domain.NewSearchResponse(domain.NewReqParams(req, uc.partnerID), sorted, metadata), nil
}

// fetchBoth issues the price-job and static-info calls concurrently and
// waits for both to settle. If either fails, that error is returned and
// the other call's result is discarded; waiting for both keeps no request
// dangling past this function.
func (uc *hotelSearchUseCase) fetchBoth(ctx context.Context, req *domain.SearchRequest) ([]domain.PriceListEntry, []domain.StaticInfoEntry, error) {
	priceCh := make(chan fetchOutcome[domain.PriceListEntry], 1)
	staticCh := make(chan fetchOutcome[domain.StaticInfoEntry], 1)

	go func() {
		payload, err := uc.gateway.FetchPriceJob(ctx, req)
		priceCh <- fetchOutcome[domain.PriceListEntry]{payload: payload, err: err}
	}()

	go func() {
		payload, err := uc.gateway.FetchStaticInfo(ctx, req)
		staticCh <- fetchOutcome[domain.StaticInfoEntry]{payload: payload, err: err}
	}()

	price := <-priceCh
	static := <-staticCh

	if price.err != nil {
		return nil, nil, price.err
	}
	if static.err != nil {
		return nil, nil, static.err
	}

	return price.payload, static.payload, nil
}

// Ensure hotelSearchUseCase implements HotelSearchUseCase at compile time.
var _ HotelSearchUseCase = (*hotelSearchUseCase)(nil)
