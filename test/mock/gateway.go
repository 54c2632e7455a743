// Package mock provides test doubles for the hotel search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
)

// Gateway is a configurable mock implementation of domain.UpstreamGateway.
// It supports configurable delays, errors, and payloads for testing
// various scenarios including timeouts and partial failures.
type Gateway struct {
	priceList  []domain.PriceListEntry
	staticInfo []domain.StaticInfoEntry
	priceErr   error
	staticErr  error
	delay      time.Duration

	mu          sync.Mutex
	priceCalls  int
	staticCalls int
}

// NewGateway creates a new mock gateway.
// The gateway is configured using the builder pattern methods.
func NewGateway() *Gateway {
	return &Gateway{}
}

// WithPriceList configures the gateway to return the given price entries.
func (g *Gateway) WithPriceList(entries []domain.PriceListEntry) *Gateway {
	g.priceList = entries
	return g
}

// WithStaticInfo configures the gateway to return the given static entries.
func (g *Gateway) WithStaticInfo(entries []domain.StaticInfoEntry) *Gateway {
	g.staticInfo = entries
	return g
}

// WithPriceError configures the price job call to fail with the given error.
func (g *Gateway) WithPriceError(err error) *Gateway {
	g.priceErr = err
	return g
}

// WithStaticError configures the static info call to fail with the given error.
func (g *Gateway) WithStaticError(err error) *Gateway {
	g.staticErr = err
	return g
}

// WithDelay configures both calls to wait the given duration before responding.
// This is useful for testing timeout and concurrency behavior.
func (g *Gateway) WithDelay(d time.Duration) *Gateway {
	g.delay = d
	return g
}

// FetchPriceJob implements domain.UpstreamGateway.
func (g *Gateway) FetchPriceJob(ctx context.Context, req *domain.SearchRequest) ([]domain.PriceListEntry, error) {
	g.mu.Lock()
	g.priceCalls++
	g.mu.Unlock()

	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	if g.priceErr != nil {
		return nil, g.priceErr
	}
	return g.priceList, nil
}

// FetchStaticInfo implements domain.UpstreamGateway.
func (g *Gateway) FetchStaticInfo(ctx context.Context, req *domain.SearchRequest) ([]domain.StaticInfoEntry, error) {
	g.mu.Lock()
	g.staticCalls++
	g.mu.Unlock()

	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	if g.staticErr != nil {
		return nil, g.staticErr
	}
	return g.staticInfo, nil
}

// wait applies the configured delay, respecting context cancellation.
func (g *Gateway) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(g.delay):
		return nil
	}
}

// PriceCalls returns the number of times FetchPriceJob was called.
func (g *Gateway) PriceCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.priceCalls
}

// StaticCalls returns the number of times FetchStaticInfo was called.
func (g *Gateway) StaticCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.staticCalls
}

// Reset resets the call counters to zero.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.priceCalls = 0
	g.staticCalls = 0
}

// Ensure Gateway implements domain.UpstreamGateway at compile time.
var _ domain.UpstreamGateway = (*Gateway)(nil)

// SamplePriceList returns a price list with count sequentially priced hotels.
// IDs are "h1".."hN" and prices ascend from 100 in steps of 25.
func SamplePriceList(count int) []domain.PriceListEntry {
	entries := make([]domain.PriceListEntry, count)
	for i := 0; i < count; i++ {
		price := 100.0 + float64(i)*25.0
		rank := float64(i + 1)
		entries[i] = domain.PriceListEntry{
			HotelID:    domain.FlexID(fmt.Sprintf("h%d", i+1)),
			Price:      &price,
			SearchRank: &rank,
		}
	}
	return entries
}

// SampleStaticInfo returns static entries matching SamplePriceList IDs.
// Each entry carries a name, a rating and a trustyou score.
func SampleStaticInfo(count int) []domain.StaticInfoEntry {
	entries := make([]domain.StaticInfoEntry, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Hotel %d", i+1)
		rating := 3.0 + float64(i%3)*0.5
		overall := 70.0 + float64(i)*5.0
		prefix := fmt.Sprintf("https://img.example/h%d/", i+1)
		entries[i] = domain.StaticInfoEntry{
			HotelID: domain.FlexID(fmt.Sprintf("h%d", i+1)),
			Name:    &name,
			Rating:  &rating,
			Images:  domain.ImageInfo{Prefix: &prefix, Count: 10},
			TrustYou: &domain.TrustYou{
				Score: &domain.TrustYouScore{Overall: &overall},
			},
		}
	}
	return entries
}
