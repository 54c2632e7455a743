// Package cache provides the short-TTL result cache for the search
// pipeline. Entries hold the raw upstream payloads keyed by the normalized
// request parameters, so a fresh hit skips the upstream gateway entirely
// while filter and sort still run per request.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/infrastructure/timeutil"
)

// DefaultTTL is the freshness window after which an entry is no longer
// served without a fresh upstream fetch.
const DefaultTTL = 10 * time.Minute

// reapInterval is how often the background reaper sweeps stale entries.
const reapInterval = time.Minute

// Entry is a stored tuple of raw upstream payloads plus bookkeeping.
type Entry struct {
	// PriceList is the raw price feed as fetched.
	PriceList []domain.PriceListEntry

	// StaticInfo is the raw static-metadata feed as fetched.
	StaticInfo []domain.StaticInfoEntry

	// CreatedAt is when the entry was stored.
	CreatedAt time.Time

	// ExpireAt is the explicit expiry timestamp (CreatedAt + TTL).
	ExpireAt time.Time
}

// Cache is a concurrency-safe TTL cache with per-key request collapsing:
// concurrent misses for the same key trigger exactly one upstream fetch.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*Entry
	inflight map[string]*inflightFetch
	ttl      time.Duration
	clock    timeutil.Clock
	done     chan struct{}
	stopOnce sync.Once
}

// inflightFetch tracks one in-progress fetch; waiters block on done.
type inflightFetch struct {
	done  chan struct{}
	entry *Entry
	err   error
}

// New creates a Cache with the given TTL and starts the background reaper.
// A zero ttl falls back to DefaultTTL; a nil clock uses the system clock.
func New(ttl time.Duration, clock timeutil.Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	c := &Cache{
		entries:  make(map[string]*Entry),
		inflight: make(map[string]*inflightFetch),
		ttl:      ttl,
		clock:    clock,
		done:     make(chan struct{}),
	}

	go c.reap()

	return c
}

// Close stops the background reaper. Safe to call more than once.
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
}

// Lookup returns the entry for key if present and still fresh.
func (c *Cache) Lookup(key string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookupLocked(key)
}

func (c *Cache) lookupLocked(key string) (*Entry, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.clock.Now().Before(entry.ExpireAt) {
		return nil, false
	}
	return entry, true
}

// Store inserts or replaces the entry for key. Last write wins on
// duplicate concurrent stores for the same key.
func (c *Cache) Store(key string, priceList []domain.PriceListEntry, staticInfo []domain.StaticInfoEntry) error {
	now := c.clock.Now()
	entry := &Entry{
		PriceList:  priceList,
		StaticInfo: staticInfo,
		CreatedAt:  now,
		ExpireAt:   now.Add(c.ttl),
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	return nil
}

// GetOrFetch returns the fresh entry for key, or runs fetch to produce one.
// Concurrent misses for the same key are collapsed into a single fetch;
// waiters share its result. The hit flag reports whether the entry came
// from cache. Fetch failures are not stored.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (*Entry, error)) (*Entry, bool, error) {
	c.mu.Lock()

	if entry, ok := c.lookupLocked(key); ok {
		c.mu.Unlock()
		return entry, true, nil
	}

	if flight, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-flight.done:
			return flight.entry, false, flight.err
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}

	flight := &inflightFetch{done: make(chan struct{})}
	c.inflight[key] = flight
	c.mu.Unlock()

	entry, err := fetch(ctx)

	c.mu.Lock()
	flight.entry = entry
	flight.err = err
	if err == nil && entry != nil {
		now := c.clock.Now()
		entry.CreatedAt = now
		entry.ExpireAt = now.Add(c.ttl)
		c.entries[key] = entry
	}
	delete(c.inflight, key)
	c.mu.Unlock()

	close(flight.done)

	return entry, false, err
}

// Invalidate removes a specific key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len returns the number of stored entries, fresh or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// reap periodically drops expired entries so the map does not grow without
// bound between identical searches.
func (c *Cache) reap() {
	ticker := time.NewTicker(reapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.reapOnce()
		}
	}
}

func (c *Cache) reapOnce() {
	now := c.clock.Now()

	c.mu.Lock()
	for key, entry := range c.entries {
		if !now.Before(entry.ExpireAt) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}
