// Package poll provides a generic fixed-interval polling mechanism for
// asynchronous upstream jobs that must be re-queried until they complete.
package poll

import (
	"context"
	"time"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
)

// Config holds the polling configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	MaxAttempts int

	// Interval is the fixed delay between attempts.
	Interval time.Duration
}

// DefaultConfig matches the primary hotel-results flow: up to 10 attempts
// half a second apart, about 5 seconds before giving up.
var DefaultConfig = Config{
	MaxAttempts: 10,
	Interval:    500 * time.Millisecond,
}

// Until executes fn until it reports done, the attempt budget runs out, or
// the context is cancelled.
//
// fn returns (result, done, err). The first done=true short-circuits the
// remaining attempts and returns the result immediately. Any error aborts
// the poll at once and is propagated unwrapped: transport failures are
// never retried here, only a not-yet-done job drives the loop. When the
// budget is exhausted, a domain.MaxAttemptsError is returned.
func Until[T any](ctx context.Context, fn func(context.Context) (T, bool, error), cfg Config) (T, error) {
	var zero T

	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, done, err := fn(ctx)
		if err != nil {
			return zero, err
		}
		if done {
			return result, nil
		}

		// No sleep after the last attempt.
		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(cfg.Interval):
		}
	}

	return zero, domain.NewMaxAttemptsError(cfg.MaxAttempts)
}

// WithMaxAttempts returns a new config with the given attempt budget.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInterval returns a new config with the given interval.
func (c Config) WithInterval(d time.Duration) Config {
	c.Interval = d
	return c
}
