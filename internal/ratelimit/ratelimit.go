package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultGap is the minimum spacing between provider requests.
const DefaultGap = 500 * time.Millisecond

// Limiter enforces a minimum wall-clock gap between consecutive grants.
// Safe for concurrent callers, so parallel batch runs keep the provider
// politeness contract.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a limiter with the given gap. A non-positive gap falls back
// to DefaultGap.
func New(gap time.Duration) *Limiter {
	if gap <= 0 {
		gap = DefaultGap
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Every(gap), 1)}
}

// Wait blocks until the next request may proceed or the context is cancelled.
// The first call after construction returns immediately.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
