package sift

import (
	"context"

	"github.com/fwojciec/sifter"
	"golang.org/x/time/rate"
)

var _ sifter.Limiter = (*RateLimiter)(nil)

// RateLimiter spaces digest inserts using a token bucket with a burst of 1.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a RateLimiter allowing perSecond inserts per second.
func NewRateLimiter(perSecond float64) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// Wait blocks until the next insert is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
