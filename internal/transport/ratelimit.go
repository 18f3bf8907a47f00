package transport

import (
	"context"

	"golang.org/x/time/rate"
)

// TokenBucketLimiter implements RateLimiter using a token bucket.
type TokenBucketLimiter struct {
	limiter *rate.Limiter
}

// NewTokenBucketLimiter creates a limiter allowing requestsPerSecond
// sustained throughput with the given burst size.
func NewTokenBucketLimiter(requestsPerSecond float64, burst int) *TokenBucketLimiter {
	return &TokenBucketLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a request is allowed under the rate limit.
func (l *TokenBucketLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
