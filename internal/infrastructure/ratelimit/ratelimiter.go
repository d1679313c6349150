// Package ratelimit implements sliding-window rate limiting for the
// generation endpoints.
package ratelimit

import (
	"context"
	"time"
)

type LimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config LimitConfig) (bool, error)
	GetRemaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
