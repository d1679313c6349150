package middleware

import (
	"context"
	"time"

	"sips/internal/infrastructure/ratelimit"
	"sips/internal/shared/logger"
)

type mockRateLimiter struct {
	AllowFunc func(ctx context.Context, key string, config ratelimit.LimitConfig) (bool, error)
}

func (m *mockRateLimiter) Allow(ctx context.Context, key string, config ratelimit.LimitConfig) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key, config)
	}
	return true, nil
}

func (m *mockRateLimiter) GetRemaining(ctx context.Context, key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (m *mockRateLimiter) Reset(ctx context.Context, key string) error { return nil }

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}

func (m *mockLogger) Info(msg string, args ...any) {}

func (m *mockLogger) Warn(msg string, args ...any) {}

func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
