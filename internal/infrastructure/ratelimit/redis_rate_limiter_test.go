package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := LimitConfig{
		RequestsPerMinute: 5,
	}

	key := "user:1"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, key, config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, key, config)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisRateLimiter_Allow_MultipleWindows(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := LimitConfig{
		RequestsPerMinute: 5,
		RequestsPerHour:   10,
		RequestsPerDay:    20,
	}

	key := "user:2"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, key, config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, key, config)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied by minute limit")
}

func TestRedisRateLimiter_Allow_DifferentKeys(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := LimitConfig{
		RequestsPerMinute: 2,
	}

	key1 := "user:3"
	key2 := "user:4"

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, key1, config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, key1, config)
	require.NoError(t, err)
	assert.False(t, allowed, "key1 should be rate limited")

	allowed, err = limiter.Allow(ctx, key2, config)
	require.NoError(t, err)
	assert.True(t, allowed, "key2 should not be affected")
}

func TestRedisRateLimiter_GetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := LimitConfig{
		RequestsPerMinute: 5,
	}

	key := "user:5"

	used, err := limiter.GetRemaining(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(0), used)

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, key, config)
		require.NoError(t, err)
	}

	used, err = limiter.GetRemaining(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), used)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := LimitConfig{
		RequestsPerMinute: 2,
	}

	key := "user:6"

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, key, config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, key, config)
	require.NoError(t, err)
	assert.False(t, allowed)

	err = limiter.Reset(ctx, key)
	require.NoError(t, err)

	allowed, err = limiter.Allow(ctx, key, config)
	require.NoError(t, err)
	assert.True(t, allowed, "should be allowed after reset")
}

func TestRedisRateLimiter_ZeroLimits(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := LimitConfig{}

	allowed, err := limiter.Allow(ctx, "user:7", config)
	require.NoError(t, err)
	assert.True(t, allowed, "zero limits should allow all requests")
}
