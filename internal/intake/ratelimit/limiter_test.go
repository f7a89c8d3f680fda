// internal/intake/ratelimit/limiter_test.go
package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*Limiter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, limit, window), mr
}

func TestAllow_UnderLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestAllow_OverLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2, time.Minute)

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)

	allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(context.Background(), "5.6.7.8")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_WindowExpires(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)

	allowed, err := limiter.Allow(context.Background(), "1.2.3.4")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(context.Background(), "1.2.3.4")
	assert.NoError(t, err)
	assert.False(t, allowed)

	mr.FastForward(61 * time.Second)

	allowed, err = limiter.Allow(context.Background(), "1.2.3.4")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_RedisDown(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "1.2.3.4")
	assert.Error(t, err)
}
