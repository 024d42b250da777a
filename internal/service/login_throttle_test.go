package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
)

// fakeThrottleStore counts attempts in memory, mimicking INCR/EXPIRE/DEL.
type fakeThrottleStore struct {
	counts  map[string]int64
	expires map[string]time.Duration
}

func newFakeThrottleStore() *fakeThrottleStore {
	return &fakeThrottleStore{
		counts:  make(map[string]int64),
		expires: make(map[string]time.Duration),
	}
}

func (f *fakeThrottleStore) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeThrottleStore) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.expires[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (f *fakeThrottleStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.counts, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestLoginThrottleLimits(t *testing.T) {
	store := newFakeThrottleStore()
	throttle := &LoginThrottle{store: store, limit: 3, window: time.Minute}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.NoError(t, throttle.Check(ctx, "alice"))
	}
	assert.ErrorIs(t, throttle.Check(ctx, "alice"), auth.ErrTooManyAttempts)

	// Other usernames have their own window.
	assert.NoError(t, throttle.Check(ctx, "bob"))

	throttle.Reset(ctx, "alice")
	assert.NoError(t, throttle.Check(ctx, "alice"))
}

func TestLoginThrottleDisabled(t *testing.T) {
	var throttle *LoginThrottle
	assert.NoError(t, throttle.Check(context.Background(), "alice"))
	throttle.Reset(context.Background(), "alice")
}
