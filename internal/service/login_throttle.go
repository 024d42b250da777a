package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/config"
)

// throttleStore is the subset of the redis client the throttle uses.
type throttleStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// LoginThrottle counts failed-window login attempts per username in Redis.
// It is best effort: when Redis is unreachable logins proceed unthrottled.
type LoginThrottle struct {
	store  throttleStore
	limit  int
	window time.Duration
}

// NewLoginThrottle builds a throttle from config. A nil client disables it.
func NewLoginThrottle(client *redis.Client, cfg config.AuthConfig) *LoginThrottle {
	if client == nil || cfg.LoginAttemptLimit <= 0 {
		return nil
	}
	return &LoginThrottle{
		store:  client,
		limit:  cfg.LoginAttemptLimit,
		window: cfg.LoginAttemptWindow(),
	}
}

const throttleKeyPrefix = "login_attempts:"

// Check registers an attempt and rejects once the window limit is exceeded.
func (t *LoginThrottle) Check(ctx context.Context, username string) error {
	if t == nil || t.store == nil {
		return nil
	}

	key := throttleKeyPrefix + username
	count, err := t.store.Incr(ctx, key).Result()
	if err != nil {
		return nil
	}
	if count == 1 {
		t.store.Expire(ctx, key, t.window)
	}
	if count > int64(t.limit) {
		return auth.ErrTooManyAttempts
	}
	return nil
}

// Reset clears the attempt counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) {
	if t == nil || t.store == nil {
		return
	}
	t.store.Del(ctx, throttleKeyPrefix+username)
}
