package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts login attempts per client key in a fixed window.
// Key format: throttle:login:<key>
type LoginThrottle struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginThrottle creates a throttle allowing limit attempts per window.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginThrottle{client: client, limit: limit, window: window}
}

// Allow increments the attempt counter for key and reports whether the
// attempt is within the limit. When the limit is exceeded it also returns the
// number of seconds until the window resets.
func (t *LoginThrottle) Allow(ctx context.Context, key string) (bool, int, error) {
	redisKey := fmt.Sprintf("throttle:login:%s", key)

	n, err := t.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, redisKey, t.window).Err(); err != nil {
			return false, 0, fmt.Errorf("throttle expire: %w", err)
		}
	}

	if n > int64(t.limit) {
		ttl, err := t.client.TTL(ctx, redisKey).Result()
		if err != nil || ttl < 0 {
			ttl = t.window
		}
		return false, int(ttl.Seconds()), nil
	}
	return true, 0, nil
}
