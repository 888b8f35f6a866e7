package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const attemptWindow = 15 * time.Minute

// LoginThrottle counts failed login attempts per login within a sliding
// window, backed by Redis so the limit holds across instances.
// Key format: auth:attempts:<login>
type LoginThrottle struct {
	client *redis.Client
	limit  int64
}

// NewLoginThrottle creates a throttle allowing up to limit failed attempts
// per window.
func NewLoginThrottle(client *redis.Client, limit int64) *LoginThrottle {
	return &LoginThrottle{client: client, limit: limit}
}

// Blocked reports whether the login has exhausted its attempt budget.
func (t *LoginThrottle) Blocked(ctx context.Context, login string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(login)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.limit, nil
}

// RecordFailure bumps the attempt counter; the first failure in a window
// starts the expiry clock.
func (t *LoginThrottle) RecordFailure(ctx context.Context, login string) error {
	key := t.key(login)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, login string) error {
	return t.client.Del(ctx, t.key(login)).Err()
}

func (t *LoginThrottle) key(login string) string {
	return "auth:attempts:" + login
}
