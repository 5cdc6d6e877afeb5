package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles login attempts per email address using a Redis
// counter with a sliding expiry window. A nil limiter is valid and performs
// no throttling.
type LoginLimiter struct {
	redis       *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter backed by the given Redis client.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		redis:       client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow records a login attempt for the email and returns
// ErrLoginRateLimited once the attempt count inside the window exceeds the
// configured maximum. Redis unavailability is returned as a wrapped error,
// distinct from the rate-limit rejection, so callers can decide whether to
// fail open.
func (l *LoginLimiter) Allow(ctx context.Context, email string) error {
	if l == nil || l.redis == nil {
		return nil
	}

	key := loginAttemptKey(email)

	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter unavailable: %w", err)
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limiter unavailable: %w", err)
		}
	}

	if count > int64(l.maxAttempts) {
		return ErrLoginRateLimited
	}

	return nil
}

// Reset clears the attempt counter for the email after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	if l == nil || l.redis == nil {
		return nil
	}
	return l.redis.Del(ctx, loginAttemptKey(email)).Err()
}

func loginAttemptKey(email string) string {
	return "login:" + email
}
