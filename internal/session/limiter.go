package session

import (
	"context"
	"fmt"
	"time"

	"sublimation-calc/pkg/redis"
)

type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
}

var _ Counter = (*redis.Client)(nil)

// Limiter is a fixed-window counter per chat and action.
type Limiter struct {
	counter Counter
	limit   int64
	window  time.Duration
}

// NewLimiter allows limit actions per window. A limit <= 0 disables limiting.
func NewLimiter(counter Counter, limit int64, window time.Duration) *Limiter {
	return &Limiter{counter: counter, limit: limit, window: window}
}

func (l *Limiter) Allow(ctx context.Context, chatID int64, action string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("ratelimit:%d:%s", chatID, action)

	count, err := l.counter.Incr(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// first hit opens the window
	if count == 1 {
		if _, err := l.counter.Expire(ctx, key, l.window); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= l.limit, nil
}
