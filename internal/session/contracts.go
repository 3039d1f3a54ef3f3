package session

import (
	"context"
	"time"

	"sublimation-calc/pkg/redis"
)

type Store interface {
	GetJSON(ctx context.Context, key string, v any) error
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

var _ Store = (*redis.Client)(nil)
