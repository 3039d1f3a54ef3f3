package storage

import (
	"context"
	"time"

	"sublimation-calc/pkg/redis"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, v any) error
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

var _ Cache = (*redis.Client)(nil)
