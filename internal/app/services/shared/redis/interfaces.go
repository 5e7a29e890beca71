package redis

import (
	"context"
	"time"
)

type RedisRepository interface {
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
