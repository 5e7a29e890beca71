package redis

import (
	"context"
	"hospital-portal-service/internal/pkg/exceptions"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *goredis.Client
}

func NewRedisRepository(client *goredis.Client) RedisRepository {
	return &redisRepository{
		client: client,
	}
}

// IncrementWithTTL bumps the counter and sets its expiry in one round trip.
// The TTL is refreshed on every call, which is fine for fixed-window keys
// since the key name already encodes the window.
func (r *redisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, exceptions.ErrRedisIncrement(err)
	}
	return incr.Val(), nil
}
