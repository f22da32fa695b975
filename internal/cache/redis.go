package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"user-directory/pkg/helpers"
)

// RedisCache adapts a go-redis client to the Cache interface. Values are
// stored as JSON; redis.Nil is reported as a miss, every other failure is
// surfaced for the caller to absorb or log.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	return helpers.RedisGetJSON(ctx, c.rdb, key, dest)
}

func (c *RedisCache) SetWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error {
	return helpers.RedisSetJSON(ctx, c.rdb, key, value, ttl)
}

var _ Cache = (*RedisCache)(nil)
