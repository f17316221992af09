package catalog

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// URLCache caches signed read URLs for blob keys. Get returns an error on a
// miss; Set stores the URL for at most ttl.
type URLCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, url string, ttl time.Duration) error
}

// RedisURLCache is a redis-backed URLCache.
type RedisURLCache struct {
	rdb *redis.Client
}

func NewRedisURLCache(rdb *redis.Client) *RedisURLCache {
	return &RedisURLCache{rdb: rdb}
}

func (c *RedisURLCache) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

func (c *RedisURLCache) Set(ctx context.Context, key, url string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, url, ttl).Err()
}
