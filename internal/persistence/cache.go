package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "formula-api:list:"

// ErrCacheMiss is returned by Load when nothing is cached under the key.
var ErrCacheMiss = errors.New("cache miss")

// ListCache stores JSON-encoded reference lists with a TTL.
type ListCache interface {
	Load(ctx context.Context, key string, dest any) error
	Store(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type redisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache backs a ListCache with Redis. A nil client or a non-positive ttl
// yields a cache that always misses, since Redis keeps keys without a ttl forever.
func NewListCache(client *redis.Client, ttl time.Duration) ListCache {
	if client == nil || ttl <= 0 {
		return noopListCache{}
	}
	return &redisListCache{client: client, ttl: ttl}
}

func (c *redisListCache) Load(ctx context.Context, key string, dest any) error {
	raw, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (c *redisListCache) Store(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKeyPrefix+key, raw, c.ttl).Err()
}

func (c *redisListCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = cacheKeyPrefix + key
	}
	return c.client.Del(ctx, prefixed...).Err()
}

type noopListCache struct{}

func (noopListCache) Load(context.Context, string, any) error     { return ErrCacheMiss }
func (noopListCache) Store(context.Context, string, any) error    { return nil }
func (noopListCache) Invalidate(context.Context, ...string) error { return nil }
