package rangecache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Cache backed by a shared Redis instance.
// Errors degrade to cache misses: availability reads must keep working when
// Redis is down, just without the cache.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed cache. All keys are stored under prefix.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "rangecache"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) fullKey(key string) string {
	return r.prefix + ":" + key
}

// Get returns the cached payload; any Redis error is a miss
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := r.client.Get(ctx, r.fullKey(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores the payload with the given TTL; errors are dropped
func (r *Redis) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	r.client.Set(ctx, r.fullKey(key), payload, ttl)
}

// InvalidateAll deletes every key under the prefix via SCAN
func (r *Redis) InvalidateAll(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, r.prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		r.client.Del(ctx, keys...)
	}
}
