// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package celebrity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/telugucine/internal/platform/constants"
)

// RedisResolveCache implements [ResolveCache] using Redis strings with TTL.
type RedisResolveCache struct {
	client *redis.Client
}

// NewRedisResolveCache creates a Redis-backed resolution cache.
func NewRedisResolveCache(client *redis.Client) *RedisResolveCache {
	return &RedisResolveCache{client: client}
}

/*
Get returns the cached canonical name for a compacted slug.

Returns:
  - string: Canonical name, empty on a miss
  - bool: Whether the key was present
  - error: Connectivity errors only; a miss is not an error
*/
func (cache *RedisResolveCache) Get(context context.Context, key string) (string, bool, error) {
	name, err := cache.client.Get(context, constants.RedisPrefixResolve+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis_resolve_get_failed: %w", err)
	}
	return name, true, nil
}

// Set stores a resolution with the given TTL.
func (cache *RedisResolveCache) Set(context context.Context, key, name string, ttl time.Duration) error {
	if err := cache.client.Set(context, constants.RedisPrefixResolve+key, name, ttl).Err(); err != nil {
		return fmt.Errorf("redis_resolve_set_failed: %w", err)
	}
	return nil
}

// Delete evicts resolutions for the given compacted slugs.
func (cache *RedisResolveCache) Delete(context context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = constants.RedisPrefixResolve + key
	}

	if err := cache.client.Del(context, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis_resolve_delete_failed: %w", err)
	}
	return nil
}
