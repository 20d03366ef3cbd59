// Package cache holds the menu-cache invalidation hook. Combo and dish list
// responses are cached elsewhere under "combo_<categoryId>" keys; mutating
// operations call Invalidate with either one category key or the "combo_*"
// sweep. The hook is advisory: callers log failures and move on, a miss only
// costs a cache rebuild.
package cache

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

type Invalidator interface {
	// Invalidate removes every cache entry matching the glob pattern.
	Invalidate(ctx context.Context, pattern string) error
}

// RedisInvalidator deletes matching keys via SCAN, never KEYS.
type RedisInvalidator struct {
	rdb goredis.UniversalClient
}

func NewRedisInvalidator(rdb goredis.UniversalClient) *RedisInvalidator {
	return &RedisInvalidator{rdb: rdb}
}

func (r *RedisInvalidator) Invalidate(ctx context.Context, pattern string) error {
	iter := r.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	keys := make([]string, 0, 16)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.rdb.Del(ctx, keys...).Err()
}

// Noop is used when REDIS_ADDR is unset (tests, local dev without redis).
type Noop struct{}

func (Noop) Invalidate(context.Context, string) error { return nil }
