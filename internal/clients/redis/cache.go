package redis

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Cache is a small TTL cache used to keep hot per-user lookups (exclusion
// sets for the feed) off the database. It is optional: when REDIS_ADDR is
// unset the app runs without it and callers treat a nil Cache as a miss.
type Cache struct {
	rdb *goredis.Client
}

// NewCacheFromEnv connects to the redis instance named by REDIS_ADDR.
// Returns an error when the address is missing so the caller can decide
// whether the cache is required for its deployment.
func NewCacheFromEnv() (*Cache, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Cache{rdb: rdb}, nil
}

// GetIDs returns the cached id set for key, or (nil, false) on a miss.
// A nil receiver is always a miss.
func (c *Cache) GetIDs(ctx context.Context, key string) ([]string, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	if raw == "" {
		return []string{}, true
	}
	return strings.Split(raw, ","), true
}

// SetIDs stores the id set under key with the given TTL. Errors are
// swallowed: the cache is an optimization, never a source of truth.
func (c *Cache) SetIDs(ctx context.Context, key string, ids []string, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Set(ctx, key, strings.Join(ids, ","), ttl).Err()
}

// Invalidate removes key. Used when a favorite or history write changes
// the underlying set.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
