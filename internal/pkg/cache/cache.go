// Package cache wraps an optional Redis client used to memoize day
// availability per staff member. When Redis is not configured (or is down at
// startup) the client is nil and every operation is a no-op, so the rest of
// the application degrades to computing availability on each request.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON cache over Redis. A nil *Cache is valid and disabled.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at addr. It returns nil (cache disabled) when addr is
// empty or the server cannot be reached within a short timeout.
func New(addr, password string, db int) *Cache {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return &Cache{client: client}
}

// Enabled reports whether the cache is backed by a live Redis connection.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON loads the value at key into dest. It returns false on a miss, on a
// disabled cache, or on any Redis/unmarshal error.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// SetJSON stores value at key with a TTL. Errors are ignored; the cache is
// best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, ttl)
}

// Delete removes keys. Errors are ignored.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

// Close releases the underlying connection if any.
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
