// Package cache implements a two-level cache: an in-process go-cache in
// front of an optional Redis instance. Values are msgpack-encoded so both
// levels hold the same bytes.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrMiss is returned by Get when neither level holds the key.
var ErrMiss = errors.New("cache miss")

// Cache is the read-through contract used by the services.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Config controls the in-process level.
type Config struct {
	DefaultExpiration time.Duration
	CleanupInterval   time.Duration
}

type tieredCache struct {
	local  *gocache.Cache
	remote *redis.Client
}

// New builds a tiered cache. remote may be nil, in which case only the
// in-process level is used.
func New(cfg Config, remote *redis.Client) Cache {
	if cfg.DefaultExpiration <= 0 {
		cfg.DefaultExpiration = 5 * time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 10 * time.Minute
	}
	return &tieredCache{
		local:  gocache.New(cfg.DefaultExpiration, cfg.CleanupInterval),
		remote: remote,
	}
}

func (c *tieredCache) Get(ctx context.Context, key string, dest interface{}) error {
	if raw, ok := c.local.Get(key); ok {
		return msgpack.Unmarshal(raw.([]byte), dest)
	}
	if c.remote == nil {
		return ErrMiss
	}

	raw, ttl, err := c.remoteGet(ctx, key)
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	if err := msgpack.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if ttl > 0 {
		c.local.Set(key, raw, ttl)
	}
	return nil
}

func (c *tieredCache) remoteGet(ctx context.Context, key string) ([]byte, time.Duration, error) {
	pipe := c.remote.Pipeline()
	getCmd := pipe.Get(ctx, key)
	ttlCmd := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, 0, err
	}
	raw, err := getCmd.Bytes()
	if err != nil {
		return nil, 0, err
	}
	return raw, ttlCmd.Val(), nil
}

func (c *tieredCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	c.local.Set(key, raw, ttl)
	if c.remote == nil {
		return nil
	}
	if err := c.remote.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
	return nil
}

func (c *tieredCache) DeletePrefix(ctx context.Context, prefix string) error {
	for key := range c.local.Items() {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			c.local.Delete(key)
		}
	}
	if c.remote == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := c.remote.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan %s*: %w", prefix, err)
		}
		if len(keys) > 0 {
			if err := c.remote.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete %s*: %w", prefix, err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
