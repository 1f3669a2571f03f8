package fetch

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/fetchflow/pkg/common/validation"
	"github.com/vnykmshr/fetchflow/pkg/metrics"
)

// CacheConfig holds configuration for a Redis-backed fetch cache.
type CacheConfig struct {
	// Redis is the client used as the cache backend.
	Redis redis.UniversalClient

	// Prefix is prepended to every cache key (defaults to "fetchflow:cache").
	Prefix string

	// TTL is how long cached bodies live (defaults to 5 minutes).
	TTL time.Duration

	// RedisTimeout bounds each cache lookup and store (defaults to 500ms).
	RedisTimeout time.Duration

	// Name labels this cache in metrics (defaults to "default").
	Name string

	// Metrics records hits, misses and backend errors when non-nil.
	Metrics *metrics.Registry
}

// Cached is a Fetcher that consults a Redis read-through cache before
// delegating to an underlying Fetcher. Only successful fetches are
// cached; a misbehaving cache backend degrades to a direct fetch and
// never fails a task on its own.
type Cached struct {
	next   Fetcher
	config CacheConfig
}

// NewCached wraps next with a Redis read-through cache.
func NewCached(next Fetcher, config CacheConfig) (*Cached, error) {
	if next == nil {
		return nil, validation.ValidateNotNil("fetch", "fetcher", nil)
	}
	if config.Redis == nil {
		return nil, validation.ValidateNotNil("fetch", "redis", nil)
	}

	if config.Prefix == "" {
		config.Prefix = "fetchflow:cache"
	}
	if config.TTL == 0 {
		config.TTL = 5 * time.Minute
	}
	if err := validation.ValidatePositiveDuration("fetch", "ttl", config.TTL); err != nil {
		return nil, err
	}
	if config.RedisTimeout == 0 {
		config.RedisTimeout = 500 * time.Millisecond
	}
	if config.Name == "" {
		config.Name = "default"
	}

	return &Cached{next: next, config: config}, nil
}

// Fetch returns the cached body for task if present, otherwise fetches
// it and stores the result.
func (c *Cached) Fetch(ctx context.Context, task string) ([]byte, error) {
	key := c.config.Prefix + ":" + task

	lookupCtx, cancel := context.WithTimeout(ctx, c.config.RedisTimeout)
	body, err := c.config.Redis.Get(lookupCtx, key).Bytes()
	cancel()

	switch {
	case err == nil:
		if c.config.Metrics != nil {
			c.config.Metrics.CacheHits.WithLabelValues(c.config.Name).Inc()
		}
		return body, nil
	case errors.Is(err, redis.Nil):
		if c.config.Metrics != nil {
			c.config.Metrics.CacheMisses.WithLabelValues(c.config.Name).Inc()
		}
	default:
		// Backend trouble is not the task's problem; fetch directly.
		if c.config.Metrics != nil {
			c.config.Metrics.CacheErrors.WithLabelValues(c.config.Name).Inc()
		}
		return c.next.Fetch(ctx, task)
	}

	body, err = c.next.Fetch(ctx, task)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := context.WithTimeout(ctx, c.config.RedisTimeout)
	defer cancel()
	if err := c.config.Redis.Set(storeCtx, key, body, c.config.TTL).Err(); err != nil && c.config.Metrics != nil {
		c.config.Metrics.CacheErrors.WithLabelValues(c.config.Name).Inc()
	}

	return body, nil
}
