// Package redis implements a read-through source cache around another
// ports.SourceLoader, so repeated renders of the same template skip slow
// backends (filesystem on network mounts, HTTP origins).
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/wicker/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.SourceLoader by consulting Redis before the inner
// loader. The engine itself makes no caching guarantees; hosts opt in by
// wrapping their loader in this adapter.
type Cache struct {
	client *backend.Client
	inner  ports.SourceLoader
	prefix string
	ttl    time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the expiration for cached sources.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached sources.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a cache with its own Redis client.
func New(address, password string, db int, inner ports.SourceLoader, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, inner, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, inner ports.SourceLoader, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		inner:  inner,
		prefix: "wicker:source:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) key(name string) string {
	return c.prefix + name
}

// Load returns the cached source, or falls through to the inner loader and
// caches the result.
func (c *Cache) Load(ctx context.Context, name string) (string, error) {
	val, err := c.client.Get(ctx, c.key(name)).Result()
	if err == nil {
		return val, nil
	}
	if err != backend.Nil {
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}

	src, err := c.inner.Load(ctx, name)
	if err != nil {
		return "", err
	}
	// A failed cache write must not fail the render; the next Load simply
	// misses again.
	_ = c.client.Set(ctx, c.key(name), src, c.ttl).Err()
	return src, nil
}

// List delegates to the inner loader.
func (c *Cache) List(ctx context.Context) ([]string, error) {
	return c.inner.List(ctx)
}

// Invalidate drops a cached source, forcing the next Load through the inner
// loader.
func (c *Cache) Invalidate(ctx context.Context, name string) error {
	return c.client.Del(ctx, c.key(name)).Err()
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
