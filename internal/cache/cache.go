// Package cache keeps short-lived copies of public storefront reads so that
// anonymous traffic does not hit the platform on every page view.
package cache

import (
	"context"
	"log"
	"time"
)

// Cache stores JSON-encodable values under string keys.
type Cache interface {
	// Get decodes the value stored under key into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// NoopCache never stores anything.
type NoopCache struct{}

func (NoopCache) Get(_ context.Context, _ string, _ any) (bool, error) {
	return false, nil
}

func (NoopCache) Set(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}

// Remember returns the cached value for key, or calls load and caches its
// result for ttl. Cache failures are logged and never fail the read; load
// errors are returned as is and nothing is cached.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if c == nil || ttl <= 0 {
		return load(ctx)
	}

	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("cache: get %s failed: %v", key, err)
	}
	if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
	return value, nil
}
