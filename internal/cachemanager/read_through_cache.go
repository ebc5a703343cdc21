package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache loads a value on a miss and caches it for ttl.
// Failed loads are not cached.
type ReadThroughCache[K comparable, V any] struct {
	cache     CacheManager[K, V]
	load      func(ctx context.Context, key K) (V, error)
	ttl       time.Duration
	skipCache bool
}

// NewReadThroughCache wraps cache with load. A non-positive ttl caches
// nothing: every Get goes straight to load.
func NewReadThroughCache[K comparable, V any](
	cache CacheManager[K, V],
	load func(ctx context.Context, key K) (V, error),
	ttl time.Duration,
) *ReadThroughCache[K, V] {
	return &ReadThroughCache[K, V]{
		cache:     cache,
		load:      load,
		ttl:       ttl,
		skipCache: ttl <= 0,
	}
}

// Get returns the cached value or loads it.
func (r *ReadThroughCache[K, V]) Get(ctx context.Context, key K) (V, error) {
	if r.skipCache {
		return r.load(ctx, key)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.load(ctx, key)
	if err != nil {
		return value, err
	}
	r.cache.Set(ctx, key, value, r.ttl)
	return value, nil
}

// Invalidate drops key so the next Get reloads it.
func (r *ReadThroughCache[K, V]) Invalidate(ctx context.Context, key K) error {
	return r.cache.Delete(ctx, key)
}
