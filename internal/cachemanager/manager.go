// Package cachemanager provides TTL caches for data that is expensive to load,
// such as asset manifests read from disk.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a keyed TTL cache.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
