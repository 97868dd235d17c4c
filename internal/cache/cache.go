// Package cache provides the in-process result cache keyed by content
// fingerprint: TTL plus size-capped, with single-flight de-duplication so
// concurrent requests for one fingerprint trigger exactly one computation.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a fingerprint-keyed store of computed values. Only successful
// computations are cached; failures pass through to the caller and leave no
// entry behind.
type Cache[V any] struct {
	ttl time.Duration
	max int
	log *slog.Logger
	now func() time.Time

	group singleflight.Group

	mu      sync.Mutex
	entries map[string]entry[V]
}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

func New[V any](ttl time.Duration, maxEntries int, log *slog.Logger) *Cache[V] {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if maxEntries <= 0 {
		maxEntries = 512
	}
	if log == nil {
		log = slog.Default()
	}
	return &Cache[V]{
		ttl:     ttl,
		max:     maxEntries,
		log:     log,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
}

// GetOrCompute returns the cached value for key, or runs compute exactly once
// per key across all concurrent callers and caches its result. The second
// return reports a cache hit.
//
// compute runs detached from any single caller's cancellation: a canceled
// caller stops waiting, but the in-flight computation finishes so the other
// callers (and the cache) still get its result.
func (c *Cache[V]) GetOrCompute(ctx context.Context, key string, compute func(ctx context.Context) (V, error)) (V, bool, error) {
	var zero V

	if v, ok := c.lookup(key); ok {
		c.log.Debug("cache.hit", "key", key)
		return v, true, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		// re-check: the entry may have landed while we queued
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := compute(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, false, res.Err
		}
		return res.Val.(V), false, nil
	}
}

// Get reports the cached value without computing anything.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.lookup(key)
}

// Remove drops one entry, if present.
func (c *Cache[V]) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len reports the number of live (possibly expired, not yet swept) entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[V]) lookup(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) store(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: v, storedAt: c.now()}
	if len(c.entries) <= c.max {
		return
	}

	// over capacity: sweep expired first, then drop oldest
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	for len(c.entries) > c.max {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.storedAt.Before(oldest) {
				oldestKey, oldest = k, e.storedAt
			}
		}
		delete(c.entries, oldestKey)
		c.log.Debug("cache.evict", "key", oldestKey)
	}
}
