// Package cache provides an in-memory key-value store with per-entry expiry.
//
// Expired entries are evicted lazily on read; there is no background sweeper and
// no size bound.
package cache

import (
	"sync"
	"time"
)

const DefaultTTL = 300 * time.Second

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type Cache[V any] struct {
	mu         sync.Mutex
	items      map[string]entry[V]
	defaultTTL time.Duration
	now        func() time.Time
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func New[V any](defaultTTL time.Duration, opts ...Option) *Cache[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	return &Cache[V]{
		items:      make(map[string]entry[V]),
		defaultTTL: defaultTTL,
		now:        o.now,
	}
}

// Set stores value under key with the default TTL, replacing any previous entry.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Get returns the value for key if it has not expired. An expired entry is
// removed, so it is never returned again.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		return zero, false
	}

	if !c.now().Before(e.expiresAt) {
		delete(c.items, key)
		return zero, false
	}

	return e.value, true
}

// Delete removes key and reports whether it was present.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	delete(c.items, key)
	return ok
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
