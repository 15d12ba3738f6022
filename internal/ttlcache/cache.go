// Package ttlcache provides an in-process key-value store with per-key TTL
// expiry. It backs the token denylist for single-instance deployments; a
// shared external store can be substituted behind model.RevocationStore when
// multiple server processes need a consistent denylist.
package ttlcache

import (
	"context"
	"sync"
	"time"

	"github.com/taskboard/taskboard-server/internal/model"
)

var _ model.RevocationStore = (*Cache)(nil)

// Cache is a concurrency-safe map of keys to expiry deadlines. Expiry is
// lazy: stale entries are treated as absent on read and removed then.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// NewWithClock creates a cache with an injectable clock, used by tests to
// simulate TTL elapse.
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]time.Time),
		now:     now,
	}
}

// Set stores the key for the given duration. A non-positive ttl is a no-op:
// the entry would already be expired.
func (c *Cache) Set(_ context.Context, key string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	c.entries[key] = c.now().Add(ttl)
	c.mu.Unlock()
	return nil
}

// Exists reports whether the key is present and not expired.
func (c *Cache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.RLock()
	deadline, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if c.now().After(deadline) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry.
		if d, ok := c.entries[key]; ok && c.now().After(d) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return false, nil
	}
	return true, nil
}

// Len reports the number of entries currently held, including entries whose
// lazy expiry has not run yet.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
