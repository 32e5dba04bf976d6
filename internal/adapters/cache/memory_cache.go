package cache

import (
	"sync"
	"time"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

// entry holds one cached value with its absolute expiry. Entries are
// always replaced whole, never mutated in place, so concurrent readers
// observe either the old or the new value, nothing torn.
type entry struct {
	data   interface{}
	expiry time.Time
}

// MemoryCache is the process-lifetime TTL cache. Eviction is lazy: an
// expired entry is deleted on the read that discovers it. There is no
// invalidation API beyond TTL and no request coalescing - two
// concurrent misses both recompute and the last writer wins.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   port.Clock
}

func NewMemoryCache(clock port.Clock) *MemoryCache {
	if clock == nil {
		clock = RealClock{}
	}
	return &MemoryCache{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.clock.Now().After(e.expiry) {
		c.mu.Lock()
		// Re-check under the write lock: a fresh Set may have raced in.
		if current, ok := c.entries[key]; ok && c.clock.Now().After(current.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.data, true
}

func (c *MemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{
		data:   value,
		expiry: c.clock.Now().Add(ttl),
	}
	c.mu.Unlock()
}

// Len reports the number of entries including not-yet-evicted expired
// ones.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// RealClock is the wall-clock implementation of port.Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
