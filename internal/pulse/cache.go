package pulse

import (
	"sync"
	"time"

	"market-pulse/internal/types"
)

// verdictCache stores pulse verdicts per uppercase ticker, bounded both
// by entry count (oldest insertion evicted first) and by TTL.
type verdictCache struct {
	mu       sync.RWMutex
	data     map[string]*cacheEntry
	order    []string // insertion order, oldest first
	capacity int
	ttl      time.Duration
}

type cacheEntry struct {
	verdict   types.PulseVerdict
	timestamp time.Time
}

// newVerdictCache creates a cache and starts its cleanup goroutine.
func newVerdictCache(capacity int, ttl time.Duration) *verdictCache {
	cache := &verdictCache{
		data:     make(map[string]*cacheEntry),
		capacity: capacity,
		ttl:      ttl,
	}

	go cache.cleanupLoop()

	return cache
}

// get retrieves a cached verdict if present and not expired.
func (c *verdictCache) get(ticker string) (types.PulseVerdict, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.data[ticker]
	if !exists {
		return types.PulseVerdict{}, false
	}
	if time.Since(entry.timestamp) > c.ttl {
		return types.PulseVerdict{}, false
	}
	return entry.verdict, true
}

// set stores a verdict, evicting the oldest entry when capacity is exceeded.
func (c *verdictCache) set(ticker string, verdict types.PulseVerdict) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[ticker]; exists {
		c.removeFromOrder(ticker)
	} else if len(c.data) >= c.capacity {
		c.evictOldest()
	}

	c.data[ticker] = &cacheEntry{
		verdict:   verdict,
		timestamp: time.Now(),
	}
	c.order = append(c.order, ticker)
}

// evictOldest removes the oldest live insertion. Callers hold the lock.
func (c *verdictCache) evictOldest() {
	for len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		if _, exists := c.data[oldest]; exists {
			delete(c.data, oldest)
			return
		}
	}
}

// removeFromOrder drops a ticker's slot in the insertion order. Callers
// hold the lock.
func (c *verdictCache) removeFromOrder(ticker string) {
	for i, t := range c.order {
		if t == ticker {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// len returns the number of stored entries, expired or not.
func (c *verdictCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// cleanupLoop periodically removes expired entries.
func (c *verdictCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

// cleanup removes expired entries.
func (c *verdictCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for ticker, entry := range c.data {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.data, ticker)
			c.removeFromOrder(ticker)
		}
	}
}
