package pricing

import (
	"sync"
	"time"

	"github.com/rustyeddy/fxcalc/market"
)

const DefaultCacheTTL = 30 * time.Second

// Cache holds quotes for a limited time. It is safe for concurrent use.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.RWMutex
	quotes map[market.Pair]cacheEntry
}

type cacheEntry struct {
	quote  Quote
	stored time.Time
}

// NewCache returns a cache whose entries expire after ttl. A non-positive ttl
// uses DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:    ttl,
		now:    time.Now,
		quotes: make(map[market.Pair]cacheEntry),
	}
}

// WithClock replaces the time source, for tests.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

func (c *Cache) TTL() time.Duration { return c.ttl }

// Get returns the cached quote for pair if it has not expired.
func (c *Cache) Get(pair market.Pair) (Quote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.quotes[pair]
	if !ok || c.now().Sub(e.stored) >= c.ttl {
		return Quote{}, false
	}
	return e.quote, true
}

func (c *Cache) Set(q Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes[q.Pair] = cacheEntry{quote: q, stored: c.now()}
}

// Purge drops expired entries and returns how many were removed.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	now := c.now()
	for p, e := range c.quotes {
		if now.Sub(e.stored) >= c.ttl {
			delete(c.quotes, p)
			n++
		}
	}
	return n
}

// Len counts entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.quotes)
}
