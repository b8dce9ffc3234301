package quote

import (
	"sync"
	"time"

	"github.com/dkellaway/vantage/internal/models"
)

// cacheEntry is a cached quote with its expiry time
type cacheEntry struct {
	quote   *models.Quote
	expires time.Time
}

// quoteCache is a TTL cache keyed by symbol. Entries expire after the TTL;
// there is no other invalidation.
type quoteCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func newQuoteCache(ttl time.Duration, now func() time.Time) *quoteCache {
	if now == nil {
		now = time.Now
	}
	return &quoteCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     now,
	}
}

// Get returns the cached quote for a symbol if it has not expired
func (c *quoteCache) Get(symbol string) (*models.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[symbol]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, symbol)
		return nil, false
	}
	return entry.quote, true
}

// Set stores a quote for a symbol
func (c *quoteCache) Set(symbol string, quote *models.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[symbol] = cacheEntry{
		quote:   quote,
		expires: c.now().Add(c.ttl),
	}
}
