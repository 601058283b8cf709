package mcpserver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/flexschema/parser"
)

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *parser.ParseResult
	touchedAt time.Time
	expiresAt time.Time
}

// parseCache is a bounded LRU of parse results. Cached results are shared
// between calls, which is safe since parsed schemas are read-only.
type parseCache struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	ttl            time.Duration
	now            func() time.Time
	sweeperStarted atomic.Bool
}

func newParseCache(maxSize int, ttl time.Duration) *parseCache {
	return &parseCache{
		entries: make(map[string]*cacheEntry),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *parseCache) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	now := c.now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.touchedAt = now
	return e.result
}

// put stores a result, evicting the least recently used entry at capacity.
func (c *parseCache) put(key string, result *parser.ParseResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	entry := &cacheEntry{result: result, touchedAt: now, expiresAt: now.Add(c.ttl)}
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var (
			oldestKey  string
			oldestTime time.Time
		)
		for k, e := range c.entries {
			if oldestKey == "" || e.touchedAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.touchedAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry
}

// sweep removes all expired entries.
func (c *parseCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper removes expired entries every interval until ctx is done.
// Only the first call spawns a goroutine.
func (c *parseCache) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *parseCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
