package mcpserver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/flexschema/parser"
)

// fakeClock is a manually advanced time source.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(maxSize int, ttl time.Duration) (*parseCache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := newParseCache(maxSize, ttl)
	c.now = clock.now
	return c, clock
}

func TestParseCache_GetPut(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)
	r := &parser.ParseResult{SourcePath: "a"}

	assert.Nil(t, c.get("a"))
	c.put("a", r)
	assert.Same(t, r, c.get("a"))
	assert.Equal(t, 1, c.size())

	replacement := &parser.ParseResult{SourcePath: "a2"}
	c.put("a", replacement)
	assert.Same(t, replacement, c.get("a"))
	assert.Equal(t, 1, c.size())
}

func TestParseCache_LRUEviction(t *testing.T) {
	c, clock := newTestCache(2, time.Hour)
	c.put("a", &parser.ParseResult{})
	clock.advance(time.Second)
	c.put("b", &parser.ParseResult{})
	clock.advance(time.Second)

	// touching a makes b the least recently used
	assert.NotNil(t, c.get("a"))
	clock.advance(time.Second)
	c.put("c", &parser.ParseResult{})

	assert.Equal(t, 2, c.size())
	assert.NotNil(t, c.get("a"))
	assert.Nil(t, c.get("b"))
	assert.NotNil(t, c.get("c"))
}

func TestParseCache_Expiry(t *testing.T) {
	c, clock := newTestCache(5, time.Minute)
	c.put("a", &parser.ParseResult{})
	clock.advance(30 * time.Second)
	c.put("b", &parser.ParseResult{})

	clock.advance(45 * time.Second)
	assert.Nil(t, c.get("a"), "expired entries are dropped on read")
	assert.Equal(t, 1, c.size())

	clock.advance(time.Minute)
	c.sweep()
	assert.Zero(t, c.size())
}

func TestParseCache_StartSweeperOnce(t *testing.T) {
	c, _ := newTestCache(1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.startSweeper(ctx, time.Hour)
	assert.True(t, c.sweeperStarted.Load())
	c.startSweeper(ctx, time.Hour)
	assert.True(t, c.sweeperStarted.Load())

	cancel()
	assert.Eventually(t, func() bool { return !c.sweeperStarted.Load() }, time.Second, 10*time.Millisecond)
}
