// Package cache provides caching utilities for the MCP server.
package cache

import (
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zeebo/blake3"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/render"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shape"
)

// Rendered is a memoized inference result for one (input, policy, filter)
// combination.
type Rendered struct {
	Text  string
	Spans []render.Span
}

// ShapeCache provides thread-safe LRU caching of rendered shapes.
type ShapeCache struct {
	cache *lru.Cache[string, *Rendered]
}

// NewShapeCache creates an LRU cache with the specified maximum item count.
func NewShapeCache(maxItems int) (*ShapeCache, error) {
	c, err := lru.New[string, *Rendered](maxItems)
	if err != nil {
		return nil, err
	}
	return &ShapeCache{cache: c}, nil
}

// Key derives the cache key for a raw input under a policy and optional
// pre-filter expression.
func Key(raw []byte, p *shape.Policy, filter string) string {
	h := blake3.New()
	h.Write(raw)
	fmt.Fprintf(h, "|%t%t%t%t%d|%s",
		p.ShowLength, p.ShowSample, p.KeysOnly, p.Compact, p.MaxDepth, filter)
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}

// Get retrieves a rendered result by key.
func (c *ShapeCache) Get(key string) (*Rendered, bool) {
	return c.cache.Get(key)
}

// Put adds or updates a rendered result.
func (c *ShapeCache) Put(key string, r *Rendered) {
	c.cache.Add(key, r)
}

// Len returns the current number of cached results.
func (c *ShapeCache) Len() int {
	return c.cache.Len()
}
