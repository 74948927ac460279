package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cached wraps a Loader with an in-memory cache and singleflight
// deduplication: concurrent loads for the same locale hit the underlying
// source once, and a loaded catalog is served from memory afterwards.
// Failed loads are not cached.
type Cached struct {
	next    Loader
	sf      singleflight.Group
	mu      sync.RWMutex
	entries map[string]Catalog
}

// NewCached wraps next with caching.
func NewCached(next Loader) *Cached {
	return &Cached{
		next:    next,
		entries: make(map[string]Catalog),
	}
}

// Load returns the cached catalog for code, loading it on first use.
func (c *Cached) Load(ctx context.Context, code string) (Catalog, error) {
	c.mu.RLock()
	cat, ok := c.entries[code]
	c.mu.RUnlock()
	if ok {
		return cat, nil
	}

	v, err, _ := c.sf.Do(code, func() (any, error) {
		cat, err := c.next.Load(ctx, code)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[code] = cat
		c.mu.Unlock()
		return cat, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Catalog), nil
}

// Invalidate drops the cached catalog for code, forcing a reload on the
// next Load.
func (c *Cached) Invalidate(code string) {
	c.mu.Lock()
	delete(c.entries, code)
	c.mu.Unlock()
}
