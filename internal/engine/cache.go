package engine

import (
	"sync"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

// DefaultCacheSize bounds the result cache when no size is configured.
const DefaultCacheSize = 100

// resultCache memoizes full pipeline runs keyed by content hash. It is the
// only shared mutable state in the engine: a single mutex around get/insert
// is sufficient, since entries are small and construction is fast.
// Eviction is FIFO.
type resultCache struct {
	mu      sync.Mutex
	max     int
	entries map[string]*types.AnalysisResult
	order   []string
}

func newResultCache(max int) *resultCache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &resultCache{
		max:     max,
		entries: make(map[string]*types.AnalysisResult, max),
	}
}

func (c *resultCache) get(key string) (*types.AnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.entries[key]
	return result, ok
}

func (c *resultCache) put(key string, result *types.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = result
		return
	}

	c.entries[key] = result
	c.order = append(c.order, key)
	for len(c.order) > c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
