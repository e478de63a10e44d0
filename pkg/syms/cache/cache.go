package cache

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

type LookupResult struct {
	Index int
	Found bool
	Hit   bool
}

// Cache memoizes name lookups of a slower finder, negative results included.
// It is safe for concurrent use.
type Cache struct {
	cache    *lru.Cache[string, LookupResult]
	findFunc func(name string) (int, bool)
	evicted  atomic.Int64
	hits     atomic.Int64
}

func New(findFunc func(name string) (int, bool), size int) (*Cache, error) {
	this := &Cache{findFunc: findFunc}
	var err error
	this.cache, err = lru.NewWithEvict[string, LookupResult](size, func(string, LookupResult) {
		this.evicted.Add(1)
	})
	if err != nil {
		return nil, fmt.Errorf("lru new (size=%d): %w", size, err)
	}
	return this, nil
}

func (c *Cache) Lookup(name string) LookupResult {
	if res, ok := c.cache.Get(name); ok {
		c.hits.Add(1)
		res.Hit = true
		return res
	}
	i, found := c.findFunc(name)
	res := LookupResult{Index: i, Found: found}
	c.cache.Add(name, res)
	return res
}

func (c *Cache) Find(name string) (int, bool) {
	res := c.Lookup(name)
	return res.Index, res.Found
}

func (c *Cache) TotalEvicted() int { return int(c.evicted.Load()) }

func (c *Cache) TotalHits() int { return int(c.hits.Load()) }
