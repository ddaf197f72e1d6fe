package field

import (
	"container/list"
	"strings"
	"sync"
)

// DefaultCacheCapacity is the number of parsed paths a Cache retains when no
// explicit capacity is given.
const DefaultCacheCapacity = 25

// Cache memoizes parsing of dotted path strings into Paths, bounded to a fixed
// entry count with least-recently-used eviction.
//
// All methods are safe for concurrent use. The single mutex is held only for
// the lookup-or-insert itself; splitting is cheap and no user code runs under
// the lock.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	recency  *list.List

	hits      uint64
	misses    uint64
	evictions uint64
}

type cacheEntry struct {
	raw  string
	path Path
}

// CacheStats is a snapshot of cache effectiveness counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewCache creates a Cache bounded to the given capacity.
// A capacity of zero or less falls back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*list.Element, capacity),
		recency:  list.New(),
	}
}

// Parse returns the Path for the given dotted string, splitting on "." and
// memoizing the result. Parsing is deterministic and never fails: any string
// splits into at least one segment. Malformed segments surface later, at
// resolution time, as fields the walked types do not carry.
func (c *Cache) Parse(s string) Path {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[s]; ok {
		c.recency.MoveToFront(el)
		c.hits++
		return el.Value.(*cacheEntry).path
	}

	c.misses++
	p := newPath(strings.Split(s, "."))
	c.entries[s] = c.recency.PushFront(&cacheEntry{raw: s, path: p})

	if c.recency.Len() > c.capacity {
		oldest := c.recency.Back()
		c.recency.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).raw)
		c.evictions++
	}
	return p
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recency.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Misses: c.misses, Evictions: c.evictions}
}

// defaultCache backs the package-level Parse.
var defaultCache = NewCache(DefaultCacheCapacity)

// DefaultCache returns the cache behind the package-level Parse.
func DefaultCache() *Cache {
	return defaultCache
}

// Parse parses a dotted path string through the package default cache.
func Parse(s string) Path {
	return defaultCache.Parse(s)
}
