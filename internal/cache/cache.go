package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 256

// LRU is a thread-safe cache that evicts the least recently used entry once
// it holds capacity entries.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruEntry[K, V]
	order    lruList[K]
	capacity int
	onEvict  func(K, V)

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type lruEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates an LRU holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruEntry[K, V]),
		capacity: capacity,
	}
}

// OnEvict registers fn to be called for every entry dropped by capacity
// eviction. fn runs with the cache lock held and must not call back into
// the cache.
func (c *LRU[K, V]) OnEvict(fn func(K, V)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get retrieves a value and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.order.touch(e.node)
	c.hits.Add(1)
	return e.value, true
}

// Set stores a value, replacing any previous value for key.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.touch(e.node)
		return
	}
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs under the cache lock, so it is called at most once per
// missing key; keep it short.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.order.touch(e.node)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)

	value := create()
	c.insert(key, value)
	return value
}

// Delete removes key. It reports whether the key was present.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.remove(e.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*lruEntry[K, V])
	c.order.reset()
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	return newStats(c.Len(), c.capacity, c.hits.Load(), c.misses.Load(), c.evictions.Load())
}

// insert adds a new entry, evicting from the back first if full.
// Caller must hold c.mu.
func (c *LRU[K, V]) insert(key K, value V) {
	for c.order.len() >= c.capacity {
		oldest, ok := c.order.popBack()
		if !ok {
			break
		}
		if c.onEvict != nil {
			c.onEvict(oldest, c.entries[oldest].value)
		}
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}

	c.entries[key] = &lruEntry[K, V]{
		value: value,
		node:  c.order.pushFront(key),
	}
}
