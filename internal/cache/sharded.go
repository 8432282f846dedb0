package cache

import (
	"hash/maphash"
)

// ShardCount is the number of shards in a Sharded cache.
// It is a power of two so the shard index is a mask of the hash.
const ShardCount = 16

const shardMask = ShardCount - 1

// Hasher computes the hash used to pick a shard for a key.
type Hasher[K any] func(K) uint64

var hashSeed = maphash.MakeSeed()

// StringHasher hashes string keys.
func StringHasher(s string) uint64 {
	return maphash.String(hashSeed, s)
}

// ComparableHasher returns a Hasher for any comparable key type, including
// structs of strings and integers.
func ComparableHasher[K comparable]() Hasher[K] {
	return func(k K) uint64 {
		return maphash.Comparable(hashSeed, k)
	}
}

// Sharded is an LRU cache split into ShardCount independently locked shards.
// Capacity applies per shard, so the total is about capacity*ShardCount.
type Sharded[K comparable, V any] struct {
	shards [ShardCount]*LRU[K, V]
	hasher Hasher[K]
}

// NewSharded creates a sharded cache with capacity entries per shard.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	c := &Sharded[K, V]{hasher: hasher}
	for i := range c.shards {
		c.shards[i] = New[K, V](capacity)
	}
	return c
}

func (c *Sharded[K, V]) shard(key K) *LRU[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// OnEvict registers fn on every shard. See LRU.OnEvict.
func (c *Sharded[K, V]) OnEvict(fn func(K, V)) {
	for _, s := range c.shards {
		s.OnEvict(fn)
	}
}

// Get retrieves a value and marks it as recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	return c.shard(key).Get(key)
}

// Set stores a value.
func (c *Sharded[K, V]) Set(key K, value V) {
	c.shard(key).Set(key, value)
}

// GetOrCreate returns the cached value or creates it. Only the key's shard
// is locked while create runs.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	return c.shard(key).GetOrCreate(key, create)
}

// Delete removes key. It reports whether the key was present.
func (c *Sharded[K, V]) Delete(key K) bool {
	return c.shard(key).Delete(key)
}

// Clear removes all entries from every shard.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.Clear()
	}
}

// Len returns the total number of entries.
func (c *Sharded[K, V]) Len() int {
	n := 0
	for _, s := range c.shards {
		n += s.Len()
	}
	return n
}

// ShardLen returns the number of entries in each shard.
func (c *Sharded[K, V]) ShardLen() [ShardCount]int {
	var lens [ShardCount]int
	for i, s := range c.shards {
		lens[i] = s.Len()
	}
	return lens
}

// Stats aggregates the statistics of all shards.
// Capacity reports the per-shard capacity.
func (c *Sharded[K, V]) Stats() Stats {
	var length int
	var hits, misses, evictions uint64
	for _, s := range c.shards {
		st := s.Stats()
		length += st.Len
		hits += st.Hits
		misses += st.Misses
		evictions += st.Evictions
	}
	st := newStats(length, c.shards[0].Capacity(), hits, misses, evictions)
	st.TotalCapacity = st.Capacity * ShardCount
	return st
}
