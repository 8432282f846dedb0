// Package cache provides the generic caches used by plotglyph.
//
// # LRU[K, V]
//
// A mutex-guarded cache with strict least-recently-used eviction. It backs
// the per-font outline cache in package text.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// # Sharded[K, V]
//
// A set of LRU shards selected by key hash, for caches hit from many
// goroutines at once (the metrics service).
//
//	c := cache.NewSharded[string, int](256, cache.StringHasher)
//	v := c.GetOrCreate("key", func() int { return 42 })
//
// Both types are safe for concurrent use and must not be copied after
// creation.
package cache
