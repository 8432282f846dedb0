package cache

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the entry limit (per shard for Sharded).
	Capacity int
	// TotalCapacity is Capacity summed over all shards.
	TotalCapacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 before the first lookup.
	HitRate float64
	// Evictions is the number of entries dropped to respect Capacity.
	Evictions uint64
}

func newStats(length, capacity int, hits, misses, evictions uint64) Stats {
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:           length,
		Capacity:      capacity,
		TotalCapacity: capacity,
		Hits:          hits,
		Misses:        misses,
		HitRate:       rate,
		Evictions:     evictions,
	}
}
