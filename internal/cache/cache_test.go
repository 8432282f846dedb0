package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("expected capacity 100, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}

	if d := New[string, int](0); d.Capacity() != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, d.Capacity())
	}
}

func TestLRUGetSet(t *testing.T) {
	c := New[string, int](10)

	c.Set("key1", 42)
	if val, ok := c.Get("key1"); !ok || val != 42 {
		t.Errorf("Get(key1) = (%d, %v), want (42, true)", val, ok)
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("Get(key1) after overwrite = %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected missing key to be absent")
	}
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touch "a" so that "b" becomes the oldest.
	c.Get("a")
	c.Set("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %s to remain", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestLRUOnEvict(t *testing.T) {
	c := New[int, string](2)
	var evicted []int
	c.OnEvict(func(k int, _ string) { evicted = append(evicted, k) })

	c.Set(1, "one")
	c.Set(2, "two")
	c.Set(3, "three")
	c.Set(4, "four")

	if len(evicted) != 2 || evicted[0] != 1 || evicted[1] != 2 {
		t.Errorf("evicted = %v, want [1 2]", evicted)
	}
}

func TestLRUGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate = %d, want 42", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate (cached) = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Stats hits/misses = %d/%d, want 1/1", st.Hits, st.Misses)
	}
	if st.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", st.HitRate)
	}
}

func TestLRUDeleteAndClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}

	// The list must still be usable after Clear.
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) after Clear = (%d, %v)", v, ok)
	}
}

func TestLRUConcurrent(t *testing.T) {
	c := New[int, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				k := (g*500 + i) % 100
				v := c.GetOrCreate(k, func() int { return k * 2 })
				if v != k*2 {
					t.Errorf("GetOrCreate(%d) = %d", k, v)
					return
				}
			}
		}()
	}
	wg.Wait()

	if c.Len() > c.Capacity() {
		t.Errorf("Len %d exceeds capacity %d", c.Len(), c.Capacity())
	}
}

func TestShardedGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)

	for i := range 32 {
		k := strconv.Itoa(i)
		if v := c.GetOrCreate(k, func() int { return i }); v != i {
			t.Errorf("GetOrCreate(%q) = %d, want %d", k, v, i)
		}
	}

	st := c.Stats()
	if st.Misses != 32 {
		t.Errorf("Misses = %d, want 32", st.Misses)
	}
	if st.TotalCapacity != 4*ShardCount {
		t.Errorf("TotalCapacity = %d, want %d", st.TotalCapacity, 4*ShardCount)
	}
	if st.Len != c.Len() {
		t.Errorf("Stats.Len = %d, Len() = %d", st.Len, c.Len())
	}

	total := 0
	for _, n := range c.ShardLen() {
		if n > 4 {
			t.Errorf("shard holds %d entries, capacity 4", n)
		}
		total += n
	}
	if total != c.Len() {
		t.Errorf("sum of ShardLen = %d, Len = %d", total, c.Len())
	}
}

func TestShardedComparableKey(t *testing.T) {
	type key struct {
		name string
		size int
	}
	c := NewSharded[key, string](8, ComparableHasher[key]())

	c.Set(key{"a", 1}, "a1")
	c.Set(key{"a", 2}, "a2")

	if v, ok := c.Get(key{"a", 1}); !ok || v != "a1" {
		t.Errorf("Get(a,1) = (%q, %v)", v, ok)
	}
	if !c.Delete(key{"a", 2}) {
		t.Error("Delete(a,2) = false")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
}

func TestComparableHasherStable(t *testing.T) {
	h := ComparableHasher[[2]int]()
	if h([2]int{1, 2}) != h([2]int{1, 2}) {
		t.Error("equal keys hashed differently")
	}
}

func BenchmarkShardedHit(b *testing.B) {
	c := NewSharded[string, int](256, StringHasher)
	c.Set("key", 1)
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		c.Get("key")
	}
}

func BenchmarkShardedParallel(b *testing.B) {
	c := NewSharded[int, int](256, ComparableHasher[int]())
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.GetOrCreate(i%1024, func() int { return i })
			i++
		}
	})
}
