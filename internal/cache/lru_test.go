// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestLRU_GetAdd(t *testing.T) {
	c := NewLRU[int](2, 0)
	c.Add("a", 1)
	c.Add("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v", v, ok)
	}

	// "b" is now least recently used
	c.Add("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.Add("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("updated value = %d, want 10", v)
	}

	st := c.Stats()
	if st.Evictions != 1 || st.Hits != 2 || st.Misses != 1 || st.Size != 2 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestLRU_TTL(t *testing.T) {
	c := NewLRU[string](10, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Add("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry should be present")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Error("expired entry should be gone")
	}

	c.Add("x", "1")
	c.Add("y", "2")
	now = now.Add(2 * time.Minute)
	if removed := c.CleanupExpired(); removed != 2 {
		t.Errorf("CleanupExpired() = %d, want 2", removed)
	}
}

func TestLRU_OnEvictRemoveClear(t *testing.T) {
	c := NewLRU[int](1, 0)
	var evicted []string
	c.OnEvict(func(key string, _ int) { evicted = append(evicted, key) })

	c.Add("a", 1)
	c.Add("b", 2)
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Errorf("evicted = %v", evicted)
	}

	if !c.Remove("b") || c.Remove("b") {
		t.Error("Remove should report presence once")
	}

	c.Add("z", 1)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[int](100, 0)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := GenerateKey("k", i%150)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 100 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

func TestGenerateKey(t *testing.T) {
	a := GenerateKey("reco", map[string]int{"top_n": 10})
	b := GenerateKey("reco", map[string]int{"top_n": 10})
	c := GenerateKey("reco", map[string]int{"top_n": 11})
	if a != b {
		t.Error("same params should give same key")
	}
	if a == c {
		t.Error("different params should give different keys")
	}
	if a[:5] != "reco:" {
		t.Errorf("key %q lacks namespace", a)
	}
}
