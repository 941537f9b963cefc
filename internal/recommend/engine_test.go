// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinereco/internal/cache"
	"github.com/tomtom215/cinereco/internal/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestEngine_NotReady(t *testing.T) {
	e := newTestEngine(t)
	if e.Ready() {
		t.Fatal("Ready() = true before Load")
	}
	_, err := e.Recommend(context.Background(), Query{Selector: Selector{ID: "m01"}})
	if !errors.Is(err, ErrNotReady) {
		t.Errorf("Recommend() error = %v, want ErrNotReady", err)
	}
	if kind := ErrorKind(err); kind != "not_ready" {
		t.Errorf("ErrorKind() = %s", kind)
	}
}

func TestEngine_LoadMemoizesByHash(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	first, cached, err := e.Load(ctx, newTestCatalog(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cached {
		t.Error("first Load reported cached")
	}

	// Same rows, new catalog value: same hash, same bundle.
	second, cached, err := e.Load(ctx, newTestCatalog(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cached || second != first {
		t.Error("second Load did not reuse the bundle")
	}

	movies := testMovies()
	movies[0].Summary = "something else entirely"
	changed, err := catalog.New(movies)
	if err != nil {
		t.Fatal(err)
	}
	third, cached, err := e.Load(ctx, changed)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cached || third == first {
		t.Error("changed catalog reused a stale bundle")
	}
	if e.Artifacts() != third {
		t.Error("current bundle not switched")
	}
	if got := e.Stats().Builds; got != 2 {
		t.Errorf("Builds = %d, want 2", got)
	}
}

func TestEngine_LoadConcurrent(t *testing.T) {
	e := newTestEngine(t)
	cat := newTestCatalog(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := e.Load(context.Background(), cat); err != nil {
				t.Errorf("Load() error = %v", err)
			}
		}()
	}
	wg.Wait()
	if got := e.Stats().Builds; got != 1 {
		t.Errorf("Builds = %d, want 1", got)
	}
}

func TestEngine_LoadCanceled(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := e.Load(ctx, newTestCatalog(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
	if e.Ready() {
		t.Error("Ready() after a canceled build")
	}
}

func TestEngine_RecommendCaches(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	if _, _, err := e.Load(ctx, newTestCatalog(t)); err != nil {
		t.Fatal(err)
	}

	q := openQuery("m01")
	q.ApplyGate = true
	first, err := e.Recommend(ctx, q)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if first.Cached {
		t.Error("first response cached")
	}
	if first.Reference.ID != "m01" || first.Reference.DistanceCosine != 0 {
		t.Errorf("Reference = %+v", first.Reference)
	}

	second, err := e.Recommend(ctx, q)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !second.Cached {
		t.Error("second response not cached")
	}
	if !reflect.DeepEqual(first.Items, second.Items) {
		t.Error("cached items differ")
	}

	direct, _ := Recommend(e.Artifacts(), q)
	if !reflect.DeepEqual(first.Items, direct) {
		t.Error("engine result differs from Recommend")
	}

	st := e.Stats()
	if st.CacheHits != 1 || st.CacheMisses != 1 || st.Requests != 2 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestEngine_ResponseCarriesArtifacts(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	before, _, err := e.Load(ctx, newTestCatalog(t))
	if err != nil {
		t.Fatal(err)
	}

	resp, err := e.Recommend(ctx, openQuery("m01"))
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	movies := testMovies()
	movies[0].Title = "Nova Redux"
	changed, err := catalog.New(movies)
	if err != nil {
		t.Fatal(err)
	}
	after, _, err := e.Load(ctx, changed)
	if err != nil {
		t.Fatal(err)
	}

	if resp.Artifacts != before || resp.Artifacts.Hash() != resp.CatalogHash {
		t.Error("response does not carry the bundle it was ranked against")
	}
	if got := resp.Artifacts.Catalog().At(0).Title; got != "Nova" {
		t.Errorf("reference title = %q after swap, want Nova", got)
	}

	tiered, err := e.Tiered(ctx, openQuery("m01"), 0)
	if err != nil {
		t.Fatalf("Tiered() error = %v", err)
	}
	if tiered.Artifacts != after || tiered.Artifacts.Hash() != tiered.CatalogHash {
		t.Error("tiered response does not carry the current bundle")
	}
}

func TestEngine_PersistentStore(t *testing.T) {
	store, err := cache.OpenResultStore("")
	if err != nil {
		t.Fatalf("OpenResultStore() error = %v", err)
	}
	defer store.Close()

	cfg := DefaultConfig()
	cfg.Cache.Results = false
	ctx := context.Background()
	cat := newTestCatalog(t)

	e1, _ := NewEngine(cfg, zerolog.Nop())
	e1.SetResultStore(store)
	if _, _, err := e1.Load(ctx, cat); err != nil {
		t.Fatal(err)
	}
	first, err := e1.Recommend(ctx, openQuery("m05"))
	if err != nil {
		t.Fatal(err)
	}

	// A fresh engine sharing the store sees the stored result.
	e2, _ := NewEngine(cfg, zerolog.Nop())
	e2.SetResultStore(store)
	if _, _, err := e2.Load(ctx, cat); err != nil {
		t.Fatal(err)
	}
	second, err := e2.Recommend(ctx, openQuery("m05"))
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("result not served from the store")
	}
	if !reflect.DeepEqual(first.Items, second.Items) {
		t.Error("stored items differ")
	}
}

func TestEngine_Defaults(t *testing.T) {
	e := newTestEngine(t)
	if _, _, err := e.Load(context.Background(), newTestCatalog(t)); err != nil {
		t.Fatal(err)
	}

	// Default years are 1950 to 2025, so every other movie qualifies.
	resp, err := e.Recommend(context.Background(), Query{Selector: Selector{ID: "m02"}})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Items) != 9 {
		t.Errorf("items = %d, want 9", len(resp.Items))
	}

	_, err = e.Recommend(context.Background(), Query{Selector: Selector{ID: "m02"}, TopN: 5000})
	var inv *InvalidQueryError
	if !errors.As(err, &inv) || inv.Field != "top_n" {
		t.Errorf("error = %v, want top_n InvalidQueryError", err)
	}
}

func TestEngine_Tiered(t *testing.T) {
	e := newTestEngine(t)
	if _, _, err := e.Load(context.Background(), newTestCatalog(t)); err != nil {
		t.Fatal(err)
	}

	resp, err := e.Tiered(context.Background(), Query{Selector: Selector{ID: "m02"}}, 2)
	if err != nil {
		t.Fatalf("Tiered() error = %v", err)
	}
	if len(resp.Tiers) != 3 {
		t.Fatalf("tiers = %d, want 3", len(resp.Tiers))
	}
	want := []string{catalog.TierVeryPopular, catalog.TierPopular, catalog.TierLessPopular}
	for i, tier := range resp.Tiers {
		if tier.Name != want[i] {
			t.Errorf("tier %d = %s, want %s", i, tier.Name, want[i])
		}
		if len(tier.Items) > 2 {
			t.Errorf("tier %s has %d items", tier.Name, len(tier.Items))
		}
		for _, it := range tier.Items {
			if it.Popularity != tier.Name {
				t.Errorf("%s (%s) in tier %s", it.ID, it.Popularity, tier.Name)
			}
		}
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&NotFoundError{}, "not_found"},
		{&AmbiguousError{}, "ambiguous"},
		{&NoMatchAfterFiltersError{}, "no_match_after_filters"},
		{&InvalidQueryError{}, "invalid_query"},
		{ErrNotReady, "not_ready"},
		{context.DeadlineExceeded, "canceled"},
		{errors.New("boom"), "internal"},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}
