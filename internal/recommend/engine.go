// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinereco/internal/cache"
	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/metrics"
)

// ErrNotReady is returned when no catalog has been loaded yet.
var ErrNotReady = errors.New("recommendation artifacts not built yet")

// Engine serves recommendations from the current artifact bundle.
// It memoizes bundles by catalog content hash and caches results.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	// Built bundles keyed by content hash, and the one currently served
	artifacts *cache.LRU[*Artifacts]
	current   atomic.Pointer[Artifacts]
	buildMu   sync.Mutex

	// Result caches; results is nil when result caching is off
	results *cache.LRU[[]Recommendation]
	store   *cache.ResultStore

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
	buildCount   atomic.Int64
}

// Response is the result of Engine.Recommend.
type Response struct {
	Reference   Recommendation   `json:"reference"`
	Items       []Recommendation `json:"items"`
	CatalogHash string           `json:"catalog_hash"`
	Cached      bool             `json:"cached"`
	Took        time.Duration    `json:"took"`

	// Artifacts is the bundle the rows index into.
	Artifacts *Artifacts `json:"-"`
}

// TieredResponse is the result of Engine.Tiered.
type TieredResponse struct {
	Reference   Recommendation `json:"reference"`
	Tiers       []Tier         `json:"tiers"`
	CatalogHash string         `json:"catalog_hash"`
	Cached      bool           `json:"cached"`
	Took        time.Duration  `json:"took"`
	Artifacts   *Artifacts     `json:"-"`
}

// EngineStats are counters since the engine started.
type EngineStats struct {
	Requests    int64 `json:"requests"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	Errors      int64 `json:"errors"`
	Builds      int64 `json:"builds"`
	Versions    int   `json:"versions"`
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "recommend").Logger(),
		artifacts: cache.NewLRU[*Artifacts](cfg.Cache.ArtifactVersions, 0),
	}
	if cfg.Cache.Results {
		e.results = cache.NewLRU[[]Recommendation](cfg.Cache.MaxResults, cfg.Cache.ResultTTL)
	}
	e.artifacts.OnEvict(func(hash string, _ *Artifacts) {
		e.logger.Info().Str("catalog_hash", shortHash(hash)).Msg("evicted artifact version")
		if e.store != nil {
			if err := e.store.DropCatalog(hash); err != nil {
				e.logger.Warn().Err(err).Msg("failed to drop persisted results")
			}
		}
	})
	return e, nil
}

// SetResultStore attaches a persistent result store. Call before serving.
func (e *Engine) SetResultStore(s *cache.ResultStore) {
	e.store = s
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Load makes cat the served catalog. Artifacts are reused when a catalog with
// the same content hash was built before; otherwise they are built now.
// The returned bool reports whether memoized artifacts were used.
func (e *Engine) Load(ctx context.Context, cat *catalog.Catalog) (*Artifacts, bool, error) {
	if cat == nil {
		return nil, false, catalog.ErrEmptyCatalog
	}
	hash := cat.ContentHash()
	if art, ok := e.artifacts.Get(hash); ok {
		e.current.Store(art)
		metrics.ArtifactCacheHits.Inc()
		return art, true, nil
	}

	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	// Another caller may have built it while we waited
	if art, ok := e.artifacts.Get(hash); ok {
		e.current.Store(art)
		metrics.ArtifactCacheHits.Inc()
		return art, true, nil
	}

	e.logger.Info().
		Int("movies", cat.Len()).
		Str("catalog_hash", shortHash(hash)).
		Msg("building recommendation artifacts")

	art, err := BuildArtifacts(ctx, cat, e.config.BuildOptions())
	if err != nil {
		metrics.ArtifactBuilds.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("build artifacts: %w", err)
	}
	e.buildCount.Add(1)

	st := art.Status()
	metrics.ArtifactBuilds.WithLabelValues("success").Inc()
	metrics.ArtifactBuildDuration.Observe(st.BuildDuration.Seconds())
	metrics.CatalogMovies.Set(float64(st.Movies))
	metrics.FeatureColumns.Set(float64(st.Columns))

	e.artifacts.Add(hash, art)
	e.current.Store(art)

	e.logger.Info().
		Int("movies", st.Movies).
		Int("columns", st.Columns).
		Int("summary_terms", st.Vocabulary["summary"]).
		Int("cast_terms", st.Vocabulary["cast"]).
		Int("director_terms", st.Vocabulary["director"]).
		Dur("duration", st.BuildDuration).
		Str("catalog_hash", shortHash(hash)).
		Msg("recommendation artifacts ready")
	return art, false, nil
}

// Artifacts returns the bundle currently served, or nil before the first Load.
func (e *Engine) Artifacts() *Artifacts {
	return e.current.Load()
}

// Ready reports whether a bundle is being served.
func (e *Engine) Ready() bool {
	return e.current.Load() != nil
}

// ApplyDefaults fills unset query fields from the configured limits.
// Zero values mean unset.
func (e *Engine) ApplyDefaults(q *Query) {
	l := e.config.Limits
	if q.TopN == 0 {
		q.TopN = l.DefaultTopN
	}
	if q.CandidatePool == 0 {
		q.CandidatePool = l.CandidatePool
	}
	if q.YearMin == 0 && q.YearMax == 0 {
		q.YearMin, q.YearMax = l.DefaultYearMin, l.DefaultYearMax
	}
}

// checkLimits rejects queries above the configured bounds.
//
//nolint:gocritic // Query is passed by value for immutable semantics
func (e *Engine) checkLimits(q Query) error {
	if q.TopN > e.config.Limits.MaxTopN {
		return &InvalidQueryError{Field: "top_n", Reason: fmt.Sprintf("must be <= %d, got %d", e.config.Limits.MaxTopN, q.TopN)}
	}
	if q.CandidatePool > e.config.Limits.MaxCandidatePool {
		return &InvalidQueryError{Field: "candidate_pool", Reason: fmt.Sprintf("must be <= %d, got %d", e.config.Limits.MaxCandidatePool, q.CandidatePool)}
	}
	return nil
}

// Recommend resolves the reference and ranks similar movies against the
// current bundle. Resolution errors are returned unchanged so callers can
// use errors.As on them.
//
//nolint:gocritic // Query is passed by value for immutable semantics
func (e *Engine) Recommend(ctx context.Context, q Query) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	art, ref, err := e.prepare(ctx, q)
	if err != nil {
		e.recordError("recommend", err)
		return nil, err
	}
	q.Position = &ref

	items, cached, err := e.ranked(ctx, art, q)
	if err != nil {
		e.recordError("recommend", err)
		return nil, err
	}

	took := time.Since(start)
	metrics.RecommendDuration.WithLabelValues("recommend").Observe(took.Seconds())
	metrics.RecommendResults.Observe(float64(len(items)))
	e.logger.Debug().
		Str("reference", art.catalog.At(ref).ID).
		Int("results", len(items)).
		Bool("cached", cached).
		Dur("took", took).
		Msg("recommendations served")

	return &Response{
		Reference:   referenceRow(art, ref),
		Items:       items,
		CatalogHash: art.Hash(),
		Cached:      cached,
		Took:        took,
		Artifacts:   art,
	}, nil
}

// Tiered is Recommend grouped into popularity tiers. Unset TopN and
// CandidatePool default to the tiered configuration; perTier <= 0 uses the
// configured per-tier count.
//
//nolint:gocritic // Query is passed by value for immutable semantics
func (e *Engine) Tiered(ctx context.Context, q Query, perTier int) (*TieredResponse, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if q.TopN == 0 {
		q.TopN = e.config.Tiered.TopN
	}
	if q.CandidatePool == 0 {
		q.CandidatePool = e.config.Tiered.CandidatePool
	}
	if perTier <= 0 {
		perTier = e.config.Tiered.PerTier
	}

	art, ref, err := e.prepare(ctx, q)
	if err != nil {
		e.recordError("tiered", err)
		return nil, err
	}
	q.Position = &ref

	items, cached, err := e.ranked(ctx, art, q)
	if err != nil {
		e.recordError("tiered", err)
		return nil, err
	}

	took := time.Since(start)
	metrics.RecommendDuration.WithLabelValues("tiered").Observe(took.Seconds())
	return &TieredResponse{
		Reference:   referenceRow(art, ref),
		Tiers:       GroupByTier(items, perTier, e.config.Tiered.Tiers),
		CatalogHash: art.Hash(),
		Cached:      cached,
		Took:        took,
		Artifacts:   art,
	}, nil
}

//nolint:gocritic // Query is passed by value for immutable semantics
func (e *Engine) prepare(ctx context.Context, q Query) (*Artifacts, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, -1, err
	}
	art := e.current.Load()
	if art == nil {
		return nil, -1, ErrNotReady
	}
	e.ApplyDefaults(&q)
	if err := q.Validate(); err != nil {
		return nil, -1, err
	}
	if err := e.checkLimits(q); err != nil {
		return nil, -1, err
	}
	ref, err := resolveQuery(art, q)
	if err != nil {
		return nil, -1, err
	}
	return art, ref, nil
}

// ranked returns cached results when available, computing and storing them
// otherwise. q must carry a resolved Position.
//
//nolint:gocritic // Query is passed by value for immutable semantics
func (e *Engine) ranked(ctx context.Context, art *Artifacts, q Query) ([]Recommendation, bool, error) {
	e.ApplyDefaults(&q)
	key := cache.GenerateKey("recommend", struct {
		Position      int      `json:"position"`
		YearMin       int      `json:"year_min"`
		YearMax       int      `json:"year_max"`
		MinRating     *float64 `json:"min_rating"`
		TopN          int      `json:"top_n"`
		CandidatePool int      `json:"candidate_pool"`
		ApplyGate     bool     `json:"apply_gate"`
	}{*q.Position, q.YearMin, q.YearMax, q.MinRating, q.TopN, q.CandidatePool, q.ApplyGate})
	scoped := art.Hash() + "/" + key

	if e.results != nil {
		if items, ok := e.results.Get(scoped); ok {
			e.hit("memory")
			return items, true, nil
		}
	}
	if e.store != nil {
		var items []Recommendation
		found, err := e.store.Get(ctx, cache.StoreKey(art.Hash(), key), &items)
		if err != nil {
			e.logger.Warn().Err(err).Msg("persistent result cache read failed")
		} else if found {
			e.hit("persistent")
			if e.results != nil {
				e.results.Add(scoped, items)
			}
			return items, true, nil
		}
	}
	e.cacheMisses.Add(1)
	metrics.ResultCacheMisses.Inc()

	items, err := rank(art, *q.Position, q)
	if err != nil {
		return nil, false, err
	}
	if e.results != nil {
		e.results.Add(scoped, items)
	}
	if e.store != nil {
		if err := e.store.Put(ctx, cache.StoreKey(art.Hash(), key), items, e.config.Cache.ResultTTL); err != nil {
			e.logger.Warn().Err(err).Msg("persistent result cache write failed")
		}
	}
	return items, false, nil
}

func (e *Engine) hit(tier string) {
	e.cacheHits.Add(1)
	metrics.ResultCacheHits.WithLabelValues(tier).Inc()
}

func (e *Engine) recordError(endpoint string, err error) {
	kind := ErrorKind(err)
	metrics.RecommendErrors.WithLabelValues(endpoint, kind).Inc()
	if kind == "internal" {
		e.errorCount.Add(1)
		e.logger.Error().Err(err).Str("endpoint", endpoint).Msg("recommendation failed")
	}
}

// ErrorKind classifies an engine error for metrics and API error codes.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAmbiguous):
		return "ambiguous"
	case errors.Is(err, ErrNoMatchAfterFilters):
		return "no_match_after_filters"
	case errors.Is(err, ErrInvalidQuery):
		return "invalid_query"
	case errors.Is(err, ErrNotReady):
		return "not_ready"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}

// Stats returns engine counters.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Errors:      e.errorCount.Load(),
		Builds:      e.buildCount.Load(),
		Versions:    e.artifacts.Len(),
	}
}

func referenceRow(art *Artifacts, pos int) Recommendation {
	m := art.catalog.At(pos)
	return Recommendation{
		ID:               m.ID,
		Title:            m.Title,
		Year:             m.Year,
		Directors:        m.Directors,
		Rating:           m.Rating,
		HasRating:        m.HasRating,
		Votes:            m.Votes,
		Duration:         m.Duration,
		Genres:           m.Genres,
		Countries:        m.Countries,
		Popularity:       m.Popularity,
		SimilarityCosine: 1,
		Position:         pos,
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
