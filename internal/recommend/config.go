// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/recommend/features"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the relative contribution of each feature block.
	Weights features.Weights `koanf:"weights" json:"weights"`

	// TFIDF configures the summary, cast and director vectorizers.
	TFIDF features.TFIDFConfig `koanf:"tfidf" json:"tfidf"`

	// Gate lists the folded genre aliases behind each gated flag.
	Gate GateConfig `koanf:"gate" json:"gate"`

	// Limits contains request defaults and bounds.
	Limits LimitsConfig `koanf:"limits" json:"limits"`

	// Tiered configures popularity-tiered grouping.
	Tiered TieredConfig `koanf:"tiered" json:"tiered"`

	// Cache contains memoization parameters.
	Cache CacheConfig `koanf:"cache" json:"cache"`
}

// GateConfig lists the genre aliases that set each gate flag. Aliases are
// compared after folding, so "Horreur" and "horreur" are the same alias.
type GateConfig struct {
	Animation   []string `koanf:"animation" json:"animation"`
	Documentary []string `koanf:"documentary" json:"documentary"`
	Horror      []string `koanf:"horror" json:"horror"`
}

// LimitsConfig contains request defaults and bounds.
type LimitsConfig struct {
	// DefaultTopN is used when a request does not set top_n.
	// Default: 20.
	DefaultTopN int `koanf:"default_top_n" json:"default_top_n"`

	// MaxTopN is the largest accepted top_n.
	// Default: 1000.
	MaxTopN int `koanf:"max_top_n" json:"max_top_n"`

	// CandidatePool is the default number of neighbors fetched before filtering.
	// Default: 1200.
	CandidatePool int `koanf:"candidate_pool" json:"candidate_pool"`

	// MaxCandidatePool bounds the pool a request may ask for.
	// Default: 10000.
	MaxCandidatePool int `koanf:"max_candidate_pool" json:"max_candidate_pool"`

	// DefaultYearMin and DefaultYearMax bound release years when a request
	// leaves them unset. Default: 1950 and 2025.
	DefaultYearMin int `koanf:"default_year_min" json:"default_year_min"`
	DefaultYearMax int `koanf:"default_year_max" json:"default_year_max"`

	// DefaultGate is used when a request does not say whether to gate.
	// Default: true.
	DefaultGate bool `koanf:"default_gate" json:"default_gate"`
}

// TieredConfig configures popularity-tiered grouping.
type TieredConfig struct {
	// TopN is the size of the ranked list that tiers are drawn from.
	// Default: 800.
	TopN int `koanf:"top_n" json:"top_n"`

	// CandidatePool is the neighbor pool for tiered requests.
	// Default: 4000.
	CandidatePool int `koanf:"candidate_pool" json:"candidate_pool"`

	// PerTier is the number of movies kept in each tier.
	// Default: 5.
	PerTier int `koanf:"per_tier" json:"per_tier"`

	// Tiers is the output tier order. Movies in other tiers are dropped.
	Tiers []string `koanf:"tiers" json:"tiers"`
}

// CacheConfig contains memoization parameters.
type CacheConfig struct {
	// ArtifactVersions is how many built catalog versions stay memoized.
	// Default: 2.
	ArtifactVersions int `koanf:"artifact_versions" json:"artifact_versions"`

	// Results controls whether recommendation results are cached.
	// Default: true.
	Results bool `koanf:"results" json:"results"`

	// ResultTTL is the lifetime of a cached result.
	// Default: 10m.
	ResultTTL time.Duration `koanf:"result_ttl" json:"result_ttl"`

	// MaxResults is the number of results kept in memory.
	// Default: 5000.
	MaxResults int `koanf:"max_results" json:"max_results"`
}

// DefaultGateConfig returns the animation, documentary and horror aliases,
// covering the English source names and their French display labels.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		Animation:   []string{"animation"},
		Documentary: []string{"documentary", "documentaire", "docu"},
		Horror:      []string{"horror", "horreur"},
	}
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: features.DefaultWeights(),
		TFIDF:   features.DefaultTFIDFConfig(),
		Gate:    DefaultGateConfig(),
		Limits: LimitsConfig{
			DefaultTopN:      20,
			MaxTopN:          1000,
			CandidatePool:    1200,
			MaxCandidatePool: 10000,
			DefaultYearMin:   1950,
			DefaultYearMax:   2025,
			DefaultGate:      true,
		},
		Tiered: TieredConfig{
			TopN:          800,
			CandidatePool: 4000,
			PerTier:       5,
			Tiers:         []string{catalog.TierVeryPopular, catalog.TierPopular, catalog.TierLessPopular},
		},
		Cache: CacheConfig{
			ArtifactVersions: 2,
			Results:          true,
			ResultTTL:        10 * time.Minute,
			MaxResults:       5000,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := c.TFIDF.Validate(); err != nil {
		return err
	}
	if len(c.Gate.Animation)+len(c.Gate.Documentary)+len(c.Gate.Horror) == 0 {
		return fmt.Errorf("gate must list at least one alias")
	}

	if c.Limits.DefaultTopN < 1 {
		return fmt.Errorf("limits.default_top_n must be positive, got %d", c.Limits.DefaultTopN)
	}
	if c.Limits.MaxTopN < c.Limits.DefaultTopN {
		return fmt.Errorf("limits.max_top_n must be >= limits.default_top_n, got %d < %d", c.Limits.MaxTopN, c.Limits.DefaultTopN)
	}
	if c.Limits.CandidatePool < 1 {
		return fmt.Errorf("limits.candidate_pool must be positive, got %d", c.Limits.CandidatePool)
	}
	if c.Limits.MaxCandidatePool < c.Limits.CandidatePool {
		return fmt.Errorf("limits.max_candidate_pool must be >= limits.candidate_pool, got %d < %d", c.Limits.MaxCandidatePool, c.Limits.CandidatePool)
	}
	if c.Limits.DefaultYearMin > c.Limits.DefaultYearMax {
		return fmt.Errorf("limits.default_year_min must be <= default_year_max, got %d > %d", c.Limits.DefaultYearMin, c.Limits.DefaultYearMax)
	}

	if c.Tiered.TopN < 1 || c.Tiered.CandidatePool < 1 || c.Tiered.PerTier < 1 {
		return fmt.Errorf("tiered.top_n, candidate_pool and per_tier must be positive")
	}
	if c.Tiered.CandidatePool > c.Limits.MaxCandidatePool {
		return fmt.Errorf("tiered.candidate_pool must be <= limits.max_candidate_pool, got %d > %d", c.Tiered.CandidatePool, c.Limits.MaxCandidatePool)
	}
	if len(c.Tiered.Tiers) == 0 {
		return fmt.Errorf("tiered.tiers must not be empty")
	}

	if c.Cache.ArtifactVersions < 1 {
		return fmt.Errorf("cache.artifact_versions must be positive, got %d", c.Cache.ArtifactVersions)
	}
	if c.Cache.Results && c.Cache.MaxResults < 1 {
		return fmt.Errorf("cache.max_results must be positive when result caching is on, got %d", c.Cache.MaxResults)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Gate = GateConfig{
		Animation:   append([]string(nil), c.Gate.Animation...),
		Documentary: append([]string(nil), c.Gate.Documentary...),
		Horror:      append([]string(nil), c.Gate.Horror...),
	}
	out.Tiered.Tiers = append([]string(nil), c.Tiered.Tiers...)
	return &out
}

// BuildOptions returns the options BuildArtifacts needs from this config.
func (c *Config) BuildOptions() BuildOptions {
	return BuildOptions{
		Weights: c.Weights,
		TFIDF:   c.TFIDF,
		Gate:    c.Gate,
	}
}
