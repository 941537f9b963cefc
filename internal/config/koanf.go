// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinereco/config.yaml",
	"/etc/cinereco/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the configuration from defaults, an optional YAML file and
// the environment, then validates it.
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is Load with an explicit config file. An empty path skips the
// file layer.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"recommend.gate.animation",
	"recommend.gate.documentary",
	"recommend.gate.horror",
	"recommend.tiered.tiers",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_request_timeout":  "server.request_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog
	"catalog_path":                  "catalog.path",
	"catalog_format":                "catalog.format",
	"catalog_delimiter":             "catalog.delimiter",
	"catalog_watch_interval":        "catalog.watch_interval",
	"catalog_min_rebuild_interval":  "catalog.min_rebuild_interval",
	"poster_base_url":               "catalog.poster_base_url",
	"popularity_very_popular_votes": "catalog.popularity.very_popular",
	"popularity_popular_votes":      "catalog.popularity.popular",
	"popularity_less_popular_votes": "catalog.popularity.less_popular",

	// Recommendation weights
	"recommend_weight_genre":      "recommend.weights.genre",
	"recommend_weight_country":    "recommend.weights.country",
	"recommend_weight_summary":    "recommend.weights.summary",
	"recommend_weight_cast":       "recommend.weights.cast",
	"recommend_weight_director":   "recommend.weights.director",
	"recommend_weight_popularity": "recommend.weights.popularity",
	"recommend_weight_numeric":    "recommend.weights.numeric",

	// TF-IDF
	"recommend_ngram_min": "recommend.tfidf.ngram_min",
	"recommend_ngram_max": "recommend.tfidf.ngram_max",
	"recommend_min_df":    "recommend.tfidf.min_df",
	"recommend_max_df":    "recommend.tfidf.max_df",
	"recommend_stopwords": "recommend.tfidf.stopwords",

	// Gate
	"recommend_gate_animation":   "recommend.gate.animation",
	"recommend_gate_documentary": "recommend.gate.documentary",
	"recommend_gate_horror":      "recommend.gate.horror",

	// Limits
	"recommend_default_top_n":      "recommend.limits.default_top_n",
	"recommend_max_top_n":          "recommend.limits.max_top_n",
	"recommend_candidate_pool":     "recommend.limits.candidate_pool",
	"recommend_max_candidate_pool": "recommend.limits.max_candidate_pool",
	"recommend_year_min":           "recommend.limits.default_year_min",
	"recommend_year_max":           "recommend.limits.default_year_max",
	"recommend_default_gate":       "recommend.limits.default_gate",

	// Tiered
	"tiered_top_n":          "recommend.tiered.top_n",
	"tiered_candidate_pool": "recommend.tiered.candidate_pool",
	"tiered_per_tier":       "recommend.tiered.per_tier",
	"tiered_tiers":          "recommend.tiered.tiers",

	// Caches
	"artifact_versions": "recommend.cache.artifact_versions",
	"result_cache":      "recommend.cache.results",
	"result_cache_ttl":  "recommend.cache.result_ttl",
	"result_cache_size": "recommend.cache.max_results",
	"result_cache_path": "cache.persist_path",

	// Events
	"events_retry_count":    "events.retry_count",
	"events_retry_interval": "events.retry_initial_interval",
	"events_close_timeout":  "events.close_timeout",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc maps an environment variable to its koanf path. Unmapped
// variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
