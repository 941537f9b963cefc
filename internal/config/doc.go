// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package config loads the service configuration with koanf.
//
// Sources are layered, later ones winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
//     /etc/cinereco/config.yaml
//  3. Environment variables listed in envMappings
//
// Only mapped environment variables are read, so unrelated variables never
// leak into the configuration. Comma-separated values are split for the
// list settings (CORS origins, gate aliases, tier order).
//
// Commonly used variables:
//
//	CATALOG_PATH=/data/movies.csv
//	CATALOG_FORMAT=csv|duckdb
//	HTTP_PORT=8080
//	LOG_LEVEL=debug
//	RECOMMEND_STOPWORDS=english|french|none
//	RESULT_CACHE_PATH=/data/cache
//
// Load validates the result; an invalid configuration is an error.
package config
