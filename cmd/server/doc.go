// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

/*
Package main is the entry point for the Cinereco HTTP server.

Cinereco ranks movies by content similarity to a reference movie. The server
loads a movie table, builds the feature vectors and neighbor index once per
distinct catalog content, and answers recommendation queries over a JSON API.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("cinereco")
	├── DataSupervisor ("data-layer")
	│   ├── Catalog watcher (polls the catalog file, publishes catalog.changed)
	│   └── Event router (catalog.changed -> reload -> artifact swap)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog, bridged to slog for suture and watermill
 3. Metrics: Prometheus collectors, served on /metrics
 4. Catalog: CSV or DuckDB source, loaded and hashed
 5. Artifacts: feature matrix and neighbor index for the catalog hash
 6. Supervisor tree: data layer, then API layer
 7. Graceful shutdown on SIGINT or SIGTERM

# Catalog Loading

A table without its ID column stops the server at startup. Any other load
error, such as a missing file, starts the server not ready: /health/ready
answers 503 until the watcher sees the file and a reload succeeds.

# Configuration

Common environment variables:

	CATALOG_PATH=/data/movies.csv
	CATALOG_FORMAT=csv             # or duckdb for Parquet and large CSV
	CATALOG_WATCH_INTERVAL=30s     # 0 disables watching
	RESULT_CACHE_PATH=/data/cache  # Badger result cache, empty disables
	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json

# Example Usage

	export CATALOG_PATH=./movies.csv
	./cinereco-server

	curl 'http://localhost:8080/api/v1/recommendations?title=Nova&year=2015'
*/
package main
