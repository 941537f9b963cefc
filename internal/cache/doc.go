// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package cache provides the caches behind artifact memoization and result reuse.
//
//   - LRU: generic in-memory LRU with optional TTL, used to memoize built
//     artifacts by catalog content hash and to hold recent API results
//   - ResultStore: BadgerDB-backed persistent result cache whose keys are
//     namespaced by catalog content hash
//   - GenerateKey: compact SHA-256 keys from JSON-serializable parameters
package cache
