// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package events carries catalog change notifications inside the process.
//
// The catalog watcher publishes a CatalogChanged message on the
// catalog.changed topic of a watermill gochannel Bus. A Router consumes it
// and runs the Reloader, which loads the catalog again and hands it to the
// recommendation engine. The engine memoizes artifacts by content hash, so a
// touched but unchanged file costs a load and a hash, not a rebuild.
//
// Router middleware, innermost first:
//
//   - Recoverer turns handler panics into errors
//   - Retry re-runs failed reloads with exponential backoff
//   - a final stage logs and acknowledges what still fails
//
// A dropped reload leaves the engine serving the previous artifacts.
package events
