// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

/*
Package services adapts the server's long-lived components to suture.Service.

Each wrapper translates a component lifecycle into Serve(ctx) error and
implements fmt.Stringer so suture can name it in logs:

  - HTTPServerService runs an *http.Server and shuts it down on cancel.
  - CatalogWatcherService polls the catalog file and publishes
    catalog.changed events, throttled by a token bucket.
  - EventRouterService runs a fresh event router on every (re)start.

Returning an error from Serve makes suture restart the service with backoff.
Returning ctx.Err() after cancellation is a clean stop.
*/
package services
