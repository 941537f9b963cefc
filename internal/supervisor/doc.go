// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

/*
Package supervisor runs the long-lived parts of the server under suture v4.

	RootSupervisor ("cinereco")
	├── DataSupervisor ("data-layer")
	│   ├── CatalogWatcherService
	│   └── EventRouterService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are logged
through sutureslog on an slog logger backed by zerolog (see
logging.NewSlogLogger).

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(services.NewCatalogWatcherService(watchCfg, bus, logger))
	tree.AddDataService(services.NewEventRouterService(router, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout, logger))
	err = tree.Serve(ctx)
*/
package supervisor
