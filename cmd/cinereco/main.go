// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package main is the cinereco command line client. It loads a catalog,
// builds the similarity artifacts in process and prints results as tables:
//
//	cinereco recommend "Nova" --year 2015
//	cinereco recommend --id tt0133093 --top 10 --min-rating 7
//	cinereco tiered --id tt0133093 --per-tier 5
//	cinereco search nova --limit 10
//	cinereco show tt0133093
//
// The catalog comes from the same configuration as the server (config.yaml,
// CONFIG_PATH and environment variables); --catalog and --format override it.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
