// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Source formats accepted by Open.
const (
	FormatCSV    = "csv"
	FormatDuckDB = "duckdb"
)

// Source produces a Catalog from some backing storage.
type Source interface {
	// Load reads and decodes the whole table.
	Load(ctx context.Context) (*Catalog, error)

	// Path returns the file the source reads, for change detection.
	Path() string
}

// LoadOptions tune decoding.
type LoadOptions struct {
	// Delimiter separates CSV fields. Default: ','.
	Delimiter rune

	// Popularity derives tiers when the table has no popularity column.
	Popularity PopularityThresholds
}

// DefaultLoadOptions returns comma-delimited decoding with default thresholds.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Delimiter:  ',',
		Popularity: DefaultPopularityThresholds(),
	}
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Popularity == (PopularityThresholds{}) {
		o.Popularity = DefaultPopularityThresholds()
	}
	return o
}

// Open returns the Source for a format. An empty format selects CSV.
func Open(path, format string, opts LoadOptions) (Source, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is empty")
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatCSV:
		return NewCSVSource(path, opts), nil
	case FormatDuckDB:
		return NewDuckDBSource(path, opts), nil
	default:
		return nil, fmt.Errorf("unknown catalog format %q (want %q or %q)", format, FormatCSV, FormatDuckDB)
	}
}
