// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	// DuckDB driver - reads CSV and Parquet exports without a separate parser
	_ "github.com/duckdb/duckdb-go/v2"
)

// DuckDBSource reads the catalog through an in-memory DuckDB connection.
// Parquet files (.parquet) use read_parquet; anything else uses read_csv_auto.
// Every column is cast to VARCHAR so decoding matches the CSV path exactly.
type DuckDBSource struct {
	path string
	opts LoadOptions
}

// NewDuckDBSource creates a DuckDB-backed source for path.
func NewDuckDBSource(path string, opts LoadOptions) *DuckDBSource {
	return &DuckDBSource{path: path, opts: opts.withDefaults()}
}

// Path returns the file path.
func (s *DuckDBSource) Path() string { return s.path }

// Query returns the SQL used to scan the file.
func (s *DuckDBSource) Query() string {
	lit := quoteLiteral(s.path)
	if strings.EqualFold(filepath.Ext(s.path), ".parquet") {
		return fmt.Sprintf("SELECT COLUMNS(*)::VARCHAR FROM read_parquet(%s)", lit)
	}
	return fmt.Sprintf(
		"SELECT * FROM read_csv_auto(%s, header = true, all_varchar = true, delim = %s)",
		lit, quoteLiteral(string(s.opts.Delimiter)),
	)
}

// Load runs the scan query and decodes every row.
func (s *DuckDBSource) Load(ctx context.Context) (*Catalog, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close() //nolint:errcheck // in-memory connection

	rows, err := db.QueryContext(ctx, s.Query())
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.path, err)
	}
	defer rows.Close() //nolint:errcheck // closed after iteration

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", s.path, err)
	}
	dec, err := newRowDecoder(header, s.path, s.opts.Popularity)
	if err != nil {
		return nil, err
	}

	cells := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}
	rec := make([]string, len(header))

	var movies []Movie
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d of %s: %w", len(movies)+1, s.path, err)
		}
		for i, c := range cells {
			rec[i] = c.String
		}
		movies = append(movies, dec.decode(rec))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.path, err)
	}
	return New(movies)
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
