// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVSource reads the catalog from a delimited text file.
type CSVSource struct {
	path string
	opts LoadOptions
}

// NewCSVSource creates a CSV source for path.
func NewCSVSource(path string, opts LoadOptions) *CSVSource {
	return &CSVSource{path: path, opts: opts.withDefaults()}
}

// Path returns the file path.
func (s *CSVSource) Path() string { return s.path }

// Load opens and decodes the file.
func (s *CSVSource) Load(ctx context.Context) (*Catalog, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	movies, err := ReadCSV(ctx, f, s.path, s.opts)
	if err != nil {
		return nil, err
	}
	return New(movies)
}

// ReadCSV decodes every record of r. The first record is the header.
// name identifies the input in errors.
func ReadCSV(ctx context.Context, r io.Reader, name string, opts LoadOptions) ([]Movie, error) {
	opts = opts.withDefaults()

	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", name, err)
	}
	// ReuseRecord shares the backing array with the next Read.
	header = append([]string(nil), header...)

	dec, err := newRowDecoder(header, name, opts.Popularity)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", name, line, err)
		}
		movies = append(movies, dec.decode(rec))
	}
	return movies, nil
}
