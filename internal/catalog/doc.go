// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package catalog loads the merged movie table and exposes it as an
// immutable, typed Catalog.
//
// The table is produced by an external ETL job and uses French column names
// (Titre, Résumé, Réalisateurs, ...). Ingestion maps every row onto a Movie
// once: optional columns that are absent fall back to empty or zero values,
// list columns are parsed into token slices, and the popularity tier is
// derived from the vote count when the table does not carry it. Only the ID
// column is mandatory; without it loading fails with MissingRequiredColumnError.
//
// Two sources are provided:
//   - CSVSource reads a delimited file with encoding/csv
//   - DuckDBSource reads CSV or Parquet through an embedded DuckDB connection
//
// A Catalog also answers the read-only lookups the presentation layer needs:
// ByID, title search, poster URL resolution and genre display labels.
package catalog
