// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package textutil provides the text primitives shared by catalog ingestion
// and feature extraction.
//
// The primary use cases are:
//   - Normalizing free-text fields (summary, cast, directors, producers)
//   - Folding text for accent and case insensitive comparison
//   - Parsing stringified list fields such as "['France', 'USA']"
//   - Tokenizing folded text for TF-IDF, with optional stopword removal
//
// Every function is pure and total: missing input maps to the empty value
// and nothing returns an error.
package textutil
