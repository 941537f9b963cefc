// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package features turns per-movie attributes into one weighted sparse vector
// space.
//
// Extractors are fit once over the whole catalog and frozen:
//   - TFIDF for free text (summary, cast, directors)
//   - Binarizer for multi-valued categories (genre, country, popularity tier)
//   - Scaler for numeric columns (duration, release year, rating)
//
// The Assembler L2-normalizes each block per row, multiplies it by the block
// weight, concatenates the blocks and L2-normalizes the result. After that the
// dot product of two rows is their cosine similarity.
//
// All types are immutable after fitting and safe for concurrent reads.
package features
