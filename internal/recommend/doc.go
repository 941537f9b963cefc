// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package recommend turns a catalog into content-based movie recommendations.
//
// # Overview
//
// Build time and query time are kept apart:
//
//	catalog -> BuildArtifacts -> *Artifacts (vectorizers, matrix, index)
//	query   -> Resolve -> neighbors -> gate -> year/rating filters -> top N
//
// Artifacts are immutable once built. Every query takes them explicitly, so
// several catalog versions can be served side by side and tests can build
// small synthetic catalogs without any global state.
//
// # Feature space
//
// Each movie becomes one sparse row made of seven blocks: genre, country,
// summary TF-IDF, cast TF-IDF, director TF-IDF, popularity tier and scaled
// numerics (duration, year, rating). Blocks are normalized separately,
// weighted, concatenated and normalized again, so a dot product between two
// rows is their cosine similarity.
//
// # Gating
//
// Animation, documentary and horror are gated: when enabled, a candidate is
// kept only if it agrees with the reference on all three flags. The gate is a
// hard filter applied after distances are computed.
//
// # Resolution errors
//
// Resolve returns *NotFoundError, *AmbiguousError or *NoMatchAfterFiltersError.
// Ambiguity and filter misses carry the candidate list so a caller can offer
// a choice without querying again. An empty recommendation list is not an
// error.
//
// # Usage
//
//	art, err := recommend.BuildArtifacts(ctx, cat, recommend.DefaultBuildOptions())
//	if err != nil {
//	    return err
//	}
//	recs, err := recommend.Recommend(art, recommend.Query{
//	    Selector:      recommend.Selector{Title: "Nova", Year: ptr(2001)},
//	    YearMin:       1950,
//	    YearMax:       2025,
//	    TopN:          20,
//	    CandidatePool: 1200,
//	    ApplyGate:     true,
//	})
//
// Engine wraps these functions with artifact memoization keyed by catalog
// content hash, result caching, metrics and logging.
package recommend
