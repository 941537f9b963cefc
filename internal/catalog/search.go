// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"sort"
	"strings"

	"github.com/tomtom215/cinereco/internal/textutil"
)

// Search score components.
const (
	scoreExact     = 1e6
	scorePrefix    = 1e5
	scoreSubstring = 1e4
	scoreTokens    = 1000.0
)

// SearchHit is a ranked search result.
type SearchHit struct {
	Position int     `json:"position"`
	Score    float64 `json:"score"`
}

// Search ranks titles that contain the query, folded for case and accents.
// An exact title scores highest, then a prefix, then a substring, plus a
// share of 1000 for each query token found in the title. Ties order by votes,
// then year (both descending), then title. An empty query lists the whole
// catalog in that tie order. limit <= 0 means no limit.
func (c *Catalog) Search(query string, limit int) []SearchHit {
	q := textutil.FoldTitle(query)
	tokens := strings.Fields(q)

	hits := make([]SearchHit, 0, 64)
	for i := range c.movies {
		if q == "" {
			hits = append(hits, SearchHit{Position: i})
			continue
		}
		title := textutil.FoldTitle(c.movies[i].Title)
		if !strings.Contains(title, q) {
			continue
		}
		score := scoreSubstring
		switch {
		case title == q:
			score = scoreExact
		case strings.HasPrefix(title, q):
			score = scorePrefix
		}
		matched := 0
		for _, tok := range tokens {
			if strings.Contains(title, tok) {
				matched++
			}
		}
		score += float64(matched) * (scoreTokens / float64(len(tokens)))
		hits = append(hits, SearchHit{Position: i, Score: score})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].Score != hits[b].Score {
			return hits[a].Score > hits[b].Score
		}
		ma, mb := &c.movies[hits[a].Position], &c.movies[hits[b].Position]
		if ma.Votes != mb.Votes {
			return ma.Votes > mb.Votes
		}
		if ma.Year != mb.Year {
			return ma.Year > mb.Year
		}
		return ma.Title < mb.Title
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}
