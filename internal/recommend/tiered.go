// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import (
	"fmt"

	"github.com/tomtom215/cinereco/internal/textutil"
)

// Tier is one popularity group of a tiered result.
type Tier struct {
	Name  string           `json:"name"`
	Items []Recommendation `json:"items"`
}

// Tiered groups a ranked list by popularity tier: the first perTier movies of
// each tier in tiers, in that order. Movies in other tiers are dropped. It is
// built on Recommend and does not change its contract; q should ask for a
// large TopN and pool so every tier can fill up.
//
//nolint:gocritic // Query is passed by value for immutable semantics
func Tiered(art *Artifacts, q Query, perTier int, tiers []string) ([]Tier, error) {
	if perTier < 1 {
		return nil, &InvalidQueryError{Field: "per_tier", Reason: fmt.Sprintf("must be positive, got %d", perTier)}
	}
	ranked, err := Recommend(art, q)
	if err != nil {
		return nil, err
	}
	return GroupByTier(ranked, perTier, tiers), nil
}

// GroupByTier groups an already ranked list. Tier names are compared folded.
func GroupByTier(ranked []Recommendation, perTier int, tiers []string) []Tier {
	out := make([]Tier, len(tiers))
	slot := make(map[string]int, len(tiers))
	for i, name := range tiers {
		out[i] = Tier{Name: name, Items: []Recommendation{}}
		slot[textutil.Fold(name)] = i
	}
	for _, r := range ranked {
		i, ok := slot[textutil.Fold(r.Popularity)]
		if !ok || len(out[i].Items) >= perTier {
			continue
		}
		out[i].Items = append(out[i].Items, r)
	}
	return out
}
