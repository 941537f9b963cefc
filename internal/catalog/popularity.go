// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"fmt"

	"github.com/tomtom215/cinereco/internal/textutil"
)

// Popularity tiers, as written in the catalog table.
const (
	TierVeryPopular = "Très populaire"
	TierPopular     = "Populaire"
	TierLessPopular = "Peu populaire"
	TierLowProfile  = "Faible notoriété"
)

// PopularityThresholds are the vote-count boundaries between tiers.
// A movie is very popular at VeryPopular votes or more, popular above Popular,
// less popular above LessPopular, and low profile otherwise.
type PopularityThresholds struct {
	VeryPopular int `koanf:"very_popular" json:"very_popular"`
	Popular     int `koanf:"popular" json:"popular"`
	LessPopular int `koanf:"less_popular" json:"less_popular"`
}

// DefaultPopularityThresholds returns the boundaries used by the ETL job.
func DefaultPopularityThresholds() PopularityThresholds {
	return PopularityThresholds{
		VeryPopular: 50000,
		Popular:     15000,
		LessPopular: 7500,
	}
}

// Validate checks that the thresholds are strictly ordered.
func (p PopularityThresholds) Validate() error {
	if p.LessPopular < 0 {
		return fmt.Errorf("popularity.less_popular must be non-negative, got %d", p.LessPopular)
	}
	if p.Popular <= p.LessPopular {
		return fmt.Errorf("popularity.popular must be > less_popular, got %d <= %d", p.Popular, p.LessPopular)
	}
	if p.VeryPopular <= p.Popular {
		return fmt.Errorf("popularity.very_popular must be > popular, got %d <= %d", p.VeryPopular, p.Popular)
	}
	return nil
}

// PopularityFromVotes buckets a vote count into a tier.
func PopularityFromVotes(votes int, p PopularityThresholds) string {
	switch {
	case votes >= p.VeryPopular:
		return TierVeryPopular
	case votes > p.Popular:
		return TierPopular
	case votes > p.LessPopular:
		return TierLessPopular
	default:
		return TierLowProfile
	}
}

// popularityRanks is keyed by folded tier name.
var popularityRanks = map[string]int{
	"faible notoriete": 1,
	"peu populaire":    2,
	"populaire":        3,
	"tres populaire":   4,
}

// PopularityRank orders tiers from 1 (low profile) to 4 (very popular).
// Unknown tiers rank 0.
func PopularityRank(tier string) int {
	return popularityRanks[textutil.Fold(tier)]
}
