// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import "github.com/tomtom215/cinereco/internal/textutil"

// GateFlags are the gated genre flags of one movie.
type GateFlags struct {
	Animation   bool `json:"animation"`
	Documentary bool `json:"documentary"`
	Horror      bool `json:"horror"`
}

// Matches reports whether a candidate with flags c may be recommended for a
// reference with flags f: every flag must agree.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (f GateFlags) Matches(c GateFlags) bool {
	return f == c
}

// Gate derives gate flags from folded genre tokens.
type Gate struct {
	animation   map[string]struct{}
	documentary map[string]struct{}
	horror      map[string]struct{}
}

// NewGate folds the configured aliases into lookup sets.
func NewGate(cfg GateConfig) Gate {
	return Gate{
		animation:   aliasSet(cfg.Animation),
		documentary: aliasSet(cfg.Documentary),
		horror:      aliasSet(cfg.Horror),
	}
}

func aliasSet(aliases []string) map[string]struct{} {
	set := make(map[string]struct{}, len(aliases))
	for _, a := range aliases {
		if f := textutil.Fold(a); f != "" {
			set[f] = struct{}{}
		}
	}
	return set
}

// Flags computes the flags for a movie's folded genre tokens.
//
//nolint:gocritic // Gate is small and read-only
func (g Gate) Flags(foldedGenres []string) GateFlags {
	var f GateFlags
	for _, genre := range foldedGenres {
		if _, ok := g.animation[genre]; ok {
			f.Animation = true
		}
		if _, ok := g.documentary[genre]; ok {
			f.Documentary = true
		}
		if _, ok := g.horror[genre]; ok {
			f.Horror = true
		}
	}
	return f
}
