// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"errors"
	"fmt"
)

// Column names of the merged catalog table.
const (
	ColID         = "ID"
	ColTitle      = "Titre"
	ColSummary    = "Résumé"
	ColCast       = "Casting"
	ColDirectors  = "Réalisateurs"
	ColProducers  = "Producteurs"
	ColGenre      = "Genre"
	ColCountries  = "Pays_origine"
	ColPopularity = "Popularité"
	ColDuration   = "Durée"
	ColYear       = "Année_de_sortie"
	ColRating     = "Note_moyenne"
	ColVotes      = "Nombre_votes"
	ColPosterMain = "Poster1"
	ColPosterAlt  = "Poster2"
)

// ratingColumns lists accepted rating columns in priority order.
var ratingColumns = []string{ColRating, "vote_average", "averageRating", "rating", "note", "Note"}

// ErrMissingRequiredColumn is the sentinel wrapped by MissingRequiredColumnError.
var ErrMissingRequiredColumn = errors.New("missing required column")

// ErrEmptyCatalog is returned when a source yields no usable rows.
var ErrEmptyCatalog = errors.New("catalog is empty")

// MissingRequiredColumnError reports a table without its identity column.
// It is fatal: the catalog cannot be keyed without it.
type MissingRequiredColumnError struct {
	Column string
	Source string
}

func (e *MissingRequiredColumnError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("missing required column %q", e.Column)
	}
	return fmt.Sprintf("missing required column %q in %s", e.Column, e.Source)
}

// Unwrap allows errors.Is(err, ErrMissingRequiredColumn).
func (e *MissingRequiredColumnError) Unwrap() error {
	return ErrMissingRequiredColumn
}
