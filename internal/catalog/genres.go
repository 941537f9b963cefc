// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// genreLabels maps lowercase TMDB and IMDb genre names to French display labels.
var genreLabels = map[string]string{
	"action":          "Action",
	"adventure":       "Aventure",
	"animation":       "Animation",
	"comedy":          "Comédie",
	"crime":           "Crime",
	"documentary":     "Documentaire",
	"drama":           "Drame",
	"family":          "Famille",
	"fantasy":         "Fantaisie",
	"history":         "Histoire",
	"horror":          "Horreur",
	"music":           "Musique",
	"mystery":         "Mystère",
	"romance":         "Romance",
	"science fiction": "Science-fiction",
	"thriller":        "Thriller",
	"tv movie":        "Téléfilm",
	"war":             "Guerre",
	"western":         "Western",

	"action & adventure": "Action-Aventure",
	"kids":               "Enfants",
	"news":               "Actualités",
	"reality":            "Télé-réalité",
	"sci-fi & fantasy":   "Science-fiction & Fantaisie",
	"soap":               "Feuilleton",
	"talk":               "Talk-show",
	"war & politics":     "Guerre & Politique",

	"biography":   "Biographie",
	"sport":       "Sport",
	"sports":      "Sport",
	"musical":     "Comédie musicale",
	"short":       "Court-métrage",
	"film-noir":   "Film noir",
	"talk-show":   "Talk-show",
	"reality-tv":  "Télé-réalité",
	"game-show":   "Jeu télévisé",
	"adult":       "Adulte",
	"mini-series": "Mini-série",

	"sci-fi":          "Science-fiction",
	"sci fi":          "Science-fiction",
	"science-fiction": "Science-fiction",
	"romantic comedy": "Comédie romantique",
	"rom-com":         "Comédie romantique",
	"docu":            "Documentaire",
	"mockumentary":    "Faux documentaire",
	"superhero":       "Super-héros",
	"coming-of-age":   "Initiation",
	"martial arts":    "Arts martiaux",

	"comédie":      "Comédie",
	"drame":        "Drame",
	"documentaire": "Documentaire",
	"horreur":      "Horreur",
	"mystère":      "Mystère",
}

// TranslateGenre returns the French display label for a genre name.
// Unknown names are returned trimmed with their first letter capitalized.
func TranslateGenre(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ""
	}
	if label, ok := genreLabels[key]; ok {
		return label
	}
	r, size := utf8.DecodeRuneInString(key)
	return string(unicode.ToUpper(r)) + key[size:]
}

// TranslateGenres maps TranslateGenre over a list.
func TranslateGenres(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if l := TranslateGenre(n); l != "" {
			out = append(out, l)
		}
	}
	return out
}
