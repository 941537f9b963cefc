// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

// Badge keys.
const (
	BadgeHigh = "high"
	BadgeMid  = "mid"
	BadgeLow  = "low"
)

// Badge is a coarse similarity label for display.
type Badge struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// BadgeFor maps a cosine distance to a badge: up to 0.40 is high, up to 0.60
// is mid, anything farther is low.
func BadgeFor(distance float64) Badge {
	switch {
	case distance <= 0.40:
		return Badge{Key: BadgeHigh, Label: "Très similaire"}
	case distance <= 0.60:
		return Badge{Key: BadgeMid, Label: "Un peu similaire"}
	default:
		return Badge{Key: BadgeLow, Label: "Pas trop similaire"}
	}
}
