// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import (
	"math"
	"testing"
)

func TestNumericRows_UnratedScalesToZero(t *testing.T) {
	cat := newTestCatalog(t)
	unrated, ok := cat.Position("m08")
	if !ok || cat.At(unrated).HasRating {
		t.Fatal("fixture m08 should be unrated")
	}

	var sum float64
	rated := 0
	for i := range cat.Len() {
		if m := cat.At(i); m.HasRating {
			sum += m.Rating
			rated++
		}
	}

	rows := numericRows(cat)
	if got, want := rows[unrated][2], sum/float64(rated); math.Abs(got-want) > 1e-9 {
		t.Errorf("unrated rating = %v, want rated mean %v", got, want)
	}

	art := newTestArtifacts(t)
	if got := art.scaler.Mean()[2]; math.Abs(got-sum/float64(rated)) > 1e-9 {
		t.Errorf("scaler rating mean = %v, want %v", got, sum/float64(rated))
	}
	x, err := art.scaler.Transform(rows[unrated : unrated+1])
	if err != nil {
		t.Fatal(err)
	}
	v := x.Rows[0]
	for k, col := range v.Indices {
		if col == 2 && math.Abs(v.Values[k]) > 1e-9 {
			t.Errorf("unrated rating z-score = %v, want 0", v.Values[k])
		}
	}
}
