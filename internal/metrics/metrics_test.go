// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))

	RecordAPIRequest("GET", "/api/v1/recommendations", 200, 12*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/recommendations", 200, 30*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))
	if after-before != 2 {
		t.Errorf("requests delta = %v, want 2", after-before)
	}

	// The histogram must have seen both observations.
	var m dto.Metric
	obs, err := APIRequestDuration.GetMetricWithLabelValues("GET", "/api/v1/recommendations")
	if err != nil {
		t.Fatal(err)
	}
	if err := obs.(prometheus.Metric).Write(&m); err != nil {
		t.Fatal(err)
	}
	if got := m.GetHistogram().GetSampleCount(); got < 2 {
		t.Errorf("sample count = %d, want >= 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("gauge = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("gauge = %v, want %v", got, before)
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	errsBefore := testutil.ToFloat64(CatalogLoadErrors.WithLabelValues("csv"))
	RecordCatalogLoad("csv", errors.New("missing column"))
	if got := testutil.ToFloat64(CatalogLoadErrors.WithLabelValues("csv")); got != errsBefore+1 {
		t.Errorf("errors = %v, want %v", got, errsBefore+1)
	}

	RecordCatalogLoad("csv", nil)
	if ts := testutil.ToFloat64(CatalogLastLoad); ts < float64(time.Now().Add(-time.Minute).Unix()) {
		t.Errorf("last load = %v, not recent", ts)
	}
}

func TestRecordEvent(t *testing.T) {
	tests := []struct {
		err    error
		result string
	}{
		{nil, "ok"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		c := EventsHandled.WithLabelValues("catalog.changed", tt.result)
		before := testutil.ToFloat64(c)
		RecordEvent("catalog.changed", tt.err)
		if got := testutil.ToFloat64(c); got != before+1 {
			t.Errorf("%s count = %v, want %v", tt.result, got, before+1)
		}
	}
}

func TestCollectorsLint(t *testing.T) {
	problems, err := testutil.CollectAndLint(RecommendErrors)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range problems {
		t.Errorf("%s: %s", p.Metric, p.Text)
	}
}
