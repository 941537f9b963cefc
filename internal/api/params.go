// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/cinereco/internal/models"
	"github.com/tomtom215/cinereco/internal/recommend"
	"github.com/tomtom215/cinereco/internal/validation"
)

// paramParser collects type errors across query parameters so a request
// with several bad values reports all of them.
type paramParser struct {
	values url.Values
	errs   []validation.FieldError
}

func newParamParser(r *http.Request) *paramParser {
	return &paramParser{values: r.URL.Query()}
}

func (p *paramParser) str(name string) string {
	return strings.TrimSpace(p.values.Get(name))
}

func (p *paramParser) fail(name, raw, kind string) {
	p.errs = append(p.errs, validation.FieldError{
		Field:   name,
		Tag:     kind,
		Value:   raw,
		Message: name + " must be " + kind,
	})
}

func (p *paramParser) intVal(name string) int {
	if v := p.intPtr(name); v != nil {
		return *v
	}
	return 0
}

func (p *paramParser) intPtr(name string) *int {
	raw := p.str(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		// Accept "2015.0" the way the catalog does.
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			p.fail(name, raw, "an integer")
			return nil
		}
		v = int(f)
	}
	return &v
}

func (p *paramParser) floatPtr(name string) *float64 {
	raw := p.str(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		p.fail(name, raw, "a number")
		return nil
	}
	return &v
}

func (p *paramParser) boolPtr(name string) *bool {
	raw := p.str(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(name, raw, "a boolean")
		return nil
	}
	return &v
}

// err returns the collected type errors, or nil.
func (p *paramParser) err() *validation.RequestValidationError {
	if len(p.errs) == 0 {
		return nil
	}
	return &validation.RequestValidationError{Fields: p.errs}
}

// parseRecommendRequest reads and validates recommendation parameters.
func parseRecommendRequest(r *http.Request) (models.RecommendRequest, *validation.RequestValidationError) {
	p := newParamParser(r)
	req := models.RecommendRequest{
		ID:        p.str("id"),
		Title:     p.str("title"),
		Year:      p.intPtr("year"),
		Director:  p.str("director"),
		YearMin:   p.intPtr("year_min"),
		YearMax:   p.intPtr("year_max"),
		MinRating: p.floatPtr("min_rating"),
		TopN:      p.intVal("top_n"),
		Pool:      p.intVal("pool"),
		Gate:      p.boolPtr("gate"),
		PerTier:   p.intVal("per_tier"),
	}
	if verr := p.err(); verr != nil {
		return req, verr
	}
	return req, validation.ValidateStruct(&req)
}

// parseSearchRequest reads and validates search parameters.
func parseSearchRequest(r *http.Request) (models.SearchRequest, *validation.RequestValidationError) {
	p := newParamParser(r)
	req := models.SearchRequest{
		Query: p.values.Get("q"),
		Limit: p.intVal("limit"),
	}
	if verr := p.err(); verr != nil {
		return req, verr
	}
	return req, validation.ValidateStruct(&req)
}

// toQuery maps a validated request onto an engine query. Unset fields take
// the configured limits; a single year bound keeps the default for the other.
// A min_rating of 0 means no rating filter.
//
//nolint:gocritic // RecommendRequest is read-only here
func toQuery(req models.RecommendRequest, limits recommend.LimitsConfig) recommend.Query {
	q := recommend.Query{
		Selector: recommend.Selector{
			ID:       req.ID,
			Title:    req.Title,
			Year:     req.Year,
			Director: req.Director,
		},
		TopN:          req.TopN,
		CandidatePool: req.Pool,
		ApplyGate:     limits.DefaultGate,
	}
	if req.MinRating != nil && *req.MinRating != 0 {
		q.MinRating = req.MinRating
	}
	if req.Gate != nil {
		q.ApplyGate = *req.Gate
	}
	if req.YearMin != nil || req.YearMax != nil {
		q.YearMin, q.YearMax = limits.DefaultYearMin, limits.DefaultYearMax
		if req.YearMin != nil {
			q.YearMin = *req.YearMin
		}
		if req.YearMax != nil {
			q.YearMax = *req.YearMax
		}
	}
	return q
}
