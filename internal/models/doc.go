// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package models defines the JSON shapes of the HTTP API.
//
// Every endpoint answers with an APIResponse envelope:
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "...", "query_time_ms": 3, "cached": true}
//	}
//
// Errors use status "error" and fill the error object:
//
//	{"status": "error", "error": {"code": "AMBIGUOUS", "message": "...", "details": {...}}}
//
// Request structs carry `query` tags naming their URL parameters and
// `validate` tags checked by the validation package.
package models
