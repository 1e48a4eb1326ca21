// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

// Package api exposes the recommendation engine over HTTP. The recommend
// endpoint speaks the flat wire contract consumed by the desktop client:
// a bare result object on success, a bare error object on failure. No
// failure is allowed to propagate past this boundary as anything but that
// shape.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/lromero-dev/rigforge/internal/logging"
)

// errorBody is the wire shape of every failure response.
type errorBody struct {
	// Error is the human-readable failure description.
	Error string `json:"error"`

	// Profile echoes the requested profile when relevant.
	Profile string `json:"profile,omitempty"`

	// BudgetInput echoes the requested budget when it was readable.
	BudgetInput *float64 `json:"budget_input,omitempty"`

	// MinimumRequired carries the cheapest complete build cost on
	// infeasible-budget rejections, so clients can suggest raising the
	// budget.
	MinimumRequired *float64 `json:"minimum_required,omitempty"`

	// Debug carries diagnostic detail for internal failures.
	Debug map[string]interface{} `json:"debug,omitempty"`
}

// respondJSON writes a JSON response with proper headers. Encoding failures
// are logged; the status line is already on the wire by then.
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// respondError writes a failure in the flat error shape.
func respondError(w http.ResponseWriter, statusCode int, body errorBody) {
	respondJSON(w, statusCode, body)
}

func floatPtr(v float64) *float64 {
	return &v
}
