// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/lromero-dev/rigforge/internal/advisor"
	"github.com/lromero-dev/rigforge/internal/catalog"
	"github.com/lromero-dev/rigforge/internal/logging"
	"github.com/lromero-dev/rigforge/internal/metrics"
)

// Handler carries the API endpoint dependencies.
type Handler struct {
	advisor *advisor.Advisor
	cat     *catalog.Catalog
	logger  zerolog.Logger
	started time.Time
}

// NewHandler creates the API handler set.
func NewHandler(adv *advisor.Advisor, cat *catalog.Catalog) *Handler {
	return &Handler{
		advisor: adv,
		cat:     cat,
		logger:  logging.WithComponent("api"),
		started: time.Now(),
	}
}

// Recommend handles POST /api/v1/recommend. Success returns the flat
// recommendation result; every failure is normalized into the flat error
// shape with an appropriate status code.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := decodeRecommendRequest(r)
	if err != nil {
		metrics.RecordRecommendation("none", "invalid", time.Since(start))
		respondError(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	result, err := h.advisor.Recommend(r.Context(), advisor.Request{
		Profile: req.Profile,
		Budget:  req.Budget,
	})
	if err != nil {
		h.recommendError(w, r, req, err, start)
		return
	}

	metrics.RecordRecommendation(result.Profile, "ok", time.Since(start))
	metrics.RecordResult(result.TotalPriceEstimate, result.ExceedsBudget, result.Note != "")

	logging.Ctx(r.Context()).Info().
		Str("profile", result.Profile).
		Float64("budget", req.Budget).
		Float64("total", result.TotalPriceEstimate).
		Bool("exceeds_budget", result.ExceedsBudget).
		Msg("recommendation served")

	respondJSON(w, http.StatusOK, result)
}

// recommendError maps advisor failures onto the error taxonomy: invalid
// input 400, infeasible budget 422, everything else 500.
func (h *Handler) recommendError(w http.ResponseWriter, r *http.Request, req *RecommendRequest, err error, start time.Time) {
	var infeasible *advisor.InfeasibleError
	var unresolved *advisor.UnresolvedSlotsError

	switch {
	case errors.Is(err, advisor.ErrInvalidBudget):
		metrics.RecordRecommendation("none", "invalid", time.Since(start))
		respondError(w, http.StatusBadRequest, errorBody{
			Error:       err.Error(),
			BudgetInput: floatPtr(req.Budget),
		})

	case errors.Is(err, advisor.ErrUnknownProfile):
		metrics.RecordRecommendation("none", "invalid", time.Since(start))
		respondError(w, http.StatusBadRequest, errorBody{
			Error:   err.Error(),
			Profile: req.Profile,
		})

	case errors.As(err, &infeasible):
		metrics.RecordRecommendation("none", "infeasible", time.Since(start))
		respondError(w, http.StatusUnprocessableEntity, errorBody{
			Error:           err.Error(),
			Profile:         req.Profile,
			BudgetInput:     floatPtr(infeasible.Budget),
			MinimumRequired: floatPtr(infeasible.MinimumRequired),
		})

	case errors.As(err, &unresolved):
		metrics.RecordRecommendation("none", "error", time.Since(start))
		logging.Ctx(r.Context()).Error().Err(err).Msg("unresolved slots")
		respondError(w, http.StatusInternalServerError, errorBody{
			Error: err.Error(),
			Debug: map[string]interface{}{"unresolved_slots": unresolved.Slots},
		})

	default:
		metrics.RecordRecommendation("none", "error", time.Since(start))
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
		respondError(w, http.StatusInternalServerError, errorBody{
			Error: "internal error during selection",
			Debug: map[string]interface{}{"detail": err.Error()},
		})
	}
}

// Health handles GET /health: a liveness probe with process uptime.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}

// Profiles handles GET /api/v1/catalog/profiles: the known usage profiles
// with their requirements and budget allocations.
func (h *Handler) Profiles(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"profiles":               h.cat.Profiles,
		"allocation_percentages": h.cat.RulesMeta.AllocationPercentages,
	})
}

// Components handles GET /api/v1/catalog/components. An optional
// ?category= query restricts the response to one category.
func (h *Handler) Components(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		respondJSON(w, http.StatusOK, h.cat.Components)
		return
	}

	list := h.cat.Components.Category(category)
	if list == nil {
		respondError(w, http.StatusNotFound, errorBody{Error: "unknown category: " + category})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{category: list})
}

// MinimumBudget handles GET /api/v1/catalog/minimum-budget: the cheapest
// complete build cost, the floor below which recommendations are rejected.
func (h *Handler) MinimumBudget(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]float64{
		"minimum_required": h.advisor.MinimumBudget(),
	})
}
