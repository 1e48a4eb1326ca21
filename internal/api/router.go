// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lromero-dev/rigforge/internal/config"
	"github.com/lromero-dev/rigforge/internal/middleware"
)

// NewRouter builds the HTTP routing tree: liveness and metrics at the root,
// the recommendation API under /api/v1 behind rate limiting.
func NewRouter(cfg *config.Config, h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)
	r.Use(chimiddleware.Timeout(cfg.Server.Timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.API.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if !cfg.API.RateLimitDisabled {
			r.Use(httprate.LimitByIP(cfg.API.RateLimitReqs, cfg.API.RateLimitWindow))
		}

		r.Post("/recommend", h.Recommend)
		r.Get("/health", h.Health)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/profiles", h.Profiles)
			r.Get("/components", h.Components)
			r.Get("/minimum-budget", h.MinimumBudget)
		})
	})

	return r
}
