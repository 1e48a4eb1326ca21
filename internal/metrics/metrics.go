// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Recommendation outcomes per profile
// - Fallback substitutions and infeasible requests

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by detected profile and outcome",
		},
		[]string{"profile", "status"}, // status: "ok", "infeasible", "invalid", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent resolving one recommendation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		},
	)

	RecommendationTotalPrice = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_total_price",
			Help:    "Total price of successful recommendations in catalog currency",
			Buckets: prometheus.ExponentialBuckets(5000, 2, 6), // 5k .. 160k
		},
	)

	FallbackSubstitutionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fallback_substitutions_total",
			Help: "Total number of recommendations that needed relaxed fallback fills",
		},
	)

	OverBudgetTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "over_budget_results_total",
			Help: "Total number of results flagged as exceeding the requested budget",
		},
	)
)

// RecordAPIRequest records an API request with its duration.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome of one recommendation call.
func RecordRecommendation(profile, status string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(profile, status).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordResult records result-level observations for a successful
// recommendation.
func RecordResult(totalPrice float64, exceedsBudget, usedFallback bool) {
	RecommendationTotalPrice.Observe(totalPrice)
	if exceedsBudget {
		OverBudgetTotal.Inc()
	}
	if usedFallback {
		FallbackSubstitutionsTotal.Inc()
	}
}
