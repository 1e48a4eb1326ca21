// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

// Package metrics defines the Prometheus collectors for the API surface and
// the recommendation engine. Collectors are registered once via promauto at
// package initialization and exposed through /metrics.
package metrics
