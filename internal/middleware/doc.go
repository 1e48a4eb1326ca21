// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

// Package middleware provides the HTTP middleware chain: request ID
// propagation, Prometheus instrumentation and response compression. Rate
// limiting and CORS come from go-chi's httprate and cors packages and are
// wired directly in the router.
package middleware
