// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

// Package main is the entry point for the Rigforge server.
//
// Rigforge is a rule-based PC build advisor: given a usage profile and a
// budget, it selects a complete set of compatible components (CPU, GPU,
// RAM, SSD, motherboard, PSU, monitor) from a priced catalog and returns
// the build with a cost estimate over a REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, config file, and
//     environment variables (Koanf v2)
//  2. Catalog: component inventory and allocation tables loaded from JSON
//  3. Advisor: the rule engine that resolves builds against the catalog
//  4. HTTP Server: chi router with the REST API and Prometheus metrics,
//     run under a suture supervision tree
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, CATALOG_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml, or the path in CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (bounded by the
//     supervisor's shutdown timeout)
//
// # Example Usage
//
//	export CATALOG_PATH=/etc/rigforge/catalog.json
//	export HTTP_PORT=8080
//	./rigforge
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/lromero-dev/rigforge/internal/advisor"
	"github.com/lromero-dev/rigforge/internal/api"
	"github.com/lromero-dev/rigforge/internal/catalog"
	"github.com/lromero-dev/rigforge/internal/config"
	"github.com/lromero-dev/rigforge/internal/logging"
	"github.com/lromero-dev/rigforge/internal/supervisor"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("catalog_path", cfg.Catalog.Path).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Rigforge")

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}
	logging.Info().
		Int("profiles", len(cat.Profiles)).
		Float64("minimum_build_cost", cat.MinimumBuildCost()).
		Msg("Catalog loaded")

	adv, err := advisor.New(cat, &cfg.Advisor, logging.WithComponent("advisor"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize advisor")
	}

	router := api.NewRouter(cfg, api.NewHandler(adv, cat))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	tree.AddAPIService(supervisor.NewHTTPServerService(srv, treeConfig.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", srv.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Report any services that failed to stop within the timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Rigforge stopped gracefully")
}
