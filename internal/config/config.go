// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package config

import (
	"fmt"
	"time"

	"github.com/lromero-dev/rigforge/internal/advisor"
)

// Config is the full application configuration, assembled from defaults, an
// optional YAML file and environment variables.
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	Catalog CatalogConfig  `koanf:"catalog"`
	Advisor advisor.Config `koanf:"advisor"`
	API     APIConfig      `koanf:"api"`
	Logging LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// CatalogConfig points at the hardware knowledge base.
type CatalogConfig struct {
	// Path is the catalog JSON document. Loading it is startup-fatal when
	// it fails.
	Path string `koanf:"path"`
}

// APIConfig holds API surface settings: rate limiting and CORS.
type APIConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds the logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path must not be empty")
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitReqs < 1 {
			return fmt.Errorf("api.rate_limit_reqs must be >= 1, got %d", c.API.RateLimitReqs)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("api.rate_limit_window must be positive, got %v", c.API.RateLimitWindow)
		}
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	if err := c.Advisor.Validate(); err != nil {
		return fmt.Errorf("advisor: %w", err)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
