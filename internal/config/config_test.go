// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Advisor.BudgetSlack != 1.15 {
		t.Errorf("default budget slack = %v, want 1.15", cfg.Advisor.BudgetSlack)
	}
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Catalog.Path != "catalog.json" {
		t.Errorf("catalog path = %q, want catalog.json", cfg.Catalog.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_PATH", "/data/catalog.json")
	t.Setenv("ADVISOR_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Catalog.Path != "/data/catalog.json" {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
	if cfg.Advisor.Seed != 42 {
		t.Errorf("advisor seed = %d, want 42", cfg.Advisor.Seed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.API.CORSOrigins) != 2 {
		t.Fatalf("cors origins = %v, want 2 entries", cfg.API.CORSOrigins)
	}
	if cfg.API.CORSOrigins[1] != "https://b.example" {
		t.Errorf("second origin = %q", cfg.API.CORSOrigins[1])
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 3000\nadvisor:\n  top_sample: 3\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000 from file", cfg.Server.Port)
	}
	if cfg.Advisor.TopSample != 3 {
		t.Errorf("top sample = %d, want 3 from file", cfg.Advisor.TopSample)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 3000\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "4000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("port = %d, want env override 4000", cfg.Server.Port)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := map[string]func(*Config){
		"bad port":         func(c *Config) { c.Server.Port = 0 },
		"bad timeout":      func(c *Config) { c.Server.Timeout = 0 },
		"no catalog":       func(c *Config) { c.Catalog.Path = "" },
		"bad rate limit":   func(c *Config) { c.API.RateLimitReqs = 0 },
		"bad rate window":  func(c *Config) { c.API.RateLimitWindow = 0 },
		"bad log format":   func(c *Config) { c.Logging.Format = "xml" },
		"bad advisor":      func(c *Config) { c.Advisor.BudgetSlack = 0.5 },
	}
	for name, mutate := range cases {
		cfg := defaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestRateLimitDisabledSkipsChecks(t *testing.T) {
	cfg := defaultConfig()
	cfg.API.RateLimitDisabled = true
	cfg.API.RateLimitReqs = 0
	cfg.API.RateLimitWindow = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled rate limit must skip limit checks: %v", err)
	}
}

func TestEnvTransformDropsUnknown(t *testing.T) {
	if got := envTransformFunc("HOME"); got != "" {
		t.Errorf("unknown env var mapped to %q, want empty", got)
	}
	if got := envTransformFunc("HTTP_TIMEOUT"); got != "server.timeout" {
		t.Errorf("HTTP_TIMEOUT mapped to %q", got)
	}
}
