// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package advisor

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidateRejections(t *testing.T) {
	cases := map[string]func(*Config){
		"slack below one":         func(c *Config) { c.BudgetSlack = 0.9 },
		"negative top sample":     func(c *Config) { c.TopSample = -1 },
		"zero refresh floor":      func(c *Config) { c.GamerMinRefreshHz = 0 },
		"zero high refresh":       func(c *Config) { c.GamerHighRefreshHz = 0 },
		"zero refresh budget":     func(c *Config) { c.HighRefreshBudget = 0 },
		"zero target fraction":    func(c *Config) { c.MonitorTargetFraction = 0 },
		"target above one":        func(c *Config) { c.MonitorTargetFraction = 1.1 },
		"ceiling below target":    func(c *Config) { c.MonitorCeilingFraction = 0.05 },
		"ceiling above one":       func(c *Config) { c.MonitorCeilingFraction = 1.2 },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Seed = 99
	clone.BudgetSlack = 2

	if cfg.Seed != 0 || cfg.BudgetSlack != 1.15 {
		t.Error("mutating the clone changed the original")
	}
}
