// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package advisor

import "fmt"

// Config holds the tunable parameters of the selection engine. The defaults
// reproduce the reference behavior; all selection is deterministic unless a
// non-zero Seed is supplied.
type Config struct {
	// Seed seeds the tie-break randomness source. Zero disables randomness
	// entirely: ties break toward lowest price, then lexical name.
	Seed int64 `koanf:"seed"`

	// BudgetSlack is the multiplier applied to the nominal per-slot
	// allocation to form the soft price ceiling. 1.15 allows 15% overshoot.
	BudgetSlack float64 `koanf:"budget_slack"`

	// TopSample, when greater than 1 and a Seed is set, picks uniformly at
	// random among the top-N qualifying candidates instead of the single
	// best. Zero keeps the strict best choice.
	TopSample int `koanf:"top_sample"`

	// GamerMinRefreshHz is the refresh-rate floor for gamer monitors.
	GamerMinRefreshHz int `koanf:"gamer_min_refresh_hz"`

	// GamerHighRefreshHz replaces the floor once the budget reaches
	// HighRefreshBudget.
	GamerHighRefreshHz int `koanf:"gamer_high_refresh_hz"`

	// HighRefreshBudget is the budget at which gamer builds switch to the
	// higher refresh-rate floor.
	HighRefreshBudget float64 `koanf:"high_refresh_budget"`

	// MonitorTargetFraction is the fraction of the budget a general-purpose
	// monitor price should be closest to.
	MonitorTargetFraction float64 `koanf:"monitor_target_fraction"`

	// MonitorCeilingFraction caps general-purpose monitor candidates at this
	// fraction of the budget.
	MonitorCeilingFraction float64 `koanf:"monitor_ceiling_fraction"`
}

// DefaultConfig returns the reference selection parameters.
func DefaultConfig() *Config {
	return &Config{
		Seed:                   0,
		BudgetSlack:            1.15,
		TopSample:              0,
		GamerMinRefreshHz:      120,
		GamerHighRefreshHz:     144,
		HighRefreshBudget:      40000,
		MonitorTargetFraction:  0.10,
		MonitorCeilingFraction: 0.20,
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.BudgetSlack < 1 {
		return fmt.Errorf("budget_slack must be >= 1, got %v", c.BudgetSlack)
	}
	if c.TopSample < 0 {
		return fmt.Errorf("top_sample must be >= 0, got %d", c.TopSample)
	}
	if c.GamerMinRefreshHz <= 0 || c.GamerHighRefreshHz <= 0 {
		return fmt.Errorf("refresh-rate floors must be positive")
	}
	if c.HighRefreshBudget <= 0 {
		return fmt.Errorf("high_refresh_budget must be positive, got %v", c.HighRefreshBudget)
	}
	if c.MonitorTargetFraction <= 0 || c.MonitorTargetFraction > 1 {
		return fmt.Errorf("monitor_target_fraction out of range: %v", c.MonitorTargetFraction)
	}
	if c.MonitorCeilingFraction < c.MonitorTargetFraction || c.MonitorCeilingFraction > 1 {
		return fmt.Errorf("monitor_ceiling_fraction out of range: %v", c.MonitorCeilingFraction)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
