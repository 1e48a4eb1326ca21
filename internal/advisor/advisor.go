// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

// Package advisor implements the recommendation core: a forward-chaining
// rule set that detects a usage profile and fills the seven hardware slots
// under budget-allocation and compatibility constraints, with a relaxed
// fallback pass that guarantees a complete build for any feasible budget.
//
// All state is per-request. The catalog is shared read-only, so a single
// Advisor serves concurrent requests without locking.
package advisor

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lromero-dev/rigforge/internal/catalog"
	"github.com/lromero-dev/rigforge/internal/logging"
)

// Advisor produces hardware recommendations from an immutable catalog.
type Advisor struct {
	cat     *catalog.Catalog
	cfg     *Config
	logger  zerolog.Logger
	minBase float64
}

// New creates an Advisor over a validated catalog. A nil cfg uses defaults.
func New(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Advisor, error) {
	if cat == nil {
		return nil, fmt.Errorf("advisor requires a catalog")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid advisor config: %w", err)
	}

	return &Advisor{
		cat:     cat,
		cfg:     cfg.Clone(),
		logger:  logger,
		minBase: cat.MinimumBuildCost(),
	}, nil
}

// MinimumBudget returns the cheapest complete build cost, the feasibility
// floor every request is checked against.
func (a *Advisor) MinimumBudget() float64 {
	return a.minBase
}

// Recommend runs one recommendation. Failures are returned as typed errors
// (ErrInvalidBudget, ErrUnknownProfile, *InfeasibleError,
// *UnresolvedSlotsError); anything recovered from the selection path comes
// back as a generic wrapped error. Recommend never panics.
func (a *Advisor) Recommend(ctx context.Context, req Request) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Ctx(ctx).Error().Interface("panic", r).Msg("recommendation panicked")
			result, err = nil, fmt.Errorf("internal selection failure: %v", r)
		}
	}()

	if err := a.validateRequest(req); err != nil {
		return nil, err
	}
	if req.Budget < a.minBase {
		return nil, &InfeasibleError{Budget: req.Budget, MinimumRequired: round2(a.minBase)}
	}

	s := &selector{cfg: a.cfg, rng: a.newRNG()}
	facts := NewFacts(req.Profile, req.Budget)

	engine, err := NewEngine(a.buildRules(s), a.logger)
	if err != nil {
		return nil, fmt.Errorf("build rule set: %w", err)
	}
	if err := engine.Run(facts); err != nil {
		return nil, err
	}

	note, err := a.fallbackPass(facts, s)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("profile", facts.Profile).
		Float64("budget", req.Budget).
		Strs("rules_fired", engine.Fired()).
		Msg("recommendation resolved")

	return a.assemble(facts, note), nil
}

func (a *Advisor) validateRequest(req Request) error {
	if req.Budget <= 0 || math.IsNaN(req.Budget) || math.IsInf(req.Budget, 0) {
		return ErrInvalidBudget
	}
	name := normalizeProfile(req.Profile)
	if name != "" && name != "ninguno" && !a.cat.HasProfile(name) {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, req.Profile)
	}
	return nil
}

// newRNG returns the tie-break randomness source for one request: nil for
// the deterministic default, a freshly seeded generator otherwise so that
// identical requests stay reproducible.
func (a *Advisor) newRNG() *rand.Rand {
	if a.cfg.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(a.cfg.Seed)) //nolint:gosec // tie-breaks, not security
}

// fallbackPass fills any slot the rule set left unresolved with the
// cheapest component in its category. The motherboard and PSU substitutions
// re-resolve compatibility against the final CPU and GPU. Returns a note
// describing the substitutions, and an error only when a slot cannot be
// filled at all (empty catalog category).
func (a *Advisor) fallbackPass(facts *Facts, s *selector) (string, error) {
	substituted := append([]string(nil), facts.Relaxed...)
	var unresolved []Slot

	for _, slot := range ComponentSlots {
		if facts.Has(string(slot)) {
			continue
		}
		list := a.cat.Components.Category(categoryForSlot[slot])
		if len(list) == 0 {
			unresolved = append(unresolved, slot)
			continue
		}

		switch slot {
		case SlotMotherboard:
			if cpu, ok := facts.Component(SlotCPU); ok {
				facts.SetComponent(slot, s.chooseMobo(list, cpu))
			} else {
				facts.SetComponent(slot, cheapest(list))
			}
		case SlotPSU:
			if gpu, ok := facts.Component(SlotGPU); ok {
				facts.SetComponent(slot, choosePSU(list, gpu))
			} else {
				facts.SetComponent(slot, cheapest(list))
			}
		default:
			facts.SetComponent(slot, cheapest(list))
		}
		substituted = append(substituted, string(slot))
	}

	if len(unresolved) > 0 {
		return "", &UnresolvedSlotsError{Slots: unresolved}
	}
	if len(substituted) == 0 {
		return "", nil
	}
	a.logger.Warn().Strs("slots", substituted).Msg("fallback substitutions applied")
	return "budget constraints relaxed for: " + strings.Join(substituted, ", "), nil
}

func (a *Advisor) assemble(facts *Facts, note string) *Result {
	components := make(map[Slot]catalog.Component, len(ComponentSlots))
	var total float64
	for _, slot := range ComponentSlots {
		comp := facts.Components[slot]
		components[slot] = comp
		total += comp.Price
	}

	allocation := make(map[string]float64, 4)
	if alloc, ok := a.cat.AllocationFor(facts.Profile); ok {
		for name, frac := range alloc {
			allocation[name] = round2(facts.Budget * frac)
		}
	}

	return &Result{
		Profile:            facts.Profile,
		BudgetInput:        facts.Budget,
		Components:         components,
		TotalPriceEstimate: round2(total),
		ExceedsBudget:      total > facts.Budget,
		AllocationEstimate: allocation,
		Note:               note,
	}
}

func (a *Advisor) allocation(name string) (catalog.Allocation, error) {
	alloc, ok := a.cat.AllocationFor(name)
	if !ok {
		return nil, fmt.Errorf("profile %q has no allocation percentages", name)
	}
	return alloc, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
