// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package advisor

import (
	"github.com/lromero-dev/rigforge/internal/catalog"
)

// Slot identifies one hardware category to be filled in a build.
type Slot string

// The seven mandatory build slots.
const (
	SlotCPU         Slot = "cpu"
	SlotGPU         Slot = "gpu"
	SlotRAM         Slot = "ram"
	SlotSSD         Slot = "ssd"
	SlotMotherboard Slot = "motherboard"
	SlotPSU         Slot = "psu"
	SlotMonitor     Slot = "monitor"
)

// ComponentSlots lists the mandatory slots in fill order. The fallback pass
// walks them in this order so that the motherboard and PSU substitutions see
// the final CPU and GPU choices.
var ComponentSlots = []Slot{
	SlotCPU, SlotGPU, SlotRAM, SlotSSD, SlotMotherboard, SlotPSU, SlotMonitor,
}

// categoryForSlot maps a build slot to its catalog category name.
var categoryForSlot = map[Slot]string{
	SlotCPU:         "cpus",
	SlotGPU:         "gpus",
	SlotRAM:         "rams",
	SlotSSD:         "ssds",
	SlotMotherboard: "motherboards",
	SlotPSU:         "psus",
	SlotMonitor:     "monitors",
}

// keyProfile is the fact key produced by profile detection. It is the only
// non-slot fact in the mapping.
const keyProfile = "profile"

// Request is a single recommendation query.
type Request struct {
	// Profile is the requested usage profile. Empty or "ninguno" requests
	// budget-based auto-detection. Matching is case-insensitive.
	Profile string `json:"profile"`

	// Budget is the total budget in catalog currency. Must be positive.
	Budget float64 `json:"budget"`
}

// Result is a complete recommendation: one component per mandatory slot.
type Result struct {
	// Profile is the profile the build was selected for, after detection.
	Profile string `json:"profile"`

	// BudgetInput echoes the requested budget.
	BudgetInput float64 `json:"budget_input"`

	// Components maps each slot to its selected component.
	Components map[Slot]catalog.Component `json:"components"`

	// TotalPriceEstimate is the sum of the seven selected component prices,
	// rounded to two decimals.
	TotalPriceEstimate float64 `json:"total_price_estimate"`

	// ExceedsBudget is true when the total is above the requested budget.
	// Over-budget results are flagged, never rejected.
	ExceedsBudget bool `json:"exceeds_budget"`

	// AllocationEstimate is the nominal per-slot spend derived from the
	// profile's allocation percentages.
	AllocationEstimate map[string]float64 `json:"allocation_estimate"`

	// Note explains any relaxed fallback substitutions, when they occurred.
	Note string `json:"note,omitempty"`
}

// Facts is the per-request working memory of the rule engine: the request
// inputs plus every fact derived so far. Facts grow monotonically; a slot is
// set at most once and never overwritten.
type Facts struct {
	// RawProfile is the profile string as supplied by the caller.
	RawProfile string

	// Budget is the requested budget.
	Budget float64

	// Profile is the detected profile name. Empty until detection fires.
	Profile string

	// Components holds the slots resolved so far.
	Components map[Slot]catalog.Component

	// Relaxed records slots filled by dropping a hard filter (for example
	// the minimum-capacity requirement). Reported in the result note.
	Relaxed []string
}

// NewFacts creates the working memory for one request.
func NewFacts(rawProfile string, budget float64) *Facts {
	return &Facts{
		RawProfile: rawProfile,
		Budget:     budget,
		Components: make(map[Slot]catalog.Component, len(ComponentSlots)),
	}
}

// Has reports whether the given fact key has been resolved.
func (f *Facts) Has(key string) bool {
	if key == keyProfile {
		return f.Profile != ""
	}
	_, ok := f.Components[Slot(key)]
	return ok
}

// SetComponent records a slot choice. The first write wins; later writes for
// the same slot are ignored.
func (f *Facts) SetComponent(slot Slot, comp catalog.Component) {
	if _, ok := f.Components[slot]; ok {
		return
	}
	f.Components[slot] = comp
}

// Component returns the component resolved for a slot, if any.
func (f *Facts) Component(slot Slot) (catalog.Component, bool) {
	comp, ok := f.Components[slot]
	return comp, ok
}
