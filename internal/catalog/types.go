// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package catalog

// Component is a single priced catalog entry. Category-specific attributes
// (socket, size, refresh rate, resolution, power, level) are zero when they
// do not apply to the category.
type Component struct {
	// Name is the commercial component name.
	Name string `json:"name"`

	// Price in the catalog currency.
	Price float64 `json:"price"`

	// PerformanceScore is a relative benchmark score used for ranking.
	PerformanceScore float64 `json:"performance_score"`

	// Socket is the CPU/motherboard socket (cpus and motherboards).
	Socket string `json:"socket,omitempty"`

	// SizeGB is the capacity in gigabytes (rams and ssds).
	SizeGB int `json:"size_gb,omitempty"`

	// Hz is the refresh rate (monitors).
	Hz int `json:"hz,omitempty"`

	// Res is the resolution class, e.g. "1080p", "1440p", "4K" (monitors).
	Res string `json:"res,omitempty"`

	// PowerW is the power draw for GPUs and the rated wattage for PSUs.
	PowerW float64 `json:"power_w,omitempty"`

	// Level classifies GPUs: "integrated", "entry", "mid", "high".
	Level string `json:"level,omitempty"`
}

// Profile describes the hardware requirements of a usage archetype.
type Profile struct {
	// GPURequired indicates the profile needs a discrete GPU.
	GPURequired bool `json:"gpu_required"`

	// MinRAMGB is the minimum acceptable RAM capacity.
	MinRAMGB int `json:"min_ram_gb"`

	// MinSSDGB is the minimum acceptable SSD capacity.
	MinSSDGB int `json:"min_ssd_gb"`
}

// Allocation maps a budget slot name (cpu, gpu, ram, ssd) to the fraction of
// the total budget nominally reserved for it. Fractions are advisory
// ceilings, not exact spend targets.
type Allocation map[string]float64

// Components holds the priced component lists, one per hardware category.
type Components struct {
	CPUs         []Component `json:"cpus"`
	GPUs         []Component `json:"gpus"`
	RAMs         []Component `json:"rams"`
	SSDs         []Component `json:"ssds"`
	Motherboards []Component `json:"motherboards"`
	PSUs         []Component `json:"psus"`
	Monitors     []Component `json:"monitors"`
}

// CategoryNames lists the mandatory hardware categories in display order.
var CategoryNames = []string{"cpus", "gpus", "rams", "ssds", "motherboards", "psus", "monitors"}

// Category returns the component list for a category name, or nil for an
// unknown category.
func (c *Components) Category(name string) []Component {
	switch name {
	case "cpus":
		return c.CPUs
	case "gpus":
		return c.GPUs
	case "rams":
		return c.RAMs
	case "ssds":
		return c.SSDs
	case "motherboards":
		return c.Motherboards
	case "psus":
		return c.PSUs
	case "monitors":
		return c.Monitors
	default:
		return nil
	}
}

// RulesMeta carries selection metadata shipped with the catalog.
type RulesMeta struct {
	// AllocationPercentages maps profile name to its budget allocation.
	AllocationPercentages map[string]Allocation `json:"allocation_percentages"`
}

// Catalog is the full knowledge base: profiles, priced components and
// per-profile budget allocations. It is loaded once at startup and treated
// as immutable afterwards, so it is safe to share across requests without
// synchronization.
type Catalog struct {
	Profiles   map[string]Profile `json:"profiles"`
	Components Components         `json:"components"`
	RulesMeta  RulesMeta          `json:"rules_meta"`
}

// HasProfile reports whether the catalog knows the given profile name.
func (c *Catalog) HasProfile(name string) bool {
	_, ok := c.Profiles[name]
	return ok
}

// ProfileNames returns the known profile names. Order is unspecified.
func (c *Catalog) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	return names
}

// AllocationFor returns the budget allocation for a profile.
func (c *Catalog) AllocationFor(profile string) (Allocation, bool) {
	alloc, ok := c.RulesMeta.AllocationPercentages[profile]
	return alloc, ok
}
