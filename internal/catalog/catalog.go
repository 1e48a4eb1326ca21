// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

// Package catalog loads and validates the static hardware knowledge base:
// usage profiles, priced components per category, and per-profile budget
// allocations. A malformed or incomplete catalog is a startup-fatal
// condition; requests never observe a partially loaded catalog.
package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Load reads and parses a catalog file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	return cat, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return &cat, nil
}

// Validate checks the structural contract the selection engine relies on:
// required top-level keys present, every category non-empty, and an
// allocation entry for every selectable profile.
func (c *Catalog) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("catalog missing required key: profiles")
	}

	for _, name := range CategoryNames {
		list := c.Components.Category(name)
		if len(list) == 0 {
			return fmt.Errorf("catalog category %q is empty or missing", name)
		}
		for i, comp := range list {
			if comp.Name == "" {
				return fmt.Errorf("catalog category %q entry %d has no name", name, i)
			}
			if comp.Price < 0 {
				return fmt.Errorf("catalog component %q has negative price", comp.Name)
			}
		}
	}

	if len(c.RulesMeta.AllocationPercentages) == 0 {
		return fmt.Errorf("catalog missing required key: rules_meta.allocation_percentages")
	}

	// "ninguno" is a sentinel for auto-detection and never selected directly,
	// so it needs no allocation entry.
	for name := range c.Profiles {
		if name == "ninguno" {
			continue
		}
		alloc, ok := c.RulesMeta.AllocationPercentages[name]
		if !ok {
			return fmt.Errorf("profile %q has no allocation percentages", name)
		}
		for _, slot := range []string{"cpu", "gpu", "ram", "ssd"} {
			frac, ok := alloc[slot]
			if !ok {
				return fmt.Errorf("profile %q allocation missing slot %q", name, slot)
			}
			if frac <= 0 || frac > 1 {
				return fmt.Errorf("profile %q allocation for %q out of range: %v", name, slot, frac)
			}
		}
	}

	return nil
}

// MinimumBuildCost returns the sum of the cheapest component in every
// mandatory category: the lowest budget for which a complete build exists.
// Empty categories contribute nothing; Validate rejects them anyway.
func (c *Catalog) MinimumBuildCost() float64 {
	var total float64
	for _, name := range CategoryNames {
		list := c.Components.Category(name)
		if len(list) == 0 {
			continue
		}
		min := list[0].Price
		for _, comp := range list[1:] {
			if comp.Price < min {
				min = comp.Price
			}
		}
		total += min
	}
	return total
}
