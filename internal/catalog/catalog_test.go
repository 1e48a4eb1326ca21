// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package catalog

import (
	"math"
	"strings"
	"testing"
)

func TestLoadTestdata(t *testing.T) {
	cat, err := Load("testdata/catalog.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cat.Profiles) != 6 {
		t.Errorf("expected 6 profiles, got %d", len(cat.Profiles))
	}
	for _, name := range []string{"ofimatico", "estudiante", "programador", "gamer", "disenador", "ninguno"} {
		if !cat.HasProfile(name) {
			t.Errorf("expected profile %q in catalog", name)
		}
	}
	for _, name := range CategoryNames {
		if len(cat.Components.Category(name)) == 0 {
			t.Errorf("category %q is empty", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidateRejectsEmptyCategory(t *testing.T) {
	cat := mustLoad(t)
	cat.Components.PSUs = nil

	err := cat.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty psus")
	}
	if !strings.Contains(err.Error(), "psus") {
		t.Errorf("error should name the category, got %v", err)
	}
}

func TestValidateRejectsNamelessComponent(t *testing.T) {
	cat := mustLoad(t)
	cat.Components.CPUs[0].Name = ""

	if err := cat.Validate(); err == nil {
		t.Fatal("expected validation error for nameless component")
	}
}

func TestValidateRejectsNegativePrice(t *testing.T) {
	cat := mustLoad(t)
	cat.Components.Monitors[0].Price = -1

	if err := cat.Validate(); err == nil {
		t.Fatal("expected validation error for negative price")
	}
}

func TestValidateRejectsMissingAllocation(t *testing.T) {
	cat := mustLoad(t)
	delete(cat.RulesMeta.AllocationPercentages, "gamer")

	err := cat.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing allocation")
	}
	if !strings.Contains(err.Error(), "gamer") {
		t.Errorf("error should name the profile, got %v", err)
	}
}

func TestValidateAllowsNingunoWithoutAllocation(t *testing.T) {
	cat := mustLoad(t)
	if _, ok := cat.AllocationFor("ninguno"); ok {
		t.Fatal("fixture should not carry an allocation for ninguno")
	}
	if err := cat.Validate(); err != nil {
		t.Fatalf("ninguno must not require an allocation: %v", err)
	}
}

func TestValidateRejectsOutOfRangeFraction(t *testing.T) {
	cat := mustLoad(t)
	cat.RulesMeta.AllocationPercentages["gamer"]["gpu"] = 1.5

	if err := cat.Validate(); err == nil {
		t.Fatal("expected validation error for fraction > 1")
	}
}

func TestMinimumBuildCost(t *testing.T) {
	cat := mustLoad(t)

	// Cheapest per category in the fixture: 1850 + 0 + 620 + 520 + 1190 +
	// 690 + 1790.
	want := 6660.0
	if got := cat.MinimumBuildCost(); math.Abs(got-want) > 1e-9 {
		t.Errorf("MinimumBuildCost = %v, want %v", got, want)
	}
}

func TestAllocationFor(t *testing.T) {
	cat := mustLoad(t)

	alloc, ok := cat.AllocationFor("gamer")
	if !ok {
		t.Fatal("expected gamer allocation")
	}
	if alloc["gpu"] != 0.38 {
		t.Errorf("gamer gpu fraction = %v, want 0.38", alloc["gpu"])
	}

	if _, ok := cat.AllocationFor("astronauta"); ok {
		t.Error("expected no allocation for unknown profile")
	}
}

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Load("testdata/catalog.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return cat
}
