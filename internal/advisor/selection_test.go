// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package advisor

import (
	"math/rand"
	"testing"

	"github.com/lromero-dev/rigforge/internal/catalog"
)

func newSelector() *selector {
	return &selector{cfg: DefaultConfig()}
}

func TestChooseBestPrefersScoreUnderCeiling(t *testing.T) {
	list := []catalog.Component{
		{Name: "cheap", Price: 100, PerformanceScore: 10},
		{Name: "mid", Price: 500, PerformanceScore: 50},
		{Name: "expensive", Price: 5000, PerformanceScore: 99},
	}

	// Ceiling = 1000 × 0.5 × 1.15 = 575: "expensive" is out.
	got := newSelector().chooseBest(list, 1000, 0.5)
	if got.Name != "mid" {
		t.Errorf("chooseBest = %q, want mid", got.Name)
	}
}

func TestChooseBestFallsBackToCheapest(t *testing.T) {
	list := []catalog.Component{
		{Name: "b", Price: 900, PerformanceScore: 80},
		{Name: "a", Price: 800, PerformanceScore: 70},
	}

	// Ceiling = 100 × 0.1 × 1.15 = 11.5: nothing qualifies.
	got := newSelector().chooseBest(list, 100, 0.1)
	if got.Name != "a" {
		t.Errorf("chooseBest fallback = %q, want cheapest a", got.Name)
	}
}

func TestChooseBestTieBreaksByPriceThenName(t *testing.T) {
	list := []catalog.Component{
		{Name: "z", Price: 300, PerformanceScore: 50},
		{Name: "a", Price: 200, PerformanceScore: 50},
		{Name: "b", Price: 200, PerformanceScore: 50},
	}

	got := newSelector().chooseBest(list, 10000, 0.5)
	if got.Name != "a" {
		t.Errorf("tie-break pick = %q, want a", got.Name)
	}
}

func TestChooseBestTopSampleIsSeeded(t *testing.T) {
	list := []catalog.Component{
		{Name: "one", Price: 100, PerformanceScore: 90},
		{Name: "two", Price: 100, PerformanceScore: 80},
		{Name: "three", Price: 100, PerformanceScore: 70},
	}
	cfg := DefaultConfig()
	cfg.TopSample = 3

	first := &selector{cfg: cfg, rng: rand.New(rand.NewSource(7))}
	second := &selector{cfg: cfg, rng: rand.New(rand.NewSource(7))}
	if a, b := first.chooseBest(list, 10000, 0.5), second.chooseBest(list, 10000, 0.5); a.Name != b.Name {
		t.Errorf("same seed picked %q and %q", a.Name, b.Name)
	}
}

func TestChooseMoboMatchesSocket(t *testing.T) {
	mobos := []catalog.Component{
		{Name: "intel-board", Price: 900, Socket: "LGA1700"},
		{Name: "amd-board", Price: 800, Socket: "AM5"},
		{Name: "amd-board-pricier", Price: 1200, Socket: "AM5"},
	}
	cpu := catalog.Component{Name: "some-ryzen", Socket: "AM5"}

	got := newSelector().chooseMobo(mobos, cpu)
	if got.Name != "amd-board" {
		t.Errorf("chooseMobo = %q, want cheapest AM5 board", got.Name)
	}
}

func TestChooseMoboNoSocketMatchFallsBack(t *testing.T) {
	mobos := []catalog.Component{
		{Name: "only-board", Price: 900, Socket: "LGA1700"},
	}
	cpu := catalog.Component{Name: "odd-cpu", Socket: "AM4"}

	got := newSelector().chooseMobo(mobos, cpu)
	if got.Name != "only-board" {
		t.Errorf("chooseMobo fallback = %q, want only-board", got.Name)
	}
}

func TestChooseSizedAppliesMinimum(t *testing.T) {
	rams := []catalog.Component{
		{Name: "8gb", Price: 500, PerformanceScore: 40, SizeGB: 8},
		{Name: "16gb", Price: 900, PerformanceScore: 60, SizeGB: 16},
	}

	got, relaxed := newSelector().chooseSized(rams, 16, 10000, 0.2)
	if got.Name != "16gb" {
		t.Errorf("chooseSized = %q, want 16gb", got.Name)
	}
	if relaxed {
		t.Error("satisfiable minimum must not be reported as relaxed")
	}
}

func TestChooseSizedEmptyFilterFallsBackToCheapest(t *testing.T) {
	rams := []catalog.Component{
		{Name: "8gb", Price: 500, SizeGB: 8},
		{Name: "4gb", Price: 300, SizeGB: 4},
	}

	got, relaxed := newSelector().chooseSized(rams, 64, 10000, 0.2)
	if got.Name != "4gb" {
		t.Errorf("chooseSized fallback = %q, want cheapest 4gb", got.Name)
	}
	if !relaxed {
		t.Error("empty filter fallback must be reported as relaxed")
	}
}

func TestChooseMonitorGamerRefreshFloor(t *testing.T) {
	monitors := []catalog.Component{
		{Name: "office-75", Price: 1500, Hz: 75},
		{Name: "fast-144", Price: 3000, Hz: 144},
		{Name: "fast-165", Price: 5000, Hz: 165},
	}
	s := newSelector()

	got := s.chooseMonitor(monitors, "gamer", 35000)
	if got.Hz < 120 {
		t.Errorf("gamer monitor Hz = %d, want >= 120", got.Hz)
	}

	// At the high-refresh budget gate the floor rises to 144.
	got = s.chooseMonitor(monitors, "gamer", 45000)
	if got.Hz < 144 {
		t.Errorf("high-budget gamer monitor Hz = %d, want >= 144", got.Hz)
	}
}

func TestChooseMonitorDesignerResolution(t *testing.T) {
	monitors := []catalog.Component{
		{Name: "basic", Price: 1500, Res: "1080p"},
		{Name: "qhd", Price: 4000, Res: "1440p"},
		{Name: "uhd", Price: 7000, Res: "4K"},
	}

	got := newSelector().chooseMonitor(monitors, "disenador", 45000)
	if got.Res != "1440p" && got.Res != "4K" {
		t.Errorf("designer monitor res = %q, want 1440p or 4K", got.Res)
	}
}

func TestChooseMonitorGeneralTargetsBudgetFraction(t *testing.T) {
	monitors := []catalog.Component{
		{Name: "tiny", Price: 800},
		{Name: "target", Price: 1450},
		{Name: "big", Price: 2900},
		{Name: "huge", Price: 9000},
	}

	// Budget 15000: target 1500, ceiling 3000. "target" is closest.
	got := newSelector().chooseMonitor(monitors, "estudiante", 15000)
	if got.Name != "target" {
		t.Errorf("general monitor = %q, want target", got.Name)
	}
}

func TestChooseMonitorFallsBackWhenNothingMatches(t *testing.T) {
	monitors := []catalog.Component{
		{Name: "pricey", Price: 9000, Hz: 60},
	}

	got := newSelector().chooseMonitor(monitors, "gamer", 35000)
	if got.Name != "pricey" {
		t.Errorf("fallback monitor = %q, want pricey", got.Name)
	}
}

func TestChoosePSUTiers(t *testing.T) {
	psus := []catalog.Component{
		{Name: "450w", PowerW: 450},
		{Name: "550w", PowerW: 550},
		{Name: "650w", PowerW: 650},
		{Name: "850w", PowerW: 850},
	}

	cases := []struct {
		draw float64
		want string
	}{
		{0, "450w"}, // missing draw defaults to 100W
		{75, "450w"},
		{100, "450w"},
		{130, "550w"},
		{160, "550w"},
		{200, "650w"},
		{320, "850w"},
	}
	for _, tc := range cases {
		gpu := catalog.Component{Name: "gpu", PowerW: tc.draw}
		if got := choosePSU(psus, gpu); got.Name != tc.want {
			t.Errorf("choosePSU(draw=%v) = %q, want %q", tc.draw, got.Name, tc.want)
		}
	}
}

func TestChoosePSUClampsToListLength(t *testing.T) {
	psus := []catalog.Component{
		{Name: "only", PowerW: 500},
	}
	gpu := catalog.Component{Name: "hungry", PowerW: 400}

	if got := choosePSU(psus, gpu); got.Name != "only" {
		t.Errorf("choosePSU clamp = %q, want only", got.Name)
	}
}

func TestChoosePSUMonotonicInDraw(t *testing.T) {
	psus := []catalog.Component{
		{Name: "t0", PowerW: 450},
		{Name: "t1", PowerW: 550},
		{Name: "t2", PowerW: 650},
		{Name: "t3", PowerW: 850},
	}
	tierIndex := func(name string) int {
		for i, p := range psus {
			if p.Name == name {
				return i
			}
		}
		return -1
	}

	prev := -1
	for draw := 10.0; draw <= 400; draw += 10 {
		got := choosePSU(psus, catalog.Component{PowerW: draw})
		idx := tierIndex(got.Name)
		if idx < prev {
			t.Fatalf("tier dropped from %d to %d at draw %v", prev, idx, draw)
		}
		prev = idx
	}
}

func TestPickOneDeterministicWithoutRNG(t *testing.T) {
	list := []catalog.Component{
		{Name: "b", Price: 100},
		{Name: "a", Price: 100},
		{Name: "c", Price: 50},
	}

	if got := newSelector().pickOne(list); got.Name != "c" {
		t.Errorf("pickOne = %q, want lowest-price c", got.Name)
	}
}

func TestPickOneSeededIsReproducible(t *testing.T) {
	list := []catalog.Component{
		{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"},
	}
	first := &selector{cfg: DefaultConfig(), rng: rand.New(rand.NewSource(99))}
	second := &selector{cfg: DefaultConfig(), rng: rand.New(rand.NewSource(99))}

	for i := 0; i < 10; i++ {
		if a, b := first.pickOne(list), second.pickOne(list); a.Name != b.Name {
			t.Fatalf("iteration %d diverged: %q vs %q", i, a.Name, b.Name)
		}
	}
}
