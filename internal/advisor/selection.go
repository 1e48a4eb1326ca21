// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package advisor

import (
	"math"
	"math/rand"
	"sort"

	"github.com/lromero-dev/rigforge/internal/catalog"
)

// selector bundles the selection primitives with their tunables and the
// optional randomness source. A nil rng means fully deterministic ties:
// lowest price first, then lexical name.
type selector struct {
	cfg *Config
	rng *rand.Rand
}

// chooseBest picks the highest-scoring component at or below a soft price
// ceiling of budget × percent × slack. When nothing qualifies it falls back
// to the globally cheapest component, so it never fails on a non-empty list.
func (s *selector) chooseBest(list []catalog.Component, budget, percent float64) catalog.Component {
	ceiling := budget * percent * s.cfg.BudgetSlack

	qualifying := make([]catalog.Component, 0, len(list))
	for _, comp := range list {
		if comp.Price <= ceiling {
			qualifying = append(qualifying, comp)
		}
	}
	if len(qualifying) == 0 {
		return cheapest(list)
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		a, b := qualifying[i], qualifying[j]
		if a.PerformanceScore != b.PerformanceScore {
			return a.PerformanceScore > b.PerformanceScore
		}
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.Name < b.Name
	})

	if s.rng != nil && s.cfg.TopSample > 1 {
		n := s.cfg.TopSample
		if n > len(qualifying) {
			n = len(qualifying)
		}
		return qualifying[s.rng.Intn(n)]
	}
	return qualifying[0]
}

// chooseMobo picks a motherboard with the CPU's socket. When no socket
// matches it picks from the full list instead of failing.
func (s *selector) chooseMobo(mobos []catalog.Component, cpu catalog.Component) catalog.Component {
	matches := make([]catalog.Component, 0, len(mobos))
	for _, m := range mobos {
		if m.Socket == cpu.Socket {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return s.pickOne(mobos)
	}
	return s.pickOne(matches)
}

// chooseSized applies a minimum-capacity filter before the best-choice
// primitive. When the filter empties the list it falls back to the cheapest
// unfiltered component and reports the fill as relaxed.
func (s *selector) chooseSized(list []catalog.Component, minGB int, budget, percent float64) (catalog.Component, bool) {
	filtered := make([]catalog.Component, 0, len(list))
	for _, comp := range list {
		if comp.SizeGB >= minGB {
			filtered = append(filtered, comp)
		}
	}
	if len(filtered) == 0 {
		return cheapest(list), true
	}
	return s.chooseBest(filtered, budget, percent), false
}

// chooseMonitor applies the profile-conditioned monitor preference: gamers
// want a refresh-rate floor, designers want 1440p or 4K, everyone else gets
// the monitor priced closest to MonitorTargetFraction of the budget within a
// MonitorCeilingFraction cap. An empty preference set falls back to the full
// list.
func (s *selector) chooseMonitor(monitors []catalog.Component, profile string, budget float64) catalog.Component {
	switch profile {
	case "gamer":
		floor := s.cfg.GamerMinRefreshHz
		if budget >= s.cfg.HighRefreshBudget {
			floor = s.cfg.GamerHighRefreshHz
		}
		candidates := make([]catalog.Component, 0, len(monitors))
		for _, m := range monitors {
			if m.Hz >= floor {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) > 0 {
			return s.pickOne(candidates)
		}

	case "disenador":
		candidates := make([]catalog.Component, 0, len(monitors))
		for _, m := range monitors {
			if m.Res == "1440p" || m.Res == "4K" {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) > 0 {
			return s.pickOne(candidates)
		}

	default:
		target := budget * s.cfg.MonitorTargetFraction
		ceiling := budget * s.cfg.MonitorCeilingFraction
		best, found := catalog.Component{}, false
		for _, m := range monitors {
			if m.Price > ceiling {
				continue
			}
			if !found || closerToTarget(m, best, target) {
				best, found = m, true
			}
		}
		if found {
			return best
		}
	}
	return s.pickOne(monitors)
}

// choosePSU maps the GPU power draw to a wattage tier index into the PSU
// list, which is expected to be ordered by ascending wattage. GPUs without a
// declared draw count as 100W. The index is clamped to the list length.
func choosePSU(psus []catalog.Component, gpu catalog.Component) catalog.Component {
	draw := gpu.PowerW
	if draw == 0 {
		draw = 100
	}

	var tier int
	switch {
	case draw <= 100:
		tier = 0
	case draw <= 160:
		tier = 1
	case draw <= 200:
		tier = 2
	default:
		tier = 3
	}
	if tier >= len(psus) {
		tier = len(psus) - 1
	}
	return psus[tier]
}

// pickOne resolves a tie among equally acceptable candidates: uniformly at
// random when a randomness source is configured, otherwise lowest price then
// lexical name.
func (s *selector) pickOne(list []catalog.Component) catalog.Component {
	if s.rng != nil {
		return list[s.rng.Intn(len(list))]
	}
	best := list[0]
	for _, comp := range list[1:] {
		if comp.Price < best.Price || (comp.Price == best.Price && comp.Name < best.Name) {
			best = comp
		}
	}
	return best
}

// cheapest returns the lowest-priced component, ties broken by name.
func cheapest(list []catalog.Component) catalog.Component {
	best := list[0]
	for _, comp := range list[1:] {
		if comp.Price < best.Price || (comp.Price == best.Price && comp.Name < best.Name) {
			best = comp
		}
	}
	return best
}

// closerToTarget reports whether a is strictly preferable to b for the
// price-target heuristic: smaller distance to target, then lower price, then
// lexical name.
func closerToTarget(a, b catalog.Component, target float64) bool {
	da, db := math.Abs(a.Price-target), math.Abs(b.Price-target)
	if da != db {
		return da < db
	}
	if a.Price != b.Price {
		return a.Price < b.Price
	}
	return a.Name < b.Name
}
