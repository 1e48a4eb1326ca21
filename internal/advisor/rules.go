// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package advisor

import (
	"fmt"
	"strings"

	"github.com/lromero-dev/rigforge/internal/catalog"
)

// Budget tiers for profile auto-detection. A budget below a tier's bound
// maps to that tier's profile; at or above the last bound the build is
// treated as a designer workstation.
var budgetTiers = []struct {
	below   float64
	profile string
}{
	{10000, "ofimatico"},
	{20000, "estudiante"},
	{30000, "programador"},
	{40000, "gamer"},
}

const topTierProfile = "disenador"

// detectProfile resolves the profile to build for: an explicitly requested
// known profile wins, otherwise the budget tier decides. "ninguno" is the
// explicit auto-detect sentinel.
func (a *Advisor) detectProfile(rawProfile string, budget float64) string {
	name := normalizeProfile(rawProfile)
	if name != "" && name != "ninguno" && a.cat.HasProfile(name) {
		return name
	}
	for _, tier := range budgetTiers {
		if budget < tier.below {
			return tier.profile
		}
	}
	return topTierProfile
}

func normalizeProfile(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// buildRules assembles the recommendation rule set for one request. The
// Requires/Produces declarations encode the dependency graph the engine
// sorts; the order of this slice is irrelevant.
func (a *Advisor) buildRules(s *selector) []Rule {
	comps := &a.cat.Components

	return []Rule{
		{
			Name:     "detect-profile",
			Produces: []string{keyProfile},
			Apply: func(f *Facts) error {
				f.Profile = a.detectProfile(f.RawProfile, f.Budget)
				return nil
			},
		},
		{
			Name:     "choose-cpu",
			Requires: []string{keyProfile},
			Produces: []string{string(SlotCPU)},
			Apply: func(f *Facts) error {
				if len(comps.CPUs) == 0 {
					return nil
				}
				alloc, err := a.allocation(f.Profile)
				if err != nil {
					return err
				}
				f.SetComponent(SlotCPU, s.chooseBest(comps.CPUs, f.Budget, alloc["cpu"]))
				return nil
			},
		},
		{
			Name:     "choose-gpu",
			Requires: []string{keyProfile},
			Produces: []string{string(SlotGPU)},
			Apply: func(f *Facts) error {
				if len(comps.GPUs) == 0 {
					return nil
				}
				profile, err := a.profile(f.Profile)
				if err != nil {
					return err
				}
				if !profile.GPURequired {
					if integrated := integratedGPUs(comps.GPUs); len(integrated) > 0 {
						f.SetComponent(SlotGPU, s.pickOne(integrated))
						return nil
					}
				}
				alloc, err := a.allocation(f.Profile)
				if err != nil {
					return err
				}
				f.SetComponent(SlotGPU, s.chooseBest(comps.GPUs, f.Budget, alloc["gpu"]))
				return nil
			},
		},
		{
			Name:     "choose-ram-ssd",
			Requires: []string{keyProfile},
			Produces: []string{string(SlotRAM), string(SlotSSD)},
			Apply: func(f *Facts) error {
				profile, err := a.profile(f.Profile)
				if err != nil {
					return err
				}
				alloc, err := a.allocation(f.Profile)
				if err != nil {
					return err
				}
				if len(comps.RAMs) > 0 {
					ram, relaxed := s.chooseSized(comps.RAMs, profile.MinRAMGB, f.Budget, alloc["ram"])
					f.SetComponent(SlotRAM, ram)
					if relaxed {
						f.Relaxed = append(f.Relaxed, string(SlotRAM))
					}
				}
				if len(comps.SSDs) > 0 {
					ssd, relaxed := s.chooseSized(comps.SSDs, profile.MinSSDGB, f.Budget, alloc["ssd"])
					f.SetComponent(SlotSSD, ssd)
					if relaxed {
						f.Relaxed = append(f.Relaxed, string(SlotSSD))
					}
				}
				return nil
			},
		},
		{
			Name:     "choose-motherboard",
			Requires: []string{string(SlotCPU)},
			Produces: []string{string(SlotMotherboard)},
			Apply: func(f *Facts) error {
				if len(comps.Motherboards) == 0 {
					return nil
				}
				cpu, _ := f.Component(SlotCPU)
				f.SetComponent(SlotMotherboard, s.chooseMobo(comps.Motherboards, cpu))
				return nil
			},
		},
		{
			Name:     "choose-psu",
			Requires: []string{string(SlotGPU)},
			Produces: []string{string(SlotPSU)},
			Apply: func(f *Facts) error {
				if len(comps.PSUs) == 0 {
					return nil
				}
				gpu, _ := f.Component(SlotGPU)
				f.SetComponent(SlotPSU, choosePSU(comps.PSUs, gpu))
				return nil
			},
		},
		{
			Name:     "choose-monitor",
			Requires: []string{keyProfile},
			Produces: []string{string(SlotMonitor)},
			Apply: func(f *Facts) error {
				if len(comps.Monitors) == 0 {
					return nil
				}
				f.SetComponent(SlotMonitor, s.chooseMonitor(comps.Monitors, f.Profile, f.Budget))
				return nil
			},
		},
	}
}

func (a *Advisor) profile(name string) (catalog.Profile, error) {
	prof, ok := a.cat.Profiles[name]
	if !ok {
		return catalog.Profile{}, fmt.Errorf("profile %q not in catalog", name)
	}
	return prof, nil
}

// integratedGPUs filters the GPU list down to integrated options.
func integratedGPUs(gpus []catalog.Component) []catalog.Component {
	out := make([]catalog.Component, 0, 1)
	for _, g := range gpus {
		if g.Level == "integrated" {
			out = append(out, g)
		}
	}
	return out
}
