// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package advisor

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Rule is one forward-chaining inference step. A rule fires at most once,
// only after every fact in Requires has been resolved, and records the facts
// named in Produces. Apply must set exactly the Produces facts.
type Rule struct {
	// Name identifies the rule in logs and diagnostics.
	Name string

	// Requires lists the fact keys that must be resolved before firing.
	Requires []string

	// Produces lists the fact keys this rule resolves. Each key has exactly
	// one producer across the rule set.
	Produces []string

	// Apply derives the produced facts from the current working memory.
	Apply func(f *Facts) error
}

// Engine evaluates a rule set over per-request working memory. Rule
// preconditions form a dependency DAG; the engine resolves a firing order by
// topological sort at construction, so evaluation is a single linear pass
// instead of repeated fixed-point scans.
type Engine struct {
	rules  []Rule
	order  []int
	logger zerolog.Logger
	fired  []string
}

// NewEngine validates the rule set and computes the firing order. It returns
// an error for duplicate producers or dependency cycles. Rules requiring a
// fact no rule produces are kept but never fire; their slots stay unset for
// the fallback pass to fill.
func NewEngine(rules []Rule, logger zerolog.Logger) (*Engine, error) {
	producers := make(map[string]int, len(rules))
	for i, rule := range rules {
		for _, key := range rule.Produces {
			if prev, ok := producers[key]; ok {
				return nil, fmt.Errorf("fact %q produced by both %q and %q", key, rules[prev].Name, rule.Name)
			}
			producers[key] = i
		}
	}

	// Kahn's algorithm. Rules whose requirements have no producer are
	// unsatisfiable; they are drained like fired rules so their dependents
	// are classified correctly, but excluded from the firing order.
	successors := make([][]int, len(rules))
	indegree := make([]int, len(rules))
	unsatisfiable := make([]bool, len(rules))
	for i, rule := range rules {
		seen := make(map[int]bool)
		for _, key := range rule.Requires {
			p, ok := producers[key]
			if !ok {
				unsatisfiable[i] = true
				continue
			}
			if p == i {
				return nil, fmt.Errorf("rule %q requires its own product %q", rule.Name, key)
			}
			if !seen[p] {
				seen[p] = true
				successors[p] = append(successors[p], i)
				indegree[i]++
			}
		}
	}

	queue := make([]int, 0, len(rules))
	for i := range rules {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, len(rules))
	drained := 0
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		drained++
		if !unsatisfiable[i] {
			order = append(order, i)
		}
		for _, next := range successors[i] {
			if unsatisfiable[i] {
				unsatisfiable[next] = true
			}
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if drained != len(rules) {
		return nil, fmt.Errorf("rule dependencies contain a cycle")
	}

	return &Engine{rules: rules, order: order, logger: logger}, nil
}

// Run fires every satisfiable rule once, in dependency order. A rule whose
// requirements are unexpectedly unresolved at its turn is skipped, not an
// error; unresolved slots are the fallback pass's concern.
func (e *Engine) Run(f *Facts) error {
	e.fired = e.fired[:0]
	for _, i := range e.order {
		rule := e.rules[i]
		if !e.ready(f, rule) {
			continue
		}
		if err := rule.Apply(f); err != nil {
			return fmt.Errorf("rule %q: %w", rule.Name, err)
		}
		e.fired = append(e.fired, rule.Name)
		e.logger.Debug().Str("rule", rule.Name).Msg("rule fired")
	}
	return nil
}

// Fired returns the names of the rules fired by the last Run, in order.
func (e *Engine) Fired() []string {
	return e.fired
}

func (e *Engine) ready(f *Facts, rule Rule) bool {
	for _, key := range rule.Requires {
		if !f.Has(key) {
			return false
		}
	}
	for _, key := range rule.Produces {
		if f.Has(key) {
			return false
		}
	}
	return true
}
