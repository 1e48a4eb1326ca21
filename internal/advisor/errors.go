// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package advisor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBudget is returned when the requested budget is missing,
// non-finite, or not positive.
var ErrInvalidBudget = errors.New("budget must be a positive number")

// ErrUnknownProfile is returned when the requested profile is neither empty,
// "ninguno", nor a catalog profile name.
var ErrUnknownProfile = errors.New("unknown profile")

// InfeasibleError reports a budget below the cheapest complete build. It
// carries the minimum so callers can suggest raising the budget.
type InfeasibleError struct {
	Budget          float64
	MinimumRequired float64
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("budget %.2f is below the minimum buildable cost %.2f", e.Budget, e.MinimumRequired)
}

// UnresolvedSlotsError reports slots that stayed empty even after the
// fallback pass. Only possible with a degenerate catalog that has an empty
// category.
type UnresolvedSlotsError struct {
	Slots []Slot
}

func (e *UnresolvedSlotsError) Error() string {
	names := make([]string, len(e.Slots))
	for i, s := range e.Slots {
		names[i] = string(s)
	}
	return "unresolved slots after fallback: " + strings.Join(names, ", ")
}
