// Package strategy provides the scripted decision policies evaluated by the
// simulator. Each policy implements game.Strategy: it answers the banker's
// offer with Deal or NoDeal given the current information set, and Keep or
// Swap at the final two boxes. All built-in policies keep their box at the
// final stage.
package strategy

import (
	"fmt"

	"github.com/lox/dealsim/internal/game"
)

// DefaultTarget is the walk-away amount for the canonical target-based
// player, in pounds.
const DefaultTarget = 100000

// Canonical returns the six built-in players compared by a standard
// simulation run. The target parameter is the TargetBased walk-away amount;
// pass DefaultTarget for the standard player.
func Canonical(target float64) []game.Strategy {
	return []game.Strategy{
		NewAlwaysPlay(),
		NewRiskAverse(),
		NewRiskNeutral(),
		NewRiskSeeking(),
		NewTargetBased(target),
		NewMomentumBased(),
	}
}

// Select filters strategies by name. An empty filter returns all strategies
// unchanged; an unknown name is an error.
func Select(all []game.Strategy, names []string) ([]game.Strategy, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]game.Strategy, len(all))
	for _, s := range all {
		byName[s.Name()] = s
	}
	selected := make([]game.Strategy, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
