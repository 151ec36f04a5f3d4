package strategy

import "github.com/lox/dealsim/internal/game"

// TargetBased deals at the first offer reaching a fixed walk-away amount,
// ignoring expected value entirely.
type TargetBased struct {
	target float64
}

// NewTargetBased creates a TargetBased strategy that accepts any offer of at
// least target pounds.
func NewTargetBased(target float64) *TargetBased {
	return &TargetBased{target: target}
}

func (s *TargetBased) Name() string { return "target" }

// Target returns the walk-away amount.
func (s *TargetBased) Target() float64 { return s.target }

func (s *TargetBased) Decide(state game.State) game.Decision {
	if state.Offer >= s.target {
		return game.Deal
	}
	return game.NoDeal
}

func (s *TargetBased) FinalChoice(state game.State) game.Decision {
	return game.Keep
}
