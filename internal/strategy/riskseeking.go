package strategy

import "github.com/lox/dealsim/internal/game"

const riskSeekingThreshold = 1.20

// RiskSeeking only deals when the banker overpays by 20% or more, which the
// standard offer table never does, so in practice it plays to the end.
type RiskSeeking struct{}

// NewRiskSeeking creates a new RiskSeeking instance.
func NewRiskSeeking() *RiskSeeking {
	return &RiskSeeking{}
}

func (s *RiskSeeking) Name() string { return "risk-seeking" }

func (s *RiskSeeking) Decide(state game.State) game.Decision {
	if state.Offer >= riskSeekingThreshold*state.ExpectedValue {
		return game.Deal
	}
	return game.NoDeal
}

func (s *RiskSeeking) FinalChoice(state game.State) game.Decision {
	return game.Keep
}
