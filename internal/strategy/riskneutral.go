package strategy

import "github.com/lox/dealsim/internal/game"

const riskNeutralThreshold = 0.95

// RiskNeutral deals only when the offer is within 5% of expected value,
// treating the banker's discount as the price of continuing.
type RiskNeutral struct{}

// NewRiskNeutral creates a new RiskNeutral instance.
func NewRiskNeutral() *RiskNeutral {
	return &RiskNeutral{}
}

func (s *RiskNeutral) Name() string { return "risk-neutral" }

func (s *RiskNeutral) Decide(state game.State) game.Decision {
	if state.Offer >= riskNeutralThreshold*state.ExpectedValue {
		return game.Deal
	}
	return game.NoDeal
}

func (s *RiskNeutral) FinalChoice(state game.State) game.Decision {
	return game.Keep
}
