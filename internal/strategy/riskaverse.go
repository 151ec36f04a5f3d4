package strategy

import "github.com/lox/dealsim/internal/game"

// riskAverseThreshold is the offer-to-EV ratio at which a risk-averse player
// locks in the banker's money.
const riskAverseThreshold = 0.80

// RiskAverse deals as soon as the offer reaches 80% of expected value,
// trading upside for certainty early.
type RiskAverse struct{}

// NewRiskAverse creates a new RiskAverse instance.
func NewRiskAverse() *RiskAverse {
	return &RiskAverse{}
}

func (s *RiskAverse) Name() string { return "risk-averse" }

func (s *RiskAverse) Decide(state game.State) game.Decision {
	if state.Offer >= riskAverseThreshold*state.ExpectedValue {
		return game.Deal
	}
	return game.NoDeal
}

func (s *RiskAverse) FinalChoice(state game.State) game.Decision {
	return game.Keep
}
