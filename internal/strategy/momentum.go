package strategy

import "github.com/lox/dealsim/internal/game"

const momentumThreshold = 0.90

// MomentumBased reads the direction of the last two offers: it only deals
// when offers have just dropped and the current one is still at least 90% of
// expected value, interpreting a falling offer as the banker cooling off.
// With fewer than two offers on the board there is no trend to read, so it
// always plays on.
type MomentumBased struct{}

// NewMomentumBased creates a new MomentumBased instance.
func NewMomentumBased() *MomentumBased {
	return &MomentumBased{}
}

func (s *MomentumBased) Name() string { return "momentum" }

func (s *MomentumBased) Decide(state game.State) game.Decision {
	history := state.OfferHistory
	if len(history) < 2 {
		return game.NoDeal
	}
	falling := history[len(history)-1] < history[len(history)-2]
	if falling && state.Offer >= momentumThreshold*state.ExpectedValue {
		return game.Deal
	}
	return game.NoDeal
}

func (s *MomentumBased) FinalChoice(state game.State) game.Decision {
	return game.Keep
}
