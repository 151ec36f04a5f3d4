package strategy

import "github.com/lox/dealsim/internal/game"

// AlwaysPlay never takes an offer and keeps its own box at the end, so its
// payout distribution is the board itself. Useful as the no-skill baseline.
type AlwaysPlay struct{}

// NewAlwaysPlay creates a new AlwaysPlay instance.
func NewAlwaysPlay() *AlwaysPlay {
	return &AlwaysPlay{}
}

func (s *AlwaysPlay) Name() string { return "always-play" }

func (s *AlwaysPlay) Decide(state game.State) game.Decision {
	return game.NoDeal
}

func (s *AlwaysPlay) FinalChoice(state game.State) game.Decision {
	return game.Keep
}
