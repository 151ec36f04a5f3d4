package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/dealsim/internal/prize"
)

// Round is the state machine for one simulated play: it owns the box
// assignment, opens boxes per the schedule, collects the banker's offers and
// asks the strategy for a decision after every round. A Round is used for
// exactly one game.
type Round struct {
	rules    Rules
	banker   *Banker
	rng      *rand.Rand
	assign   prize.Assignment
	ownBox   int
	unopened []int // box ids still sealed, excluding the player's own
}

// NewRound sets up a game: validates the rules against the board, assigns
// prizes to boxes and draws the player's own box.
func NewRound(table *prize.Table, rules Rules, rng *rand.Rand) (*Round, error) {
	if err := rules.Validate(table.Len()); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	n := table.Len()
	ownBox := rng.IntN(n) + 1
	unopened := make([]int, 0, n-1)
	for b := 1; b <= n; b++ {
		if b != ownBox {
			unopened = append(unopened, b)
		}
	}
	return &Round{
		rules:    rules,
		banker:   NewBanker(rules.OfferFractions),
		rng:      rng,
		assign:   table.Assign(rng),
		ownBox:   ownBox,
		unopened: unopened,
	}, nil
}

// OwnBox returns the box the player holds.
func (r *Round) OwnBox() int {
	return r.ownBox
}

// Play runs the game to resolution under the given strategy and returns its
// outcome. A Deal ends the game immediately with the offer as payout;
// otherwise the game runs to the final keep-or-swap choice. A strategy
// answering outside its stage's vocabulary is a contract violation and
// aborts the game.
func (r *Round) Play(strat Strategy) (Outcome, error) {
	outcome := Outcome{
		Strategy:    strat.Name(),
		OwnBoxValue: r.assign.Value(r.ownBox),
	}
	rounds := r.rules.Rounds()
	offers := make([]float64, 0, rounds)
	evs := make([]float64, 0, rounds)

	for round := 1; round <= rounds; round++ {
		r.open(r.rules.Schedule[round-1])

		remaining := r.remainingValues()
		ev := ExpectedValue(remaining)
		offer := r.banker.Offer(remaining, round)
		offers = append(offers, offer)
		evs = append(evs, ev)

		state := State{
			Round:          round,
			Rounds:         rounds,
			Offer:          offer,
			ExpectedValue:  ev,
			OfferHistory:   offers,
			BoxesRemaining: len(r.unopened) + 1,
			OwnBox:         r.ownBox,
		}
		switch d := strat.Decide(state); d {
		case Deal:
			outcome.Payout = offer
			outcome.DealAccepted = true
			outcome.DealRound = round
			outcome.AcceptedFraction = r.banker.Fraction(round)
			outcome.RoundsPlayed = round
			outcome.Offers = offers
			outcome.ExpectedValues = evs
			return outcome, nil
		case NoDeal:
		default:
			return Outcome{}, fmt.Errorf("strategy %q: invalid decision %q at round %d, want deal or no-deal",
				strat.Name(), d, round)
		}
	}

	// Two boxes remain: the player's own and one other.
	finalBox := r.unopened[0]
	state := State{
		Round:          rounds,
		Rounds:         rounds,
		Offer:          offers[len(offers)-1],
		ExpectedValue:  ExpectedValue(r.remainingValues()),
		OfferHistory:   offers,
		BoxesRemaining: 2,
		OwnBox:         r.ownBox,
	}
	switch d := strat.FinalChoice(state); d {
	case Keep:
		outcome.Payout = outcome.OwnBoxValue
	case Swap:
		outcome.Payout = r.assign.Value(finalBox)
		outcome.Swapped = true
	default:
		return Outcome{}, fmt.Errorf("strategy %q: invalid decision %q at final choice, want keep or swap",
			strat.Name(), d)
	}
	outcome.RoundsPlayed = rounds
	outcome.Offers = offers
	outcome.ExpectedValues = evs
	return outcome, nil
}

// open reveals n boxes drawn uniformly without replacement from the sealed
// non-own boxes.
func (r *Round) open(n int) {
	for range n {
		i := r.rng.IntN(len(r.unopened))
		last := len(r.unopened) - 1
		r.unopened[i], r.unopened[last] = r.unopened[last], r.unopened[i]
		r.unopened = r.unopened[:last]
	}
}

// remainingValues returns the prizes still in play: every sealed box plus
// the player's own.
func (r *Round) remainingValues() []float64 {
	values := make([]float64, 0, len(r.unopened)+1)
	for _, b := range r.unopened {
		values = append(values, r.assign.Value(b))
	}
	return append(values, r.assign.Value(r.ownBox))
}
