package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dealsim/internal/prize"
	"github.com/lox/dealsim/internal/randutil"
)

// scripted is a test strategy that deals at a fixed round (0 for never) and
// answers the final stage with a fixed decision. It can also be made to
// answer out of stage to exercise the contract checks.
type scripted struct {
	name      string
	dealAt    int
	final     Decision
	roundsBad bool // answer Keep during offer rounds
	states    []State
}

func (s *scripted) Name() string {
	if s.name == "" {
		return "scripted"
	}
	return s.name
}

func (s *scripted) Decide(state State) Decision {
	s.states = append(s.states, state)
	if s.roundsBad {
		return Keep
	}
	if s.dealAt > 0 && state.Round >= s.dealAt {
		return Deal
	}
	return NoDeal
}

func (s *scripted) FinalChoice(state State) Decision {
	s.states = append(s.states, state)
	return s.final
}

func newTestRound(t *testing.T, seed int64) *Round {
	t.Helper()
	table, err := prize.NewTable(prize.Canonical())
	require.NoError(t, err)
	round, err := NewRound(table, DefaultRules(), randutil.New(seed))
	require.NoError(t, err)
	return round
}

func TestPlayToTheEndKeepsOwnBox(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		round := newTestRound(t, seed)
		strat := &scripted{final: Keep}

		outcome, err := round.Play(strat)
		require.NoError(t, err)

		assert.False(t, outcome.DealAccepted)
		assert.False(t, outcome.Swapped)
		assert.Zero(t, outcome.DealRound)
		assert.Equal(t, 9, outcome.RoundsPlayed)
		assert.Len(t, outcome.Offers, 9)
		assert.Len(t, outcome.ExpectedValues, 9)
		assert.Equal(t, outcome.OwnBoxValue, outcome.Payout)
		assert.Contains(t, prize.Canonical(), outcome.Payout)
	}
}

func TestBoxCountsPerRound(t *testing.T) {
	round := newTestRound(t, 7)
	strat := &scripted{final: Keep}

	_, err := round.Play(strat)
	require.NoError(t, err)

	// 9 offer-round states plus the final-choice state.
	require.Len(t, strat.states, 10)

	// 22 boxes, opening {5,3,3,3,2,1,1,1,1} leaves these counts sealed
	// (own box included) after each round.
	wantRemaining := []int{17, 14, 11, 8, 6, 5, 4, 3, 2}
	for i, want := range wantRemaining {
		assert.Equal(t, want, strat.states[i].BoxesRemaining, "round %d", i+1)
		assert.Equal(t, i+1, strat.states[i].Round)
		assert.Len(t, strat.states[i].OfferHistory, i+1)
		assert.Equal(t, strat.states[i].Offer, strat.states[i].OfferHistory[i])
	}

	final := strat.states[9]
	assert.Equal(t, 2, final.BoxesRemaining, "final choice must see exactly two boxes")
}

func TestDealShortCircuits(t *testing.T) {
	round := newTestRound(t, 3)
	strat := &scripted{dealAt: 3, final: Keep}

	outcome, err := round.Play(strat)
	require.NoError(t, err)

	assert.True(t, outcome.DealAccepted)
	assert.Equal(t, 3, outcome.DealRound)
	assert.Equal(t, 3, outcome.RoundsPlayed)
	require.Len(t, outcome.Offers, 3)
	assert.Equal(t, outcome.Offers[2], outcome.Payout)
	assert.Equal(t, 0.30, outcome.AcceptedFraction)
	assert.False(t, outcome.Swapped)
}

func TestSwapTakesFinalBox(t *testing.T) {
	round := newTestRound(t, 11)
	strat := &scripted{final: Swap}

	outcome, err := round.Play(strat)
	require.NoError(t, err)

	assert.True(t, outcome.Swapped)
	assert.False(t, outcome.DealAccepted)
	// Prize values are distinct, so swapping always changes the payout.
	assert.NotEqual(t, outcome.OwnBoxValue, outcome.Payout)
	assert.Contains(t, prize.Canonical(), outcome.Payout)
}

func TestInvalidDecisionDuringRounds(t *testing.T) {
	round := newTestRound(t, 1)
	strat := &scripted{name: "rogue", roundsBad: true}

	_, err := round.Play(strat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `strategy "rogue"`)
	assert.Contains(t, err.Error(), "round 1")
	assert.Contains(t, err.Error(), "deal or no-deal")
}

func TestInvalidDecisionAtFinalChoice(t *testing.T) {
	round := newTestRound(t, 1)
	strat := &scripted{name: "rogue", final: Deal}

	_, err := round.Play(strat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `strategy "rogue"`)
	assert.Contains(t, err.Error(), "final choice")
	assert.Contains(t, err.Error(), "keep or swap")
}

func TestNewRoundRejectsBadRules(t *testing.T) {
	table, err := prize.NewTable(prize.Canonical())
	require.NoError(t, err)

	_, err = NewRound(table, Rules{Schedule: []int{1}, OfferFractions: []float64{0.5}}, randutil.New(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setup")
}

func TestOffersMatchFractionTable(t *testing.T) {
	round := newTestRound(t, 5)
	strat := &scripted{final: Keep}

	outcome, err := round.Play(strat)
	require.NoError(t, err)

	fractions := DefaultRules().OfferFractions
	for i, offer := range outcome.Offers {
		want := outcome.ExpectedValues[i] * fractions[i]
		assert.InDelta(t, want, offer, 0.005, "round %d", i+1)
	}
}
