package simulator

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dealsim/internal/game"
	"github.com/lox/dealsim/internal/prize"
	"github.com/lox/dealsim/internal/strategy"
)

func testConfig(t *testing.T, games, workers int, seed int64) Config {
	t.Helper()
	table, err := prize.NewTable(prize.Canonical())
	require.NoError(t, err)
	return Config{
		Games:   games,
		Seed:    seed,
		Workers: workers,
		Table:   table,
		Rules:   game.DefaultRules(),
		Logger:  log.New(io.Discard),
	}
}

func TestRunProducesExactlyNOutcomesPerStrategy(t *testing.T) {
	sim := New(testConfig(t, 50, 2, 42))
	strategies := strategy.Canonical(strategy.DefaultTarget)

	results, err := sim.Run(strategies)
	require.NoError(t, err)
	require.Len(t, results, len(strategies))

	for _, strat := range strategies {
		outcomes := results[strat.Name()]
		require.Len(t, outcomes, 50, "strategy %s", strat.Name())
		for _, o := range outcomes {
			assert.Equal(t, strat.Name(), o.Strategy)
			assert.Contains(t, prize.Canonical(), o.OwnBoxValue)
		}
	}
}

func TestAlwaysPlayOutcomes(t *testing.T) {
	sim := New(testConfig(t, 200, 0, 7))

	results, err := sim.Run([]game.Strategy{strategy.NewAlwaysPlay()})
	require.NoError(t, err)

	for _, o := range results["always-play"] {
		assert.False(t, o.DealAccepted)
		assert.False(t, o.Swapped)
		assert.Equal(t, o.OwnBoxValue, o.Payout)
		assert.Len(t, o.Offers, 9)
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	strategies := strategy.Canonical(strategy.DefaultTarget)

	serial, err := New(testConfig(t, 40, 1, 99)).Run(strategies)
	require.NoError(t, err)
	parallel, err := New(testConfig(t, 40, 8, 99)).Run(strategies)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestRunSeedsAreIndependent(t *testing.T) {
	sim := New(testConfig(t, 100, 1, 1))

	results, err := sim.Run([]game.Strategy{strategy.NewAlwaysPlay()})
	require.NoError(t, err)

	seeds := make(map[int64]bool)
	for _, o := range results["always-play"] {
		assert.False(t, seeds[o.Seed], "seed %d reused", o.Seed)
		seeds[o.Seed] = true
	}
}

func TestRunValidation(t *testing.T) {
	t.Run("non-positive games", func(t *testing.T) {
		sim := New(testConfig(t, 0, 1, 1))
		_, err := sim.Run(strategy.Canonical(strategy.DefaultTarget))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("no strategies", func(t *testing.T) {
		sim := New(testConfig(t, 10, 1, 1))
		_, err := sim.Run(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no strategies")
	})

	t.Run("bad rules", func(t *testing.T) {
		cfg := testConfig(t, 10, 1, 1)
		cfg.Rules = game.Rules{Schedule: []int{1}, OfferFractions: []float64{0.5}}
		_, err := New(cfg).Run(strategy.Canonical(strategy.DefaultTarget))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid rules")
	})
}

// misbehaving answers the final stage with an offer-round decision, which
// the round must treat as a contract violation.
type misbehaving struct{}

func (misbehaving) Name() string                   { return "misbehaving" }
func (misbehaving) Decide(game.State) game.Decision { return game.NoDeal }
func (misbehaving) FinalChoice(game.State) game.Decision {
	return game.Deal
}

func TestGameErrorAbortsBatch(t *testing.T) {
	sim := New(testConfig(t, 10, 2, 1))

	_, err := sim.Run([]game.Strategy{misbehaving{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `strategy "misbehaving"`)
	assert.Contains(t, err.Error(), "game")
	assert.Contains(t, err.Error(), "final choice")
}
