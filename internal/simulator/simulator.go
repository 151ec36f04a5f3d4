// Package simulator orchestrates batches of independent games per strategy
// and collects their outcomes.
package simulator

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/dealsim/internal/game"
	"github.com/lox/dealsim/internal/prize"
	"github.com/lox/dealsim/internal/randutil"
)

// Config holds configuration for running simulations.
type Config struct {
	Games   int         // games per strategy
	Seed    int64       // master seed; per-game seeds are derived from it
	Workers int         // parallel workers, 0 means one per CPU
	Table   *prize.Table
	Rules   game.Rules
	Logger  *log.Logger
}

// Simulator runs game batches.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration. A nil Logger
// disables logging.
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays Games independent rounds for every strategy and returns the
// outcomes keyed by strategy name. Each game draws a fresh prize assignment
// from its own derived RNG stream, so results are identical for a given seed
// regardless of worker count. Any game error aborts the whole batch.
func (s *Simulator) Run(strategies []game.Strategy) (map[string][]game.Outcome, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("invalid number of games %d, must be positive", s.config.Games)
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("no strategies to simulate")
	}
	if s.config.Table == nil {
		return nil, fmt.Errorf("no prize table configured")
	}
	if err := s.config.Rules.Validate(s.config.Table.Len()); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(map[string][]game.Outcome, len(strategies))
	for stream, strat := range strategies {
		s.config.Logger.Debug("simulating strategy",
			"strategy", strat.Name(), "games", s.config.Games, "workers", workers)
		outcomes, err := s.runBatch(strat, int64(stream), workers)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", strat.Name(), err)
		}
		results[strat.Name()] = outcomes
	}
	return results, nil
}

// runBatch plays every game for one strategy, split into contiguous index
// ranges across workers. Outcomes land in their own slots so no worker ever
// touches another's results.
func (s *Simulator) runBatch(strat game.Strategy, stream int64, workers int) ([]game.Outcome, error) {
	games := s.config.Games
	outcomes := make([]game.Outcome, games)

	if workers > games {
		workers = games
	}
	chunk := games / workers
	remainder := games % workers

	var g errgroup.Group
	start := 0
	for w := 0; w < workers; w++ {
		size := chunk
		if w < remainder {
			size++
		}
		lo, hi := start, start+size
		start = hi

		g.Go(func() error {
			for i := lo; i < hi; i++ {
				outcome, err := s.playGame(strat, stream, int64(i))
				if err != nil {
					return fmt.Errorf("game %d: %w", i+1, err)
				}
				outcomes[i] = outcome
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// playGame runs a single game on its own derived RNG stream.
func (s *Simulator) playGame(strat game.Strategy, stream, index int64) (game.Outcome, error) {
	seed := randutil.Derive(s.config.Seed, stream, index)
	rng := randutil.New(seed)

	round, err := game.NewRound(s.config.Table, s.config.Rules, rng)
	if err != nil {
		return game.Outcome{}, err
	}
	outcome, err := round.Play(strat)
	if err != nil {
		return game.Outcome{}, err
	}
	outcome.Seed = seed
	return outcome, nil
}
