// Package game implements the core box-elimination game logic.
//
// The main type is Round, which drives a single simulated play: boxes are
// opened per the configured schedule, the Banker prices an offer after each
// round, and a pluggable Strategy answers Deal or NoDeal, then Keep or Swap
// at the final two boxes. The result of a play is an immutable Outcome.
//
// # Deterministic testing
//
// All randomness is drawn from the *rand.Rand passed to NewRound, so tests
// can supply a seeded source and assert exact permutation behaviour:
//
//	rng := randutil.New(42)
//	round, _ := game.NewRound(table, game.DefaultRules(), rng)
//	outcome, err := round.Play(strat)
package game
