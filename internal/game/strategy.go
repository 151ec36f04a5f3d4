package game

// Decision is a strategy's answer at a decision point. Deal and NoDeal are
// the only valid answers during offer rounds; Keep and Swap are the only
// valid answers at the final two-box choice.
type Decision int

const (
	NoDeal Decision = iota
	Deal
	Keep
	Swap
)

func (d Decision) String() string {
	switch d {
	case NoDeal:
		return "no-deal"
	case Deal:
		return "deal"
	case Keep:
		return "keep"
	case Swap:
		return "swap"
	default:
		return "invalid"
	}
}

// State is the read-only information set a strategy decides over. A fresh
// State is built before each decision; strategies must not retain it.
type State struct {
	Round          int       // current round, 1-based
	Rounds         int       // total opening rounds in this game
	Offer          float64   // the banker's current offer
	ExpectedValue  float64   // mean of the remaining prize values
	OfferHistory   []float64 // all offers so far, current offer last
	BoxesRemaining int       // unopened boxes, including the player's own
	OwnBox         int       // the player's box id
}

// Strategy is a scripted decision rule. Implementations are stateless across
// games: everything they may consult is in the State passed to them.
type Strategy interface {
	// Name identifies the strategy in outcomes and reports.
	Name() string

	// Decide answers the banker's offer with Deal or NoDeal.
	Decide(state State) Decision

	// FinalChoice answers the final two-box stage with Keep or Swap.
	FinalChoice(state State) Decision
}
