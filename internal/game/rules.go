package game

import "fmt"

// Rules fixes the opening schedule and the banker's per-round offer
// fractions for a game. Both tables are configuration: tests supply
// synthetic rules, production runs use DefaultRules.
type Rules struct {
	// Schedule[k] is the number of boxes opened in round k+1. The schedule
	// must open every box except the player's own and the one left for the
	// final choice.
	Schedule []int

	// OfferFractions[k] is the fraction of expected value the banker offers
	// after round k+1. One entry per round, non-decreasing, within [0,1].
	OfferFractions []float64
}

// DefaultRules returns the show schedule for a 22-box board: nine opening
// rounds totalling 20 boxes, with the banker's generosity climbing from 10%
// of expected value to 90% by the last offer.
func DefaultRules() Rules {
	return Rules{
		Schedule:       []int{5, 3, 3, 3, 2, 1, 1, 1, 1},
		OfferFractions: []float64{0.10, 0.20, 0.30, 0.40, 0.50, 0.60, 0.70, 0.80, 0.90},
	}
}

// Rounds returns the number of opening rounds before the final choice.
func (r Rules) Rounds() int {
	return len(r.Schedule)
}

// Validate checks the rules against a board of the given size. The schedule
// must account for every box except the player's own and the final box, and
// the offer fractions must cover every round.
func (r Rules) Validate(boxes int) error {
	if len(r.Schedule) == 0 {
		return fmt.Errorf("opening schedule is empty")
	}
	total := 0
	for i, n := range r.Schedule {
		if n <= 0 {
			return fmt.Errorf("round %d opens %d boxes, must be positive", i+1, n)
		}
		total += n
	}
	if want := boxes - 2; total != want {
		return fmt.Errorf("opening schedule opens %d boxes, want %d for a %d-box board", total, want, boxes)
	}
	if len(r.OfferFractions) != len(r.Schedule) {
		return fmt.Errorf("offer fraction table has %d entries, want one per round (%d)",
			len(r.OfferFractions), len(r.Schedule))
	}
	prev := 0.0
	for i, f := range r.OfferFractions {
		if f < 0 || f > 1 {
			return fmt.Errorf("offer fraction for round %d is %v, must be within [0,1]", i+1, f)
		}
		if f < prev {
			return fmt.Errorf("offer fraction for round %d is %v, below round %d's %v", i+1, f, i, prev)
		}
		prev = f
	}
	return nil
}
