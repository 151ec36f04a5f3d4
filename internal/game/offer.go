package game

import "math"

// Banker computes the cash offer made after each round. Offers are a pure
// function of the remaining prize values and the round number; there is no
// hidden randomness.
type Banker struct {
	fractions []float64
}

// NewBanker returns a banker using the given per-round offer fractions.
func NewBanker(fractions []float64) *Banker {
	fs := make([]float64, len(fractions))
	copy(fs, fractions)
	return &Banker{fractions: fs}
}

// Offer returns the banker's offer after the given round (1-based): the
// expected value of the remaining boxes scaled by that round's fraction,
// rounded to the penny. Rounds beyond the table reuse the final fraction.
func (b *Banker) Offer(remaining []float64, round int) float64 {
	ev := ExpectedValue(remaining)
	idx := round - 1
	if idx >= len(b.fractions) {
		idx = len(b.fractions) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return roundToPence(ev * b.fractions[idx])
}

// Fraction returns the offer fraction used for the given round (1-based).
func (b *Banker) Fraction(round int) float64 {
	idx := round - 1
	if idx >= len(b.fractions) {
		idx = len(b.fractions) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return b.fractions[idx]
}

// ExpectedValue returns the arithmetic mean of the given prize values, or 0
// for an empty slice.
func ExpectedValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func roundToPence(v float64) float64 {
	return math.Round(v*100) / 100
}
