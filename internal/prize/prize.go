// Package prize holds the board of sealed-box prize values and their random
// assignment to numbered boxes at the start of each game.
package prize

import (
	"fmt"
	rand "math/rand/v2"
)

// Canonical returns the 22 prize values from the UK show board, in pounds.
// The board is fixed for every televised game; simulations reuse it unless a
// synthetic table is supplied.
func Canonical() []float64 {
	return []float64{
		0.01, 0.10, 0.50, 1, 5, 10, 50, 100, 250, 500, 750, 1000,
		3000, 5000, 10000, 15000, 20000, 35000, 50000, 75000,
		100000, 250000,
	}
}

// Table is the multiset of prize values in play. Values are fixed once the
// table is built; only their assignment to boxes varies per game.
type Table struct {
	values []float64
}

// NewTable builds a prize table from the given values. Values must be
// distinct and non-negative, and there must be at least three of them (the
// player's box, the final unopened box, and at least one box to open).
func NewTable(values []float64) (*Table, error) {
	if len(values) < 3 {
		return nil, fmt.Errorf("prize table needs at least 3 values, got %d", len(values))
	}
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("prize table contains negative value %v", v)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("prize table contains duplicate value %v", v)
		}
		seen[v] = struct{}{}
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	return &Table{values: vals}, nil
}

// Len returns the number of boxes on the board.
func (t *Table) Len() int {
	return len(t.values)
}

// Values returns a copy of the prize values.
func (t *Table) Values() []float64 {
	vals := make([]float64, len(t.values))
	copy(vals, t.values)
	return vals
}

// Assignment is a bijection from box ids 1..n onto the prize values, fixed
// for the lifetime of one game.
type Assignment struct {
	byBox []float64
}

// Assign draws a uniformly random assignment of prizes to boxes using
// Fisher-Yates via rng.Perm, so each of the n! permutations is equally
// likely.
func (t *Table) Assign(rng *rand.Rand) Assignment {
	byBox := make([]float64, len(t.values))
	for i, j := range rng.Perm(len(t.values)) {
		byBox[i] = t.values[j]
	}
	return Assignment{byBox: byBox}
}

// Boxes returns the number of boxes in the assignment.
func (a Assignment) Boxes() int {
	return len(a.byBox)
}

// Value returns the prize concealed in the given box (1-based id).
func (a Assignment) Value(box int) float64 {
	return a.byBox[box-1]
}
