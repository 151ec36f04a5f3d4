// Package stats reduces collected game outcomes into per-strategy
// distributional summaries.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/lox/dealsim/internal/game"
)

// Band is one bucket of the win-distribution histogram. A payout lands in
// the first band whose Max it does not exceed; the last band should be
// unbounded (math.Inf) so every payout has a home.
type Band struct {
	Label string
	Max   float64
}

// DefaultBands returns the prize bands used in the standard report.
func DefaultBands() []Band {
	return []Band{
		{Label: "£0-£1,000", Max: 1000},
		{Label: "£1,001-£10,000", Max: 10000},
		{Label: "£10,001-£50,000", Max: 50000},
		{Label: "£50,001-£100,000", Max: 100000},
		{Label: "£100,001+", Max: math.Inf(1)},
	}
}

// ValidateBands checks that bands exist, have strictly ascending bounds and
// an unbounded final band.
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("no histogram bands configured")
	}
	prev := math.Inf(-1)
	for _, b := range bands {
		if b.Max <= prev {
			return fmt.Errorf("band %q: bound %v not above previous bound %v", b.Label, b.Max, prev)
		}
		prev = b.Max
	}
	if !math.IsInf(bands[len(bands)-1].Max, 1) {
		return fmt.Errorf("final band %q must be unbounded", bands[len(bands)-1].Label)
	}
	return nil
}

// BandCount is a histogram bucket with its tally.
type BandCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RoundAverages summarises the banker's behaviour in one round across every
// game that reached it. Games that dealt earlier contribute no sample, so
// Games shrinks as rounds progress for deal-happy strategies.
type RoundAverages struct {
	Round            int     `json:"round"`
	Games            int     `json:"games"`
	AvgOffer         float64 `json:"avg_offer"`
	AvgOfferFraction float64 `json:"avg_offer_fraction"`
	AvgExpectedValue float64 `json:"avg_expected_value"`
}

// Aggregate is the read-only distributional summary for one strategy.
// StdDev is the sample standard deviation (n-1 divisor).
type Aggregate struct {
	Strategy string `json:"strategy"`
	Games    int    `json:"games"`

	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`

	DealRate          float64 `json:"deal_rate"`
	SwapRate          float64 `json:"swap_rate"`
	BetterThanBoxRate float64 `json:"better_than_box_rate"`

	AvgRoundsPlayed    float64 `json:"avg_rounds_played"`
	MedianRoundsPlayed float64 `json:"median_rounds_played"`

	// AvgAcceptedFraction is the mean offer fraction across accepted deals,
	// 0 when the strategy never dealt.
	AvgAcceptedFraction float64 `json:"avg_accepted_fraction,omitempty"`

	Histogram []BandCount     `json:"histogram"`
	Rounds    []RoundAverages `json:"rounds"`
}

// Compute reduces one strategy's outcomes into an Aggregate.
func Compute(name string, outcomes []game.Outcome, bands []Band) (Aggregate, error) {
	if len(outcomes) == 0 {
		return Aggregate{}, fmt.Errorf("strategy %q: no outcomes to aggregate", name)
	}
	if err := ValidateBands(bands); err != nil {
		return Aggregate{}, fmt.Errorf("strategy %q: %w", name, err)
	}

	n := len(outcomes)
	payouts := make([]float64, n)
	roundsPlayed := make([]float64, n)
	deals, swaps, better := 0, 0, 0
	acceptedFracSum := 0.0

	for i, o := range outcomes {
		payouts[i] = o.Payout
		roundsPlayed[i] = float64(o.RoundsPlayed)
		if o.DealAccepted {
			deals++
			acceptedFracSum += o.AcceptedFraction
		}
		if o.Swapped {
			swaps++
		}
		if o.Payout > o.OwnBoxValue {
			better++
		}
	}

	sorted := make([]float64, n)
	copy(sorted, payouts)
	sort.Float64s(sorted)

	agg := Aggregate{
		Strategy: name,
		Games:    n,

		Mean:   stat.Mean(payouts, nil),
		Median: median(sorted),
		StdDev: stat.StdDev(payouts, nil),
		Min:    sorted[0],
		Max:    sorted[n-1],
		P25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		P75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),

		DealRate:          float64(deals) / float64(n),
		SwapRate:          float64(swaps) / float64(n),
		BetterThanBoxRate: float64(better) / float64(n),

		AvgRoundsPlayed:    stat.Mean(roundsPlayed, nil),
		MedianRoundsPlayed: medianOf(roundsPlayed),

		Histogram: histogram(payouts, bands),
		Rounds:    roundAverages(outcomes),
	}
	if deals > 0 {
		agg.AvgAcceptedFraction = acceptedFracSum / float64(deals)
	}
	if n < 2 {
		agg.StdDev = 0
	}
	return agg, nil
}

// median expects a sorted slice and averages the middle pair for even
// lengths.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func medianOf(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return median(sorted)
}

// histogram assigns every payout to exactly one band, so the counts always
// sum to the number of outcomes.
func histogram(payouts []float64, bands []Band) []BandCount {
	counts := make([]BandCount, len(bands))
	for i, b := range bands {
		counts[i].Label = b.Label
	}
	for _, p := range payouts {
		idx := len(bands) - 1
		for i, b := range bands {
			if p <= b.Max {
				idx = i
				break
			}
		}
		counts[idx].Count++
	}
	return counts
}

// roundAverages computes per-round offer and expected-value means over the
// games whose offer history reached that round.
func roundAverages(outcomes []game.Outcome) []RoundAverages {
	maxRounds := 0
	for _, o := range outcomes {
		if len(o.Offers) > maxRounds {
			maxRounds = len(o.Offers)
		}
	}

	averages := make([]RoundAverages, 0, maxRounds)
	for r := 0; r < maxRounds; r++ {
		var offers, evs, fractions []float64
		for _, o := range outcomes {
			if r >= len(o.Offers) {
				continue
			}
			offers = append(offers, o.Offers[r])
			evs = append(evs, o.ExpectedValues[r])
			if o.ExpectedValues[r] > 0 {
				fractions = append(fractions, o.Offers[r]/o.ExpectedValues[r])
			}
		}
		avg := RoundAverages{
			Round:            r + 1,
			Games:            len(offers),
			AvgOffer:         stat.Mean(offers, nil),
			AvgExpectedValue: stat.Mean(evs, nil),
		}
		if len(fractions) > 0 {
			avg.AvgOfferFraction = stat.Mean(fractions, nil)
		}
		averages = append(averages, avg)
	}
	return averages
}
