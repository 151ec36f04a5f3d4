package game

// Outcome is the immutable record of one completed game.
type Outcome struct {
	Strategy    string  // name of the deciding strategy
	Payout      float64 // what the player walked away with
	OwnBoxValue float64 // what was in the player's box

	DealAccepted bool // true when the banker's offer was taken
	DealRound    int  // round the deal was taken, 0 when no deal
	Swapped      bool // true when the player swapped at the final stage
	RoundsPlayed int  // offer rounds seen before the game resolved

	// AcceptedFraction is the banker's offer fraction at the accepted deal,
	// 0 when the game was played to the end.
	AcceptedFraction float64

	// Offers and ExpectedValues are parallel per-round histories, one entry
	// per round the game reached.
	Offers         []float64
	ExpectedValues []float64

	Seed int64 // the game's RNG seed, for replay
}
