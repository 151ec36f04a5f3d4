package strategy

// Info describes a built-in strategy for listings.
type Info struct {
	Name     string
	Nickname string
	Rule     string
}

// Describe returns listing metadata for the canonical strategies. Nicknames
// follow the show-contestant naming the policies were modelled on.
func Describe() []Info {
	return []Info{
		{"always-play", "Always Play Andy", "never deals, keeps his box to the very end"},
		{"risk-averse", "Risk Averse Rachel", "deals once the offer reaches 80% of expected value"},
		{"risk-neutral", "Neutral Nancy", "deals once the offer reaches 95% of expected value"},
		{"risk-seeking", "Risk Seeking Rick", "deals only if the offer beats expected value by 20%"},
		{"target", "Target Tom", "deals at the first offer of £100,000 or more"},
		{"momentum", "Momentum Mike", "deals when offers just fell and still sit at 90% of expected value"},
	}
}
