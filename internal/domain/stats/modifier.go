package stats

// Modifier is one bonus entry an item contributes to a stat. Entries are
// authored once on the item definition and never mutated at runtime.
type Modifier struct {
	Stat  Stat    `json:"stat" yaml:"stat"`
	Value float64 `json:"value" yaml:"value"`
}

// ModifierProvider is the capability queried by stat aggregation. Both
// methods return a finite slice that is safe to re-request: calling again
// yields the same values. An item that does not touch the queried stat
// returns an empty result, never an error.
type ModifierProvider interface {
	// GetAdditiveModifiers returns the flat bonuses this provider
	// contributes to stat
	GetAdditiveModifiers(stat Stat) []float64

	// GetPercentageModifiers returns the percentage bonuses this provider
	// contributes to stat
	GetPercentageModifiers(stat Stat) []float64
}

// Sum adds up a modifier sequence. Order never affects the result.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Effective computes a final stat value from its base and the aggregated
// additive and percentage contributions of every equipped provider:
// (base + sum of additive) * (1 + sum of percentage / 100).
func Effective(base float64, providers []ModifierProvider, stat Stat) float64 {
	var additive, percentage float64
	for _, p := range providers {
		additive += Sum(p.GetAdditiveModifiers(stat))
		percentage += Sum(p.GetPercentageModifiers(stat))
	}

	return (base + additive) * (1 + percentage/100)
}
