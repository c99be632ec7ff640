package domain

// StrategyType is the scoring policy a customer picked for a request.
type StrategyType string

const (
	StrategyFancy         StrategyType = "fancy"
	StrategyCostEffective StrategyType = "cost-effective"
	StrategyPricePriority StrategyType = "price-priority"
)

// Valid reports whether t is one of the three known strategy variants.
func (t StrategyType) Valid() bool {
	switch t {
	case StrategyFancy, StrategyCostEffective, StrategyPricePriority:
		return true
	}
	return false
}

// Strategy carries the variant tag plus optional filter constraints.
// Nil pointer means the constraint is unset.
type Strategy struct {
	Type            StrategyType `json:"type"`
	MaxPrice        *float64     `json:"max_price,omitempty"`
	MinPrice        *float64     `json:"min_price,omitempty"`
	MinRating       *float64     `json:"min_rating,omitempty"`
	PreferredBrands []string     `json:"preferred_brands,omitempty"`
	ExcludedBrands  []string     `json:"excluded_brands,omitempty"`
}

// Preferences are user hints accepted by the ranker and passed through
// untouched. They are not applied inside scoring.
type Preferences struct {
	PriceRange       *PriceRange `json:"price_range,omitempty"`
	PreferredBrands  []string    `json:"preferred_brands,omitempty"`
	ExcludedKeywords []string    `json:"excluded_keywords,omitempty"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
