package recommendation

// Config holds the policy inputs of the scorer. The brand reputation table is
// data, not code: it can be replaced or extended without touching scoring.
type Config struct {
	// BrandReputation maps a brand name to a reputation score in [0,1].
	BrandReputation map[string]float64

	// UnknownBrandScore is used for brands missing from the table.
	UnknownBrandScore float64
}

const defaultUnknownBrandScore = 0.5

// DefaultConfig returns the built-in brand reputation table. Known premium
// brands sit in the 0.7-0.95 band.
func DefaultConfig() Config {
	return Config{
		BrandReputation: map[string]float64{
			"Apple":      0.95,
			"Rolex":      0.95,
			"Dyson":      0.92,
			"Samsung":    0.90,
			"Bose":       0.90,
			"Sony":       0.88,
			"LG":         0.85,
			"Bang & Olufsen": 0.90,
			"Miele":      0.88,
			"Sennheiser": 0.85,
			"Canon":      0.82,
			"Nikon":      0.82,
			"Philips":    0.75,
			"Xiaomi":     0.70,
		},
		UnknownBrandScore: defaultUnknownBrandScore,
	}
}

// brandScore looks a brand up in the table, falling back to the unknown-brand
// default.
func (c Config) brandScore(brand string) float64 {
	if score, ok := c.BrandReputation[brand]; ok {
		return score
	}
	if c.UnknownBrandScore > 0 {
		return c.UnknownBrandScore
	}
	return defaultUnknownBrandScore
}
