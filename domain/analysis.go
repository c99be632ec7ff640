package domain

// TruthScoreReport is the reliability assessment of one product, derived from
// its aggregated review data. Score is on a 0-100 scale.
type TruthScoreReport struct {
	ProductID     string   `json:"product_id"`
	ProductName   string   `json:"product_name"`
	Score         float64  `json:"score"`
	ReviewVolume  int      `json:"review_volume"`
	AverageRating float64  `json:"average_rating"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
}

// ComparisonEntry is one product inside a comparison result.
type ComparisonEntry struct {
	TruthScoreReport
	Ranking int    `json:"ranking"`
	Verdict string `json:"verdict"`
}

// Comparison ranks 2-3 products by truth score.
type Comparison struct {
	WinnerID string            `json:"winner_id"`
	Entries  []ComparisonEntry `json:"entries"`
}
