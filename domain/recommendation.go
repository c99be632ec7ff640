package domain

// Recommendation is one scored, ranked and explained product from a single
// ranking call. It is created fresh per request and never persisted.
type Recommendation struct {
	ProductID  string   `json:"product_id"`
	Score      float64  `json:"score"`
	Ranking    int      `json:"ranking"`
	Reasoning  []string `json:"reasoning"`
	Confidence float64  `json:"confidence"`
	Pros       []string `json:"pros"`
	Cons       []string `json:"cons"`
}
