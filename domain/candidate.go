package domain

// Candidate is an unranked, possibly malformed product record returned by a
// discovery source before filtering. All optional fields may be missing;
// the search filter validates shape and fills defaults.
type Candidate struct {
	Name           string                 `json:"name"`
	Price          *float64               `json:"price"`
	Brand          string                 `json:"brand"`
	Category       string                 `json:"category"`
	Rating         *float64               `json:"rating"`
	ReviewCount    int                    `json:"review_count"`
	SourcePlatform string                 `json:"source_platform"`
	ImageURL       string                 `json:"image_url"`
	ProductURL     string                 `json:"product_url"`
	Description    string                 `json:"description"`
	Features       []string               `json:"features"`
	Specifications map[string]interface{} `json:"specifications"`
}
