package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartShopper/domain"
)

func f64(v float64) *float64 { return &v }

func validCandidate(name string, price float64) domain.Candidate {
	return domain.Candidate{
		Name:     name,
		Price:    f64(price),
		Brand:    "Philips",
		Category: "electronics",
	}
}

func TestFilter_NoConstraintsKeepsValidCandidatesInOrder(t *testing.T) {
	candidates := []domain.Candidate{
		validCandidate("A", 10),
		validCandidate("B", 20),
		validCandidate("C", 30),
	}

	products := FilterCandidates(candidates, domain.Strategy{Type: domain.StrategyFancy})

	assert.Len(t, products, 3)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
	assert.Equal(t, "C", products[2].Name)
}

func TestFilter_DropsMalformedCandidates(t *testing.T) {
	candidates := []domain.Candidate{
		{Name: "", Price: f64(10), Brand: "X", Category: "c"},       // no name
		{Name: "NoPrice", Brand: "X", Category: "c"},                // nil price
		{Name: "Negative", Price: f64(-5), Brand: "X", Category: "c"},
		{Name: "NoBrand", Price: f64(10), Category: "c"},
		{Name: "NoCategory", Price: f64(10), Brand: "X"},
		{Name: "BadRating", Price: f64(10), Brand: "X", Category: "c", Rating: f64(7)},
		validCandidate("Good", 10),
	}

	products := FilterCandidates(candidates, domain.Strategy{Type: domain.StrategyFancy})

	assert.Len(t, products, 1)
	assert.Equal(t, "Good", products[0].Name)
}

func TestFilter_PriceBounds(t *testing.T) {
	candidates := []domain.Candidate{
		validCandidate("Cheap", 5),
		validCandidate("Mid", 50),
		validCandidate("Expensive", 500),
	}
	strategy := domain.Strategy{
		Type:     domain.StrategyCostEffective,
		MinPrice: f64(10),
		MaxPrice: f64(100),
	}

	products := FilterCandidates(candidates, strategy)

	assert.Len(t, products, 1)
	assert.Equal(t, "Mid", products[0].Name)
}

func TestFilter_MinRatingTreatsMissingAsZero(t *testing.T) {
	rated := validCandidate("Rated", 10)
	rated.Rating = f64(4.5)
	unrated := validCandidate("Unrated", 10)

	strategy := domain.Strategy{
		Type:      domain.StrategyFancy,
		MinRating: f64(4.0),
	}

	products := FilterCandidates([]domain.Candidate{rated, unrated}, strategy)

	assert.Len(t, products, 1)
	assert.Equal(t, "Rated", products[0].Name)
}

func TestFilter_BrandConstraints(t *testing.T) {
	sony := validCandidate("S", 10)
	sony.Brand = "Sony"
	philips := validCandidate("P", 10)

	preferred := domain.Strategy{Type: domain.StrategyFancy, PreferredBrands: []string{"sony"}}
	products := FilterCandidates([]domain.Candidate{sony, philips}, preferred)
	assert.Len(t, products, 1)
	assert.Equal(t, "Sony", products[0].Brand)

	excluded := domain.Strategy{Type: domain.StrategyFancy, ExcludedBrands: []string{"Sony"}}
	products = FilterCandidates([]domain.Candidate{sony, philips}, excluded)
	assert.Len(t, products, 1)
	assert.Equal(t, "Philips", products[0].Brand)
}

func TestFilter_AllSetConstraintsHoldSimultaneously(t *testing.T) {
	candidates := []domain.Candidate{}
	for _, c := range []struct {
		name   string
		price  float64
		brand  string
		rating float64
	}{
		{"ok", 80, "Sony", 4.5},
		{"too cheap", 5, "Sony", 4.5},
		{"wrong brand", 80, "Generic", 4.5},
		{"low rating", 80, "Sony", 2.0},
	} {
		cand := validCandidate(c.name, c.price)
		cand.Brand = c.brand
		cand.Rating = f64(c.rating)
		candidates = append(candidates, cand)
	}

	strategy := domain.Strategy{
		Type:            domain.StrategyFancy,
		MinPrice:        f64(10),
		MaxPrice:        f64(100),
		MinRating:       f64(4.0),
		PreferredBrands: []string{"Sony"},
	}

	products := FilterCandidates(candidates, strategy)

	assert.Len(t, products, 1)
	assert.Equal(t, "ok", products[0].Name)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, 10.0)
		assert.LessOrEqual(t, p.Price, 100.0)
		assert.GreaterOrEqual(t, p.RatingValue(), 4.0)
		assert.Equal(t, "Sony", p.Brand)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	products := FilterCandidates([]domain.Candidate{validCandidate("Bare", 10)}, domain.Strategy{Type: domain.StrategyFancy})

	assert.Len(t, products, 1)
	p := products[0]

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, placeholderImageURL, p.ImageURL)
	assert.Equal(t, placeholderProductURL, p.ProductURL)
	assert.Equal(t, unknownPlatform, p.SourcePlatform)
	assert.Equal(t, 0.0, p.RatingValue())
	assert.Equal(t, 0, p.ReviewCount)
	assert.JSONEq(t, "[]", string(p.Features))
	assert.NotNil(t, p.Specifications)
}

func TestNormalize_InvalidURLReplaced(t *testing.T) {
	cand := validCandidate("Linked", 10)
	cand.ImageURL = "not a url"
	cand.ProductURL = "https://example.com/p/1"

	products := FilterCandidates([]domain.Candidate{cand}, domain.Strategy{Type: domain.StrategyFancy})

	assert.Len(t, products, 1)
	assert.Equal(t, placeholderImageURL, products[0].ImageURL)
	assert.Equal(t, "https://example.com/p/1", products[0].ProductURL)
}
