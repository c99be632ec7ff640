package search

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"smartShopper/domain"
)

const (
	placeholderImageURL   = "https://via.placeholder.com/300"
	placeholderProductURL = "#"
	unknownPlatform       = "Unknown"
)

// FilterCandidates prunes a discovery result down to candidates satisfying
// every set strategy constraint, then normalizes the survivors into full
// products. Input order is preserved; a malformed candidate is dropped
// without failing the batch.
func FilterCandidates(candidates []domain.Candidate, strategy domain.Strategy) []domain.Product {
	products := make([]domain.Product, 0, len(candidates))

	for _, c := range candidates {
		if !passes(c, strategy) {
			continue
		}
		products = append(products, normalize(c))
	}

	return products
}

// passes applies shape validation plus each set constraint; all must hold.
func passes(c domain.Candidate, strategy domain.Strategy) bool {
	if c.Name == "" || c.Brand == "" || c.Category == "" {
		return false
	}
	if c.Price == nil || *c.Price < 0 {
		return false
	}

	price := *c.Price
	if strategy.MaxPrice != nil && price > *strategy.MaxPrice {
		return false
	}
	if strategy.MinPrice != nil && price < *strategy.MinPrice {
		return false
	}

	rating := 0.0
	if c.Rating != nil {
		if *c.Rating < 0 || *c.Rating > 5 {
			return false
		}
		rating = *c.Rating
	}
	if strategy.MinRating != nil && rating < *strategy.MinRating {
		return false
	}

	if len(strategy.PreferredBrands) > 0 && !containsFold(strategy.PreferredBrands, c.Brand) {
		return false
	}
	if len(strategy.ExcludedBrands) > 0 && containsFold(strategy.ExcludedBrands, c.Brand) {
		return false
	}

	return true
}

// normalize fills defaults for every optional field a discovery source may
// have omitted.
func normalize(c domain.Candidate) domain.Product {
	rating := 0.0
	if c.Rating != nil {
		rating = *c.Rating
	}

	platform := c.SourcePlatform
	if platform == "" {
		platform = unknownPlatform
	}

	features := c.Features
	if features == nil {
		features = []string{}
	}
	featuresJSON, _ := json.Marshal(features)

	specs := c.Specifications
	if specs == nil {
		specs = map[string]interface{}{}
	}

	reviewCount := c.ReviewCount
	if reviewCount < 0 {
		reviewCount = 0
	}

	return domain.Product{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Price:          *c.Price,
		Brand:          c.Brand,
		Category:       c.Category,
		Rating:         &rating,
		ReviewCount:    reviewCount,
		SourcePlatform: platform,
		ImageURL:       validURLOr(c.ImageURL, placeholderImageURL),
		ProductURL:     validURLOr(c.ProductURL, placeholderProductURL),
		Description:    c.Description,
		Features:       datatypes.JSON(featuresJSON),
		Specifications: datatypes.JSONMap(specs),
	}
}

func validURLOr(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fallback
	}
	return raw
}

func containsFold(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
