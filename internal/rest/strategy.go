package rest

import "smartShopper/domain"

// StrategyRequest is the wire shape of a shopping strategy. Constraint fields
// are optional and validated independently.
type StrategyRequest struct {
	Type            string   `json:"type" validate:"required,oneof=fancy cost-effective price-priority"`
	MaxPrice        *float64 `json:"max_price" validate:"omitempty,gte=0"`
	MinPrice        *float64 `json:"min_price" validate:"omitempty,gte=0"`
	MinRating       *float64 `json:"min_rating" validate:"omitempty,gte=0,lte=5"`
	PreferredBrands []string `json:"preferred_brands"`
	ExcludedBrands  []string `json:"excluded_brands"`
}

func (r StrategyRequest) toDomain() domain.Strategy {
	return domain.Strategy{
		Type:            domain.StrategyType(r.Type),
		MaxPrice:        r.MaxPrice,
		MinPrice:        r.MinPrice,
		MinRating:       r.MinRating,
		PreferredBrands: r.PreferredBrands,
		ExcludedBrands:  r.ExcludedBrands,
	}
}
