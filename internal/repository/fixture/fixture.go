package fixture

import (
	"context"
	"fmt"
	"strings"

	"smartShopper/domain"
)

// Source serves a static candidate set when the live discovery sources are
// unavailable. Every candidate is tagged with source_platform "mock" so the
// caller can never mistake it for real shopping data.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

func ptr(v float64) *float64 { return &v }

var mockCandidates = []domain.Candidate{
	{
		Name:           "AuraSound Pro Wireless Headphones",
		Price:          ptr(249.99),
		Brand:          "Sony",
		Category:       "electronics",
		Rating:         ptr(4.6),
		ReviewCount:    1843,
		SourcePlatform: "mock",
		Description:    "Over-ear noise cancelling headphones with 30h battery life",
		Features:       []string{"Active noise cancelling", "Bluetooth 5.3", "30h battery"},
	},
	{
		Name:           "EverBrew Compact Coffee Maker",
		Price:          ptr(89.90),
		Brand:          "Philips",
		Category:       "home-kitchen",
		Rating:         ptr(4.3),
		ReviewCount:    967,
		SourcePlatform: "mock",
		Description:    "Single-serve drip coffee maker with reusable filter",
		Features:       []string{"1-cup brewing", "Reusable filter", "Auto shutoff"},
	},
	{
		Name:           "TrailMate 45L Hiking Backpack",
		Price:          ptr(64.50),
		Brand:          "Decathlon",
		Category:       "outdoors",
		Rating:         ptr(4.5),
		ReviewCount:    2210,
		SourcePlatform: "mock",
		Description:    "Water-resistant trekking backpack with rain cover",
		Features:       []string{"45L capacity", "Rain cover", "Ventilated back"},
	},
	{
		Name:           "LumaDesk LED Desk Lamp",
		Price:          ptr(39.99),
		Brand:          "Xiaomi",
		Category:       "home-office",
		Rating:         ptr(4.4),
		ReviewCount:    1322,
		SourcePlatform: "mock",
		Description:    "Dimmable desk lamp with USB-C charging port",
		Features:       []string{"5 brightness levels", "USB-C port", "Touch control"},
	},
	{
		Name:           "PureGlow Facial Cleansing Brush",
		Price:          ptr(54.00),
		Brand:          "Foreo",
		Category:       "beauty",
		Rating:         ptr(4.2),
		ReviewCount:    758,
		SourcePlatform: "mock",
		Description:    "Silicone facial brush with 8 intensity settings",
		Features:       []string{"Waterproof", "8 intensities", "USB rechargeable"},
	},
}

// FindCandidates returns the static set, loosely narrowed by the query when a
// category or name matches. An empty match falls back to the whole set so the
// caller always gets something to show.
func (s *Source) FindCandidates(ctx context.Context, query string) ([]domain.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	lowered := strings.ToLower(query)

	matched := make([]domain.Candidate, 0, len(mockCandidates))
	for _, c := range mockCandidates {
		if strings.Contains(strings.ToLower(c.Name), lowered) ||
			strings.Contains(strings.ToLower(c.Category), lowered) ||
			strings.Contains(strings.ToLower(c.Description), lowered) {
			matched = append(matched, c)
		}
	}

	if len(matched) == 0 {
		matched = append(matched, mockCandidates...)
	}

	return matched, nil
}
