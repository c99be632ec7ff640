package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"smartShopper/business/recommendation"
	"smartShopper/domain"
	"smartShopper/pkg/logger"
)

const (
	minCompareProducts = 2
	maxCompareProducts = 3
)

type Service struct {
	products   recommendation.ProductResolver
	aggregates recommendation.ReviewAggregateResolver
}

func NewService(
	products recommendation.ProductResolver,
	aggregates recommendation.ReviewAggregateResolver,
) *Service {
	return &Service{
		products:   products,
		aggregates: aggregates,
	}
}

// TruthScore computes the 0-100 reliability score of one product from its
// aggregated review data.
func (s *Service) TruthScore(ctx context.Context, productID string) (*domain.TruthScoreReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if productID == "" {
		return nil, errors.New("invalid product id")
	}

	report, err := s.reportFor(ctx, productID)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// Compare ranks 2-3 products by truth score and explains the outcome. Unlike
// batch ranking, an unresolvable product here is a hard error: a comparison
// with a missing side is meaningless.
func (s *Service) Compare(ctx context.Context, productIDs []string) (*domain.Comparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(productIDs) < minCompareProducts || len(productIDs) > maxCompareProducts {
		return nil, fmt.Errorf("comparison requires between %d and %d products", minCompareProducts, maxCompareProducts)
	}

	entries := make([]domain.ComparisonEntry, 0, len(productIDs))
	for _, id := range productIDs {
		report, err := s.reportFor(ctx, id)
		if err != nil {
			logger.Error("comparison product unresolvable", "product_id", id, "error", err.Error())
			return nil, err
		}
		entries = append(entries, domain.ComparisonEntry{TruthScoreReport: *report})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Ranking = i + 1
		entries[i].Verdict = verdict(entries[i], i == 0)
	}

	return &domain.Comparison{
		WinnerID: entries[0].ProductID,
		Entries:  entries,
	}, nil
}

func (s *Service) reportFor(ctx context.Context, productID string) (*domain.TruthScoreReport, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}

	agg, err := s.aggregates.GetReviewAggregate(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve review aggregate: %w", err)
	}

	return &domain.TruthScoreReport{
		ProductID:     product.ID,
		ProductName:   product.Name,
		Score:         truthScore(agg),
		ReviewVolume:  agg.TotalComments,
		AverageRating: agg.AverageRating,
		Pros:          firstN(agg.PositiveAspects, 3),
		Cons:          firstN(agg.CommonIssues, 2),
	}, nil
}

func verdict(e domain.ComparisonEntry, winner bool) string {
	if winner {
		return fmt.Sprintf("%s is the most reliable choice with a truth score of %.0f/100", e.ProductName, e.Score)
	}
	return fmt.Sprintf("%s scores %.0f/100 based on %d reviews", e.ProductName, e.Score, e.ReviewVolume)
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return append([]string{}, items...)
	}
	return append([]string{}, items[:n]...)
}
