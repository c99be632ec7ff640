package recommendation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"smartShopper/domain"
	"smartShopper/pkg/logger"
)

// ErrInvalidStrategy is returned before any scoring when the request carries
// a strategy type outside the three known variants.
var ErrInvalidStrategy = errors.New("invalid strategy type")

// ---- Resolver interfaces ----

type ProductResolver interface {
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}

type ReviewAggregateResolver interface {
	GetReviewAggregate(ctx context.Context, productID string) (domain.ReviewAggregate, error)
}

// ---- Usecase / Service ----

type Service struct {
	products   ProductResolver
	aggregates ReviewAggregateResolver
	cfg        Config
}

func NewService(
	products ProductResolver,
	aggregates ReviewAggregateResolver,
	cfg Config,
) *Service {
	return &Service{
		products:   products,
		aggregates: aggregates,
		cfg:        cfg,
	}
}

// Rank scores every resolvable product under the given strategy and returns
// recommendations ordered best first with dense 1..N rankings.
//
// A product whose Product or ReviewAggregate cannot be resolved is dropped
// from the output without failing the batch; if every product drops the
// result is an empty list, not an error. Ties in score keep the input order.
// Preferences are accepted as pass-through hints and are not applied inside
// scoring.
func (s *Service) Rank(
	ctx context.Context,
	productIDs []string,
	strategy domain.Strategy,
	prefs *domain.Preferences,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if !strategy.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy.Type)
	}
	if len(productIDs) == 0 {
		return []domain.Recommendation{}, nil
	}

	// Fan out per-product resolution; results land in input-order slots so
	// equal scores later break ties by input position.
	slots := make([]*domain.Recommendation, len(productIDs))

	var wg sync.WaitGroup
	for i, id := range productIDs {
		wg.Add(1)
		go func(idx int, productID string) {
			defer wg.Done()
			rec, err := s.recommendOne(ctx, productID, strategy.Type)
			if err != nil {
				RecommendationsSkippedTotal.WithLabelValues(string(strategy.Type)).Inc()
				logger.Debug("product skipped during ranking",
					"trace_id", TraceIDFromContext(ctx),
					"product_id", productID,
					"error", err.Error(),
				)
				return
			}
			slots[idx] = rec
		}(i, id)
	}
	wg.Wait()

	recs := make([]domain.Recommendation, 0, len(productIDs))
	for _, rec := range slots {
		if rec != nil {
			recs = append(recs, *rec)
		}
	}

	if len(recs) == 0 {
		logger.Warn("all products dropped from ranking",
			"trace_id", TraceIDFromContext(ctx),
			"strategy", string(strategy.Type),
			"requested", len(productIDs),
		)
		return []domain.Recommendation{}, nil
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	for i := range recs {
		recs[i].Ranking = i + 1
	}

	return recs, nil
}

// recommendOne resolves one product plus its review aggregate and builds the
// unranked recommendation record.
func (s *Service) recommendOne(
	ctx context.Context,
	productID string,
	strategy domain.StrategyType,
) (*domain.Recommendation, error) {

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}

	agg, err := s.aggregates.GetReviewAggregate(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve review aggregate: %w", err)
	}

	score, err := s.cfg.Score(product, agg, strategy)
	if err != nil {
		return nil, err
	}

	RecommendationsScoredTotal.WithLabelValues(string(strategy)).Inc()

	return &domain.Recommendation{
		ProductID:  productID,
		Score:      score,
		Reasoning:  s.cfg.buildReasoning(product, agg, strategy),
		Confidence: confidence(agg),
		Pros:       buildPros(agg),
		Cons:       buildCons(agg),
	}, nil
}
