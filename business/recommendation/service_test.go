package recommendation_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"smartShopper/business/recommendation"
	"smartShopper/domain"
)

// in-memory resolvers; safe under the ranker's concurrent fan-out
type fakeResolvers struct {
	mu       sync.Mutex
	products map[string]domain.Product
	aggs     map[string]domain.ReviewAggregate
}

func (f *fakeResolvers) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return p, nil
}

func (f *fakeResolvers) GetReviewAggregate(ctx context.Context, productID string) (domain.ReviewAggregate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.aggs[productID]
	if !ok {
		return domain.ReviewAggregate{}, errors.New("review aggregate not found")
	}
	return a, nil
}

func aggWith(rating float64, comments int, positive int) domain.ReviewAggregate {
	return domain.ReviewAggregate{
		TotalComments: comments,
		AverageRating: rating,
		Sentiment: datatypes.NewJSONType(domain.SentimentDistribution{
			Positive: positive,
			Negative: comments - positive,
		}),
		PositiveAspects: datatypes.JSONSlice[string]{"good value", "easy setup", "reliable", "extra aspect"},
		CommonIssues:    datatypes.JSONSlice[string]{"shipping damage", "manual unclear", "third issue"},
	}
}

func newTestService(f *fakeResolvers) *recommendation.Service {
	return recommendation.NewService(f, f, recommendation.DefaultConfig())
}

func threeProducts() *fakeResolvers {
	return &fakeResolvers{
		products: map[string]domain.Product{
			"a": {ID: "a", Name: "Budget Kettle", Brand: "NoName", Price: 25},
			"b": {ID: "b", Name: "Mid Kettle", Brand: "Philips", Price: 400},
			"c": {ID: "c", Name: "Lux Kettle", Brand: "Dyson", Price: 1400},
		},
		aggs: map[string]domain.ReviewAggregate{
			"a": aggWith(4.8, 900, 850),
			"b": aggWith(4.0, 400, 300),
			"c": aggWith(3.1, 120, 60),
		},
	}
}

func TestRank_DenseRankingAndOrdering(t *testing.T) {
	svc := newTestService(threeProducts())

	recs, err := svc.Rank(context.Background(), []string{"a", "b", "c"}, domain.Strategy{Type: domain.StrategyPricePriority}, nil)
	assert.NoError(t, err)
	assert.Len(t, recs, 3)

	for i, rec := range recs {
		assert.Equal(t, i+1, rec.Ranking)
		if i > 0 {
			assert.LessOrEqual(t, rec.Score, recs[i-1].Score)
		}
		assert.GreaterOrEqual(t, rec.Score, 0.0)
		assert.LessOrEqual(t, rec.Score, 1.0)
		assert.GreaterOrEqual(t, rec.Confidence, 0.0)
		assert.LessOrEqual(t, rec.Confidence, 1.0)
		assert.NotEmpty(t, rec.Reasoning)
		assert.LessOrEqual(t, len(rec.Reasoning), 3)
		assert.LessOrEqual(t, len(rec.Pros), 3)
		assert.LessOrEqual(t, len(rec.Cons), 2)
	}
}

func TestRank_SkipsUnresolvableProducts(t *testing.T) {
	f := threeProducts()
	delete(f.aggs, "b") // product exists, aggregate does not
	svc := newTestService(f)

	recs, err := svc.Rank(context.Background(), []string{"a", "b", "c"}, domain.Strategy{Type: domain.StrategyCostEffective}, nil)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)

	for i, rec := range recs {
		assert.NotEqual(t, "b", rec.ProductID)
		assert.Equal(t, i+1, rec.Ranking)
	}
}

func TestRank_AllUnresolvableYieldsEmptyList(t *testing.T) {
	svc := newTestService(&fakeResolvers{
		products: map[string]domain.Product{},
		aggs:     map[string]domain.ReviewAggregate{},
	})

	recs, err := svc.Rank(context.Background(), []string{"x", "y"}, domain.Strategy{Type: domain.StrategyFancy}, nil)
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRank_EmptyInput(t *testing.T) {
	svc := newTestService(threeProducts())

	recs, err := svc.Rank(context.Background(), nil, domain.Strategy{Type: domain.StrategyFancy}, nil)
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRank_InvalidStrategy(t *testing.T) {
	svc := newTestService(threeProducts())

	_, err := svc.Rank(context.Background(), []string{"a"}, domain.Strategy{Type: "cheapest"}, nil)
	assert.ErrorIs(t, err, recommendation.ErrInvalidStrategy)
}

func TestRank_Idempotent(t *testing.T) {
	svc := newTestService(threeProducts())
	strategy := domain.Strategy{Type: domain.StrategyFancy}

	first, err := svc.Rank(context.Background(), []string{"a", "b", "c"}, strategy, nil)
	assert.NoError(t, err)

	second, err := svc.Rank(context.Background(), []string{"a", "b", "c"}, strategy, nil)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	// identical products and aggregates score identically; input order decides
	f := &fakeResolvers{
		products: map[string]domain.Product{
			"first":  {ID: "first", Name: "Twin A", Brand: "Philips", Price: 100},
			"second": {ID: "second", Name: "Twin B", Brand: "Philips", Price: 100},
		},
		aggs: map[string]domain.ReviewAggregate{
			"first":  aggWith(4.5, 200, 150),
			"second": aggWith(4.5, 200, 150),
		},
	}
	svc := newTestService(f)

	recs, err := svc.Rank(context.Background(), []string{"first", "second"}, domain.Strategy{Type: domain.StrategyCostEffective}, nil)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, "first", recs[0].ProductID)
	assert.Equal(t, "second", recs[1].ProductID)
	assert.Equal(t, recs[0].Score, recs[1].Score)
}

func TestRank_ConfidenceFormula(t *testing.T) {
	f := &fakeResolvers{
		products: map[string]domain.Product{"a": {ID: "a", Name: "Thing", Brand: "Sony", Price: 10}},
		aggs:     map[string]domain.ReviewAggregate{"a": aggWith(4.0, 500, 400)},
	}
	svc := newTestService(f)

	recs, err := svc.Rank(context.Background(), []string{"a"}, domain.Strategy{Type: domain.StrategyPricePriority}, nil)
	assert.NoError(t, err)
	assert.Len(t, recs, 1)

	// min(500/1000,1)*0.6 + (4.0/5)*0.4 = 0.30 + 0.32 = 0.62
	assert.InDelta(t, 0.62, recs[0].Confidence, 1e-9)
}

func TestRank_ProsConsFallbacks(t *testing.T) {
	f := &fakeResolvers{
		products: map[string]domain.Product{"a": {ID: "a", Name: "Bare", Brand: "NoName", Price: 10}},
		aggs:     map[string]domain.ReviewAggregate{"a": {TotalComments: 3, AverageRating: 3.5}},
	}
	svc := newTestService(f)

	recs, err := svc.Rank(context.Background(), []string{"a"}, domain.Strategy{Type: domain.StrategyCostEffective}, nil)
	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Len(t, recs[0].Pros, 2)
	assert.Len(t, recs[0].Cons, 1)
}
