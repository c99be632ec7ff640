package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"smartShopper/domain"
)

type stubResolvers struct {
	products map[string]domain.Product
	aggs     map[string]domain.ReviewAggregate
}

func (s *stubResolvers) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return p, nil
}

func (s *stubResolvers) GetReviewAggregate(ctx context.Context, productID string) (domain.ReviewAggregate, error) {
	a, ok := s.aggs[productID]
	if !ok {
		return domain.ReviewAggregate{}, errors.New("review aggregate not found")
	}
	return a, nil
}

func reviewedAggregate(rating float64, comments, positive, issues int) domain.ReviewAggregate {
	issueList := datatypes.JSONSlice[string]{}
	for i := 0; i < issues; i++ {
		issueList = append(issueList, "issue")
	}
	return domain.ReviewAggregate{
		TotalComments: comments,
		AverageRating: rating,
		Sentiment: datatypes.NewJSONType(domain.SentimentDistribution{
			Positive: positive,
			Negative: comments - positive,
		}),
		QualityIndicators: datatypes.JSONSlice[domain.QualityIndicator]{
			{Indicator: "build quality", Mentions: 250},
		},
		CommonIssues:    issueList,
		PositiveAspects: datatypes.JSONSlice[string]{"works well", "good price"},
	}
}

func twoProducts() *stubResolvers {
	return &stubResolvers{
		products: map[string]domain.Product{
			"good": {ID: "good", Name: "Good One", Brand: "Sony", Price: 100},
			"bad":  {ID: "bad", Name: "Rough One", Brand: "NoName", Price: 90},
		},
		aggs: map[string]domain.ReviewAggregate{
			"good": reviewedAggregate(4.7, 1200, 1100, 0),
			"bad":  reviewedAggregate(2.4, 80, 20, 6),
		},
	}
}

func TestTruthScore_Range(t *testing.T) {
	svc := NewService(twoProducts(), twoProducts())

	for _, id := range []string{"good", "bad"} {
		report, err := svc.TruthScore(context.Background(), id)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, report.Score, 0.0)
		assert.LessOrEqual(t, report.Score, 100.0)
	}
}

func TestTruthScore_OrdersSensibly(t *testing.T) {
	svc := NewService(twoProducts(), twoProducts())

	good, err := svc.TruthScore(context.Background(), "good")
	assert.NoError(t, err)
	bad, err := svc.TruthScore(context.Background(), "bad")
	assert.NoError(t, err)

	assert.Greater(t, good.Score, bad.Score)
}

func TestTruthScore_EmptyAggregateIsSafe(t *testing.T) {
	stub := &stubResolvers{
		products: map[string]domain.Product{"p": {ID: "p", Name: "No Reviews"}},
		aggs:     map[string]domain.ReviewAggregate{"p": {}},
	}
	svc := NewService(stub, stub)

	report, err := svc.TruthScore(context.Background(), "p")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, report.Score)
}

func TestTruthScore_NotFound(t *testing.T) {
	svc := NewService(twoProducts(), twoProducts())

	_, err := svc.TruthScore(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestCompare_RanksByTruthScore(t *testing.T) {
	svc := NewService(twoProducts(), twoProducts())

	comparison, err := svc.Compare(context.Background(), []string{"bad", "good"})
	assert.NoError(t, err)

	assert.Equal(t, "good", comparison.WinnerID)
	assert.Len(t, comparison.Entries, 2)
	assert.Equal(t, 1, comparison.Entries[0].Ranking)
	assert.Equal(t, 2, comparison.Entries[1].Ranking)
	assert.Contains(t, comparison.Entries[0].Verdict, "most reliable")
}

func TestCompare_RequiresTwoToThreeProducts(t *testing.T) {
	svc := NewService(twoProducts(), twoProducts())

	_, err := svc.Compare(context.Background(), []string{"good"})
	assert.Error(t, err)

	_, err = svc.Compare(context.Background(), []string{"a", "b", "c", "d"})
	assert.Error(t, err)
}

func TestCompare_MissingProductIsHardError(t *testing.T) {
	svc := NewService(twoProducts(), twoProducts())

	_, err := svc.Compare(context.Background(), []string{"good", "ghost"})
	assert.Error(t, err)
}

func TestIssuePenaltyCaps(t *testing.T) {
	heavy := reviewedAggregate(5, 1000, 1000, 25)
	light := reviewedAggregate(5, 1000, 1000, 10)

	// both hit the issue cap, so the penalty is identical
	assert.Equal(t, truthScore(light), truthScore(heavy))
}
