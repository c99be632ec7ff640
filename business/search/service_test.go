package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"smartShopper/business/search"
	"smartShopper/domain"
)

func f64(v float64) *float64 { return &v }

type stubSource struct {
	candidates []domain.Candidate
	err        error
	calls      int
}

func (s *stubSource) FindCandidates(ctx context.Context, query string) ([]domain.Candidate, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

type stubStore struct {
	saved   []string
	failFor map[string]bool
}

func (s *stubStore) Create(ctx context.Context, product *domain.Product) error {
	if s.failFor[product.Name] {
		return errors.New("duplicate key")
	}
	s.saved = append(s.saved, product.Name)
	return nil
}

func liveCandidates() []domain.Candidate {
	return []domain.Candidate{
		{Name: "A", Price: f64(10), Brand: "Sony", Category: "audio", SourcePlatform: "amazon"},
		{Name: "B", Price: f64(20), Brand: "Bose", Category: "audio", SourcePlatform: "amazon"},
	}
}

func TestSearch_LiveSource(t *testing.T) {
	source := &stubSource{candidates: liveCandidates()}
	fallback := &stubSource{}
	svc := search.NewService(source, fallback, nil)

	result, err := svc.Search(context.Background(), "headphones", domain.Strategy{Type: domain.StrategyFancy}, false)

	assert.NoError(t, err)
	assert.Equal(t, search.SourceLive, result.Source)
	assert.Len(t, result.Products, 2)
	assert.Zero(t, fallback.calls)
}

func TestSearch_FallsBackToMockOnSourceFailure(t *testing.T) {
	source := &stubSource{err: errors.New("upstream 503")}
	fallback := &stubSource{candidates: []domain.Candidate{
		{Name: "Mock item", Price: f64(10), Brand: "Sony", Category: "audio", SourcePlatform: "mock"},
	}}
	svc := search.NewService(source, fallback, nil)

	result, err := svc.Search(context.Background(), "headphones", domain.Strategy{Type: domain.StrategyFancy}, false)

	assert.NoError(t, err)
	assert.Equal(t, search.SourceMock, result.Source)
	assert.Len(t, result.Products, 1)
	assert.Equal(t, "mock", result.Products[0].SourcePlatform)
}

func TestSearch_BothSourcesFailing(t *testing.T) {
	source := &stubSource{err: errors.New("upstream 503")}
	fallback := &stubSource{err: errors.New("fixture broken")}
	svc := search.NewService(source, fallback, nil)

	_, err := svc.Search(context.Background(), "headphones", domain.Strategy{Type: domain.StrategyFancy}, false)
	assert.Error(t, err)
}

func TestSearch_ValidatesInput(t *testing.T) {
	svc := search.NewService(&stubSource{}, &stubSource{}, nil)

	_, err := svc.Search(context.Background(), "", domain.Strategy{Type: domain.StrategyFancy}, false)
	assert.Error(t, err)

	_, err = svc.Search(context.Background(), "tv", domain.Strategy{Type: "luxury"}, false)
	assert.Error(t, err)
}

func TestSearch_SavePersistsEachSurvivor(t *testing.T) {
	source := &stubSource{candidates: liveCandidates()}
	store := &stubStore{}
	svc := search.NewService(source, &stubSource{}, store)

	result, err := svc.Search(context.Background(), "headphones", domain.Strategy{Type: domain.StrategyFancy}, true)

	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, store.saved)
	assert.Empty(t, result.StoreFailures)
}

func TestSearch_StoreFailureIsPerItem(t *testing.T) {
	source := &stubSource{candidates: liveCandidates()}
	store := &stubStore{failFor: map[string]bool{"A": true}}
	svc := search.NewService(source, &stubSource{}, store)

	result, err := svc.Search(context.Background(), "headphones", domain.Strategy{Type: domain.StrategyFancy}, true)

	assert.NoError(t, err)
	assert.Equal(t, []string{"B"}, store.saved)
	assert.Len(t, result.StoreFailures, 1)
	assert.Equal(t, "A", result.StoreFailures[0].Name)
	assert.Contains(t, result.StoreFailures[0].Message, "duplicate key")
}
