package search

import (
	"context"
	"errors"
	"fmt"

	"smartShopper/domain"
	"smartShopper/pkg/logger"
	"smartShopper/pkg/metrics"
)

const (
	SourceLive = "live"
	SourceMock = "mock"
)

// CandidateSource supplies unranked candidate products for a free-text query.
type CandidateSource interface {
	FindCandidates(ctx context.Context, query string) ([]domain.Candidate, error)
}

// ProductStore persists accepted candidates.
type ProductStore interface {
	Create(ctx context.Context, product *domain.Product) error
}

// StoreFailure reports one candidate that could not be persisted.
type StoreFailure struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
}

// Result is the outcome of one search call. Source tells callers whether the
// products came from the live discovery source or the mock fixture.
type Result struct {
	Query         string           `json:"query"`
	Source        string           `json:"source"`
	Products      []domain.Product `json:"products"`
	StoreFailures []StoreFailure   `json:"store_failures,omitempty"`
}

type Service struct {
	source   CandidateSource
	fallback CandidateSource
	store    ProductStore
}

func NewService(source CandidateSource, fallback CandidateSource, store ProductStore) *Service {
	return &Service{
		source:   source,
		fallback: fallback,
		store:    store,
	}
}

// Search resolves candidates for the query, filters them against the strategy
// constraints and optionally persists the survivors.
//
// A discovery failure falls back to the mock fixture, never surfaced as live
// data: the result is tagged with Source = "mock". Persistence failures are
// reported per item and do not abort the batch.
func (s *Service) Search(
	ctx context.Context,
	query string,
	strategy domain.Strategy,
	save bool,
) (Result, error) {

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("context error: %w", err)
	}
	if query == "" {
		return Result{}, errors.New("query is required")
	}
	if !strategy.Type.Valid() {
		return Result{}, fmt.Errorf("unknown strategy type: %q", strategy.Type)
	}

	source := SourceLive
	candidates, err := s.source.FindCandidates(ctx, query)
	if err != nil {
		logger.Warn("candidate source failed, serving mock data",
			"query", query,
			"error", err.Error(),
		)
		metrics.CandidateSourceFallbacks.Inc()

		source = SourceMock
		candidates, err = s.fallback.FindCandidates(ctx, query)
		if err != nil {
			return Result{}, fmt.Errorf("fallback candidate source: %w", err)
		}
	}

	metrics.SearchRequests.WithLabelValues(source).Inc()

	products := FilterCandidates(candidates, strategy)
	result := Result{
		Query:    query,
		Source:   source,
		Products: products,
	}

	if !save || s.store == nil {
		return result, nil
	}

	for i := range products {
		if err := s.store.Create(ctx, &products[i]); err != nil {
			logger.Error("failed to store candidate", "product_id", products[i].ID, "error", err.Error())
			result.StoreFailures = append(result.StoreFailures, StoreFailure{
				ProductID: products[i].ID,
				Name:      products[i].Name,
				Message:   err.Error(),
			})
		}
	}

	return result, nil
}
