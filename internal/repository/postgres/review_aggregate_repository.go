package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"smartShopper/domain"
)

type ReviewAggregateRepository struct {
	DB *gorm.DB
}

func NewReviewAggregateRepository(db *gorm.DB) *ReviewAggregateRepository {
	return &ReviewAggregateRepository{
		DB: db,
	}
}

// GetReviewAggregate satisfies the recommendation.ReviewAggregateResolver
// contract.
func (r *ReviewAggregateRepository) GetReviewAggregate(ctx context.Context, productID string) (domain.ReviewAggregate, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReviewAggregate{}, fmt.Errorf("context error: %w", err)
	}

	var agg domain.ReviewAggregate

	err := r.DB.WithContext(ctx).First(&agg, "product_id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewAggregate{}, errors.New("review aggregate not found")
		}
		return domain.ReviewAggregate{}, fmt.Errorf("failed to find review aggregate: %w", err)
	}

	return agg, nil
}

// Upsert writes the aggregate produced by the external review pipeline.
func (r *ReviewAggregateRepository) Upsert(ctx context.Context, agg *domain.ReviewAggregate) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Save(agg).Error; err != nil {
		return fmt.Errorf("failed to upsert review aggregate: %w", err)
	}

	return nil
}
