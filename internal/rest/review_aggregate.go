package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"smartShopper/domain"
	"smartShopper/pkg/logger"
)

type (
	// AggregateStore is the write side used by the external review pipeline.
	AggregateStore interface {
		Upsert(ctx context.Context, agg *domain.ReviewAggregate) error
	}

	ReviewAggregateHandler struct {
		validate *validator.Validate
		store    AggregateStore
		timeout  time.Duration
	}

	UpsertAggregateRequest struct {
		TotalComments     int                            `json:"total_comments" validate:"gte=0"`
		AverageRating     float64                        `json:"average_rating" validate:"gte=0,lte=5"`
		Sentiment         domain.SentimentDistribution   `json:"sentiment"`
		TopKeywords       []domain.KeywordCount          `json:"top_keywords"`
		QualityIndicators []domain.QualityIndicator      `json:"quality_indicators"`
		CommonIssues      []string                       `json:"common_issues"`
		PositiveAspects   []string                       `json:"positive_aspects"`
	}
)

func NewReviewAggregateHandler(store AggregateStore) *ReviewAggregateHandler {
	return &ReviewAggregateHandler{
		validate: validator.New(),
		store:    store,
		timeout:  10 * time.Second,
	}
}

func (h *ReviewAggregateHandler) Upsert(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "product id is required"})
	}

	var req UpsertAggregateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	agg := &domain.ReviewAggregate{
		ProductID:         productID,
		TotalComments:     req.TotalComments,
		AverageRating:     req.AverageRating,
		Sentiment:         datatypes.NewJSONType(req.Sentiment),
		TopKeywords:       datatypes.NewJSONSlice(req.TopKeywords),
		QualityIndicators: datatypes.NewJSONSlice(req.QualityIndicators),
		CommonIssues:      datatypes.NewJSONSlice(req.CommonIssues),
		PositiveAspects:   datatypes.NewJSONSlice(req.PositiveAspects),
	}

	if err := h.store.Upsert(ctx, agg); err != nil {
		logger.Error("failed to upsert review aggregate", "product_id", productID, "error", err.Error())
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(agg))
}
