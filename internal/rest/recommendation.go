package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"smartShopper/business/recommendation"
	"smartShopper/domain"
	"smartShopper/pkg/metrics"
)

type (
	RecommendationHandler struct {
		validate *validator.Validate
		service  RecommendationService
		timeout  time.Duration
	}

	RecommendationService interface {
		Rank(ctx context.Context, productIDs []string, strategy domain.Strategy, prefs *domain.Preferences) ([]domain.Recommendation, error)
	}

	RankRequest struct {
		Products    []string            `json:"products"`
		Strategy    StrategyRequest     `json:"strategy" validate:"required"`
		Preferences *domain.Preferences `json:"preferences"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate: validator.New(),
		service:  svc,
		timeout:  10 * time.Second,
	}
}

func (h *RecommendationHandler) Rank(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	var req RankRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.Rank(ctx, req.Products, req.Strategy.toDomain(), req.Preferences)
	if err != nil {
		if errors.Is(err, recommendation.ErrInvalidStrategy) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
