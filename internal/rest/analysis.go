package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"smartShopper/domain"
)

type (
	AnalysisHandler struct {
		validate *validator.Validate
		service  AnalysisService
		timeout  time.Duration
	}

	AnalysisService interface {
		TruthScore(ctx context.Context, productID string) (*domain.TruthScoreReport, error)
		Compare(ctx context.Context, productIDs []string) (*domain.Comparison, error)
	}

	CompareRequest struct {
		ProductIDs []string `json:"product_ids" validate:"required,min=2,max=3,dive,required"`
	}
)

func NewAnalysisHandler(svc AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		validate: validator.New(),
		service:  svc,
		timeout:  10 * time.Second,
	}
}

func (h *AnalysisHandler) TruthScore(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "product id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report, err := h.service.TruthScore(ctx, productID)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(report))
}

func (h *AnalysisHandler) Compare(c echo.Context) error {
	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	comparison, err := h.service.Compare(ctx, req.ProductIDs)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(comparison))
}

func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "not found")
}
