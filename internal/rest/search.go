package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"smartShopper/business/search"
	"smartShopper/domain"
)

type (
	SearchHandler struct {
		validate *validator.Validate
		service  SearchService
		timeout  time.Duration
	}

	SearchService interface {
		Search(ctx context.Context, query string, strategy domain.Strategy, save bool) (search.Result, error)
	}

	SearchRequest struct {
		Query    string          `json:"query" validate:"required"`
		Strategy StrategyRequest `json:"strategy" validate:"required"`
		Save     bool            `json:"save"`
	}
)

func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{
		validate: validator.New(),
		service:  svc,
		timeout:  45 * time.Second,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	// discovery can take a while; timeout is wider than the usual handlers
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.service.Search(ctx, req.Query, req.Strategy.toDomain(), req.Save)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
