package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"smartShopper/domain"
	"smartShopper/pkg/logger"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type ProductRequest struct {
	Name           string                 `json:"name" validate:"required"`
	Price          float64                `json:"price" validate:"gte=0"`
	Brand          string                 `json:"brand" validate:"required"`
	Category       string                 `json:"category"`
	Rating         *float64               `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount    int                    `json:"review_count" validate:"gte=0"`
	SourcePlatform string                 `json:"source_platform"`
	ImageURL       string                 `json:"image_url"`
	ProductURL     string                 `json:"product_url"`
	Description    string                 `json:"description"`
	Features       []string               `json:"features"`
	Specifications map[string]interface{} `json:"specifications"`
}

func (r ProductRequest) toDomain(id string) *domain.Product {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	featuresJSON, _ := json.Marshal(features)

	specs := r.Specifications
	if specs == nil {
		specs = map[string]interface{}{}
	}

	return &domain.Product{
		ID:             id,
		Name:           r.Name,
		Price:          r.Price,
		Brand:          r.Brand,
		Category:       r.Category,
		Rating:         r.Rating,
		ReviewCount:    r.ReviewCount,
		SourcePlatform: r.SourcePlatform,
		ImageURL:       r.ImageURL,
		ProductURL:     r.ProductURL,
		Description:    r.Description,
		Features:       datatypes.JSON(featuresJSON),
		Specifications: datatypes.JSONMap(specs),
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productID)
	if err != nil {
		if err.Error() == "product not found" || err.Error() == "invalid product id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": product,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newProduct, err := h.productService.CreateProduct(ctx, req.toDomain(""))
	if err != nil {
		logger.Error("failed to create product", err)
		if err.Error() == "product name is required" ||
			err.Error() == "brand is required" ||
			err.Error() == "price cannot be negative" ||
			err.Error() == "rating must be between 0 and 5" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "product successfully created",
		"product": newProduct,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID := c.Param("id")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updatedProduct, err := h.productService.UpdateProduct(ctx, req.toDomain(productID))
	if err != nil {
		logger.Error("failed to update product", err)
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "product ID is required" ||
			err.Error() == "product name is required" ||
			err.Error() == "price cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update product",
		"product": updatedProduct,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.productService.DeleteProduct(ctx, productID)
	if err != nil {
		logger.Error("failed to delete product", err)
		if err.Error() == "product not found" || err.Error() == "invalid product id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "product successfully deleted",
		"product_id": productID,
	})
}
