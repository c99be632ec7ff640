package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"smartShopper/domain"
	"smartShopper/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err.Error())
		return nil, err
	}

	return &product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if product.Name == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if product.Brand == "" {
		logger.Error("Invalid product data: brand is required")
		return nil, errors.New("brand is required")
	}

	if product.Price < 0 {
		logger.Error("Invalid product data: price cannot be negative")
		return nil, errors.New("price cannot be negative")
	}

	if product.Rating != nil && (*product.Rating < 0 || *product.Rating > 5) {
		logger.Error("Invalid product data: rating must be between 0 and 5")
		return nil, errors.New("rating must be between 0 and 5")
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully", "product_id", product.ID)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == "" {
		logger.Error("Invalid product data: ID is required")
		return nil, errors.New("product ID is required")
	}

	if product.Name == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if product.Price < 0 {
		logger.Error("Invalid product data: price cannot be negative")
		return nil, errors.New("price cannot be negative")
	}

	// Verify product exists
	_, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("product not found", err)
		return nil, errors.New("product not found")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated success", "product_id", product.ID)

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		logger.Error("Invalid product id when deleting product")
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify product exists
	_, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("product not found", err)
		return errors.New("product not found")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted success", "product_id", id)

	return nil
}
