package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/pkg/apperror"
)

// ProductService manages the retail product catalogue and stock levels
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name          string
	Price         float64
	StockQuantity int
	HSNCode       string
	GSTPercentage float64
}

// CreateProduct adds a product to the catalogue
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewValidationError("Product price cannot be negative")
	}

	gst := input.GSTPercentage
	if gst == 0 {
		gst = GSTRate * 100
	}

	product := &entity.Product{
		Name:          input.Name,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		HSNCode:       input.HSNCode,
		GSTPercentage: gst,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperror.NewStoreError("creating product", err)
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreError("loading product", err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the product catalogue
func (s *ProductService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// AdjustStock decrements a product's stock, refusing to go below zero
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return apperror.NewValidationError("Decrement quantity must be positive")
	}
	if err := s.productRepo.DecrementStock(ctx, id, quantity); err != nil {
		return apperror.NewBadRequestError(err.Error())
	}
	return nil
}
