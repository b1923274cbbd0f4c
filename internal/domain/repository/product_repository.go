package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgsalon/salonpos-api/internal/domain/entity"
)

// ProductRepository defines the interface for product/stock data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	// DecrementStock atomically decrements stock for one product, refusing to
	// go below zero. Carries the decrement_product_stock procedure semantics.
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error
}
