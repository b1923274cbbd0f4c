package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
	"github.com/rgsalon/salonpos-api/pkg/pagination"
)

// OrderFilterParams captures list-time filters for orders
type OrderFilterParams struct {
	Pagination       *pagination.PaginationParams
	Search           string
	Status           *enum.OrderStatus
	ClientID         *uuid.UUID
	StartDate        *time.Time
	EndDate          *time.Time
	SalonConsumption *bool
	SortBy           string
	SortOrder        string
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListAllAscending returns every order sorted ascending by creation time;
	// display id derivation depends on this ordering.
	ListAllAscending(ctx context.Context) ([]entity.Order, error)
	ListByAppointmentID(ctx context.Context, appointmentID uuid.UUID) ([]entity.Order, error)
	ListIDsInRange(ctx context.Context, start, end *time.Time) ([]uuid.UUID, error)
	ListUnsettled(ctx context.Context) ([]entity.Order, error)
	DetachClient(ctx context.Context, clientID uuid.UUID) error
}

// OrderItemRepository defines the interface for order line-item rows
type OrderItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
	DeleteByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error
}
