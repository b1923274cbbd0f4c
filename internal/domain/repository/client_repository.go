package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/pkg/pagination"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	// FindByName finds a client by case-insensitive exact full-name match.
	// Returns nil without error when no client matches.
	FindByName(ctx context.Context, fullName string) (*entity.Client, error)
	// FindConflict returns the first existing client colliding with the given
	// name (ci), phone, or email (ci), along with the conflicting field name.
	FindConflict(ctx context.Context, fullName, phone, email string) (*entity.Client, string, error)
	Update(ctx context.Context, client *entity.Client) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
	// ListWithDuePending returns clients carrying a pending balance whose
	// agreed settlement date is on or before asOf.
	ListWithDuePending(ctx context.Context, asOf time.Time) ([]entity.Client, error)
}

// PendingPaymentRepository records the BNPL settlement trail
type PendingPaymentRepository interface {
	Create(ctx context.Context, payment *entity.PendingPayment) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.PendingPayment, error)
}
