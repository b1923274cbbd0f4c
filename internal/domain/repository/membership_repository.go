package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgsalon/salonpos-api/internal/domain/entity"
)

// MembershipTierRepository defines the interface for membership tier lookups
type MembershipTierRepository interface {
	Create(ctx context.Context, tier *entity.MembershipTier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MembershipTier, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MembershipTier, error)
	List(ctx context.Context) ([]entity.MembershipTier, error)
}

// MemberRepository defines the interface for purchased membership records
type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Member, error)
}
