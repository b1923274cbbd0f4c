package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgsalon/salonpos-api/internal/domain/entity"
)

// UserRepository defines the interface for authentication accounts
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProfileRepository defines the interface for staff profile rows
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	// GetByAuthUserID resolves the profile linked to an authentication
	// account. Returns nil without error when no profile row exists.
	GetByAuthUserID(ctx context.Context, authUserID uuid.UUID) (*entity.Profile, error)
}
