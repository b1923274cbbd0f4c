package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/pkg/apperror"
)

// MembershipService manages the tier catalogue and purchased membership
// lookups. Member records themselves are created by the order flow when a
// membership line is sold.
type MembershipService struct {
	tierRepo   repository.MembershipTierRepository
	memberRepo repository.MemberRepository
}

// NewMembershipService creates a new membership service
func NewMembershipService(tierRepo repository.MembershipTierRepository, memberRepo repository.MemberRepository) *MembershipService {
	return &MembershipService{
		tierRepo:   tierRepo,
		memberRepo: memberRepo,
	}
}

// CreateTierInput represents a new membership tier
type CreateTierInput struct {
	Name           string
	Price          float64
	DurationMonths int
	BenefitAmount  float64
	Description    string
}

// CreateTier adds a tier to the catalogue
func (s *MembershipService) CreateTier(ctx context.Context, input *CreateTierInput) (*entity.MembershipTier, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Tier name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewValidationError("Tier price cannot be negative")
	}

	months := input.DurationMonths
	if months <= 0 {
		months = 12
	}

	tier := &entity.MembershipTier{
		Name:           input.Name,
		Price:          input.Price,
		DurationMonths: months,
		BenefitAmount:  input.BenefitAmount,
		Description:    input.Description,
	}
	if err := s.tierRepo.Create(ctx, tier); err != nil {
		return nil, apperror.NewStoreError("creating membership tier", err)
	}
	return tier, nil
}

// ListTiers returns the tier catalogue
func (s *MembershipService) ListTiers(ctx context.Context) ([]entity.MembershipTier, error) {
	return s.tierRepo.List(ctx)
}

// GetTier retrieves a tier by ID
func (s *MembershipService) GetTier(ctx context.Context, id uuid.UUID) (*entity.MembershipTier, error) {
	tier, err := s.tierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreError("loading membership tier", err)
	}
	if tier == nil {
		return nil, apperror.NewNotFoundError("Membership tier")
	}
	return tier, nil
}

// ListClientMemberships returns a client's purchased memberships
func (s *MembershipService) ListClientMemberships(ctx context.Context, clientID uuid.UUID) ([]entity.Member, error) {
	return s.memberRepo.ListByClient(ctx, clientID)
}
