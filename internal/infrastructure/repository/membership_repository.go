package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	domainRepo "github.com/rgsalon/salonpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type membershipTierRepository struct {
	db *gorm.DB
}

// NewMembershipTierRepository creates a new membership tier repository
func NewMembershipTierRepository(db *gorm.DB) domainRepo.MembershipTierRepository {
	return &membershipTierRepository{db: db}
}

func (r *membershipTierRepository) Create(ctx context.Context, tier *entity.MembershipTier) error {
	return r.db.WithContext(ctx).Create(tier).Error
}

func (r *membershipTierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MembershipTier, error) {
	var tier entity.MembershipTier
	err := r.db.WithContext(ctx).First(&tier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tier, err
}

func (r *membershipTierRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MembershipTier, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tiers []entity.MembershipTier
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tiers).Error
	return tiers, err
}

func (r *membershipTierRepository) List(ctx context.Context) ([]entity.MembershipTier, error) {
	var tiers []entity.MembershipTier
	err := r.db.WithContext(ctx).Order("price ASC").Find(&tiers).Error
	return tiers, err
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) domainRepo.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Member, error) {
	var members []entity.Member
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("purchase_date DESC").
		Find(&members).Error
	return members, err
}
