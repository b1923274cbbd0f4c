package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	domainRepo "github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/pkg/pagination"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) FindByName(ctx context.Context, fullName string) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).
		Where("lower(full_name) = lower(?)", strings.TrimSpace(fullName)).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) FindConflict(ctx context.Context, fullName, phone, email string) (*entity.Client, string, error) {
	var client entity.Client

	err := r.db.WithContext(ctx).
		Where("lower(full_name) = lower(?)", strings.TrimSpace(fullName)).
		First(&client).Error
	if err == nil {
		return &client, "name", nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	if phone != "" {
		err = r.db.WithContext(ctx).Where("phone = ?", phone).First(&client).Error
		if err == nil {
			return &client, "phone", nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
	}

	if email != "" {
		err = r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&client).Error
		if err == nil {
			return &client, "email", nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
	}

	return nil, "", nil
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entity.Client{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Client{}, "id = ?", id).Error
}

func (r *clientRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	var clients []entity.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Client{})

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("full_name ASC").
		Find(&clients).Error

	return clients, total, err
}

func (r *clientRepository) ListWithDuePending(ctx context.Context, asOf time.Time) ([]entity.Client, error) {
	var clients []entity.Client
	err := r.db.WithContext(ctx).
		Where("pending_payment > 0 AND pending_payment_receiving_date IS NOT NULL AND pending_payment_receiving_date <= ?", asOf).
		Order("pending_payment_receiving_date ASC").
		Find(&clients).Error
	return clients, err
}

type pendingPaymentRepository struct {
	db *gorm.DB
}

// NewPendingPaymentRepository creates a new pending payment history repository
func NewPendingPaymentRepository(db *gorm.DB) domainRepo.PendingPaymentRepository {
	return &pendingPaymentRepository{db: db}
}

func (r *pendingPaymentRepository) Create(ctx context.Context, payment *entity.PendingPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *pendingPaymentRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.PendingPayment, error) {
	var payments []entity.PendingPayment
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}
