package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rgsalon/salonpos-api/internal/domain/entity"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, start, end *time.Time) ([]entity.Appointment, error)
	ListByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Appointment, error)
	DetachClient(ctx context.Context, clientID uuid.UUID) error
}
