package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/pkg/apperror"
)

// AppointmentService manages scheduled visits. Multi-expert bookings are
// stored as one appointment row per stylist, linked by a shared booking id.
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	aggregator      *AggregatorService
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(appointmentRepo repository.AppointmentRepository, aggregator *AggregatorService) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		aggregator:      aggregator,
	}
}

// AppointmentStylist is one stylist's share of a booking
type AppointmentStylist struct {
	StylistID   *uuid.UUID
	StylistName string
	Services    []entity.LineItem
}

// CreateAppointmentInput represents a booking request; one row is created
// per stylist.
type CreateAppointmentInput struct {
	ClientID   *uuid.UUID
	ClientName string
	StartTime  time.Time
	EndTime    time.Time
	Notes      string
	Stylists   []AppointmentStylist
}

// CreateAppointment books a visit. Bookings with several stylists become
// sibling rows sharing one booking id so they can be re-assembled later.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) ([]entity.Appointment, error) {
	if input.ClientName == "" {
		return nil, apperror.NewValidationError("Client name is required")
	}
	if len(input.Stylists) == 0 {
		return nil, apperror.NewValidationError("At least one stylist is required")
	}

	var bookingID *uuid.UUID
	if len(input.Stylists) > 1 {
		id := uuid.New()
		bookingID = &id
	}

	created := make([]entity.Appointment, 0, len(input.Stylists))
	for _, st := range input.Stylists {
		appointment := &entity.Appointment{
			BookingID:   bookingID,
			ClientID:    input.ClientID,
			ClientName:  input.ClientName,
			StylistID:   st.StylistID,
			StylistName: st.StylistName,
			Services:    st.Services,
			StartTime:   input.StartTime,
			EndTime:     input.EndTime,
			Status:      "scheduled",
			Notes:       input.Notes,
		}
		if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
			return nil, apperror.NewStoreError("creating appointment", err)
		}
		created = append(created, *appointment)
	}
	return created, nil
}

// GetAppointment retrieves an appointment by ID
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreError("loading appointment", err)
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appointment, nil
}

// ListAppointments returns appointments inside the window, multi-stylist
// bookings collapsed into one logical appointment each.
func (s *AppointmentService) ListAppointments(ctx context.Context, start, end *time.Time) ([]entity.Appointment, error) {
	appointments, err := s.appointmentRepo.List(ctx, start, end)
	if err != nil {
		return nil, apperror.NewStoreError("listing appointments", err)
	}
	return s.aggregator.AggregateAppointments(appointments), nil
}

// UpdateAppointmentInput represents an appointment edit; nil fields are left
// unchanged.
type UpdateAppointmentInput struct {
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
	Notes     *string
	Services  []entity.LineItem
}

// UpdateAppointment applies a partial update to an appointment
func (s *AppointmentService) UpdateAppointment(ctx context.Context, id uuid.UUID, input *UpdateAppointmentInput) (*entity.Appointment, error) {
	if _, err := s.GetAppointment(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.StartTime != nil {
		fields["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		fields["end_time"] = *input.EndTime
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	if input.Services != nil {
		fields["services"] = entity.LineItems(input.Services)
	}
	if len(fields) == 0 {
		return s.GetAppointment(ctx, id)
	}

	if err := s.appointmentRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, apperror.NewStoreError("updating appointment", err)
	}
	return s.GetAppointment(ctx, id)
}

// DeleteAppointment removes an appointment
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAppointment(ctx, id); err != nil {
		return err
	}
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return apperror.NewStoreError("deleting appointment", err)
	}
	return nil
}
