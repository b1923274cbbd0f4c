package request

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStylistRequest is one stylist's share of a booking
type AppointmentStylistRequest struct {
	StylistID   *uuid.UUID         `json:"stylist_id"`
	StylistName string             `json:"stylist_name" binding:"required"`
	Services    []OrderLineRequest `json:"services" binding:"omitempty,dive"`
}

// CreateAppointmentRequest represents a booking request
type CreateAppointmentRequest struct {
	ClientID   *uuid.UUID                  `json:"client_id"`
	ClientName string                      `json:"client_name" binding:"required,min=1,max=255"`
	StartTime  time.Time                   `json:"start_time" binding:"required"`
	EndTime    time.Time                   `json:"end_time"`
	Notes      string                      `json:"notes"`
	Stylists   []AppointmentStylistRequest `json:"stylists" binding:"required,min=1,dive"`
}

// UpdateAppointmentRequest represents an appointment edit
type UpdateAppointmentRequest struct {
	StartTime *time.Time         `json:"start_time"`
	EndTime   *time.Time         `json:"end_time"`
	Status    *string            `json:"status" binding:"omitempty,oneof=scheduled confirmed completed cancelled no_show"`
	Notes     *string            `json:"notes"`
	Services  []OrderLineRequest `json:"services" binding:"omitempty,dive"`
}
