package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment represents a scheduled client visit. A multi-expert visit is
// stored as sibling rows sharing BookingID, one per stylist.
type Appointment struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BookingID   *uuid.UUID     `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	ClientID    *uuid.UUID     `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName  string         `gorm:"size:255;not null" json:"client_name"`
	StylistID   *uuid.UUID     `gorm:"type:uuid;index" json:"stylist_id,omitempty"`
	StylistName string         `gorm:"size:255" json:"stylist_name"`
	Services    LineItems      `gorm:"type:jsonb" json:"services"`
	StartTime   time.Time      `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time      `json:"end_time"`
	Status      string         `gorm:"size:30;default:'scheduled'" json:"status"`
	Paid        bool           `gorm:"default:false" json:"paid"`
	Notes       string         `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
