package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a salon client and their running financial ledger.
// TotalSpent only reflects amounts actually received; BNPL amounts sit in
// PendingPayment until settled.
type Client struct {
	ID                          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FullName                    string         `gorm:"size:255;not null;uniqueIndex:idx_clients_full_name_ci,expression:lower(full_name)" json:"full_name"`
	Phone                       string         `gorm:"size:50" json:"phone"`
	Email                       string         `gorm:"size:255" json:"email"`
	Gender                      string         `gorm:"size:20" json:"gender"`
	BirthDate                   *time.Time     `gorm:"type:date" json:"birth_date,omitempty"`
	Notes                       string         `gorm:"type:text" json:"notes"`
	TotalSpent                  float64        `gorm:"type:decimal(12,2);default:0" json:"total_spent"`
	PendingPayment              float64        `gorm:"type:decimal(12,2);default:0" json:"pending_payment"`
	PendingPaymentReceivingDate *time.Time     `gorm:"type:date" json:"pending_payment_receiving_date,omitempty"`
	LastVisit                   *time.Time     `json:"last_visit,omitempty"`
	AppointmentCount            int            `gorm:"default:0" json:"appointment_count"`
	CreatedAt                   time.Time      `json:"created_at"`
	UpdatedAt                   time.Time      `json:"updated_at"`
	DeletedAt                   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Orders          []Order          `gorm:"foreignKey:ClientID" json:"-"`
	Appointments    []Appointment    `gorm:"foreignKey:ClientID" json:"-"`
	PendingPayments []PendingPayment `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// PendingPayment records one BNPL settlement against a client's pending
// balance.
type PendingPayment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	ClientName    string    `gorm:"size:255" json:"client_name"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`
	Note          string    `gorm:"type:text" json:"note"`
	CreatedAt     time.Time `json:"created_at"`

	Client Client `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new pending payment record
func (p *PendingPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PendingPayment model
func (PendingPayment) TableName() string {
	return "pending_payment_history"
}
