package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipTier is a sellable membership plan
type MembershipTier struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name           string         `gorm:"size:255;not null;unique" json:"name"`
	Price          float64        `gorm:"type:decimal(12,2);not null" json:"price"`
	DurationMonths int            `gorm:"not null;default:12" json:"duration_months"`
	BenefitAmount  float64        `gorm:"type:decimal(12,2);default:0" json:"benefit_amount"`
	Description    string         `gorm:"type:text" json:"description"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new membership tier
func (t *MembershipTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MembershipTier model
func (MembershipTier) TableName() string {
	return "membership_tiers"
}

// Member records a client's purchased membership; ExpiresAt is the purchase
// date advanced by the tier's duration in months.
type Member struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName   string     `gorm:"size:255" json:"client_name"`
	TierID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"tier_id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	PurchaseDate time.Time  `gorm:"type:date;not null" json:"purchase_date"`
	ExpiresAt    time.Time  `gorm:"type:date;not null" json:"expires_at"`
	CreatedAt    time.Time  `json:"created_at"`

	Tier MembershipTier `gorm:"foreignKey:TierID" json:"tier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new member record
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Member model
func (Member) TableName() string {
	return "members"
}
