package request

import "time"

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	FullName  string     `json:"full_name" binding:"required,min=2,max=255"`
	Phone     string     `json:"phone" binding:"omitempty,max=20"`
	Email     string     `json:"email" binding:"omitempty,email"`
	Gender    string     `json:"gender" binding:"omitempty,oneof=male female other"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `json:"notes"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	FullName  *string    `json:"full_name" binding:"omitempty,min=2,max=255"`
	Phone     *string    `json:"phone" binding:"omitempty,max=20"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Gender    *string    `json:"gender" binding:"omitempty,oneof=male female other"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     *string    `json:"notes"`
}

// PendingPaymentRequest represents a settlement against a client's
// outstanding balance
type PendingPaymentRequest struct {
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	PaymentMethod string     `json:"payment_method" binding:"required"`
	PaymentDate   *time.Time `json:"payment_date"`
	Note          string     `json:"note"`
}
