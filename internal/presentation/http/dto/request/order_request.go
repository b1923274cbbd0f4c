package request

import (
	"time"

	"github.com/google/uuid"
)

// OrderLineRequest is one service or product line on an order
type OrderLineRequest struct {
	ServiceID      string  `json:"service_id" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Price          float64 `json:"price" binding:"min=0"`
	Quantity       int     `json:"quantity" binding:"omitempty,min=1"`
	GSTPercentage  float64 `json:"gst_percentage" binding:"omitempty,min=0,max=100"`
	HSNCode        string  `json:"hsn_code"`
	DurationMonths int     `json:"duration_months" binding:"omitempty,min=0"`
	BenefitAmount  float64 `json:"benefit_amount" binding:"omitempty,min=0"`
}

// PaymentRequest is one payment slice on an order
type PaymentRequest struct {
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	PaymentMethod string     `json:"payment_method" binding:"required"`
	PaymentDate   *time.Time `json:"payment_date"`
}

// CreateOrderRequest represents a walk-in sale
type CreateOrderRequest struct {
	CustomerName       string             `json:"customer_name" binding:"required,min=1,max=255"`
	ClientID           *uuid.UUID         `json:"client_id"`
	Services           []OrderLineRequest `json:"services" binding:"omitempty,dive"`
	Products           []OrderLineRequest `json:"products" binding:"omitempty,dive"`
	PaymentMethod      string             `json:"payment_method" binding:"required"`
	Payments           []PaymentRequest   `json:"payments" binding:"omitempty,dive"`
	Discount           float64            `json:"discount" binding:"omitempty,min=0"`
	StylistID          *uuid.UUID         `json:"stylist_id"`
	StylistName        string             `json:"stylist_name"`
	IsSalonConsumption bool               `json:"is_salon_consumption"`
	ConsumptionPurpose string             `json:"consumption_purpose"`
}

// UpdateOrderRequest represents an order edit
type UpdateOrderRequest struct {
	ClientName    *string            `json:"client_name" binding:"omitempty,min=1,max=255"`
	StylistID     *uuid.UUID         `json:"stylist_id"`
	StylistName   *string            `json:"stylist_name"`
	Services      []OrderLineRequest `json:"services" binding:"omitempty,dive"`
	Subtotal      *float64           `json:"subtotal" binding:"omitempty,min=0"`
	Tax           *float64           `json:"tax" binding:"omitempty,min=0"`
	Discount      *float64           `json:"discount" binding:"omitempty,min=0"`
	Total         *float64           `json:"total" binding:"omitempty,min=0"`
	PaymentMethod *string            `json:"payment_method"`
	Status        *string            `json:"status"`
}

// AppointmentPaymentRequest settles an appointment into an order
type AppointmentPaymentRequest struct {
	AppointmentID uuid.UUID        `json:"appointment_id" binding:"required"`
	PaymentMethod string           `json:"payment_method" binding:"required"`
	Payments      []PaymentRequest `json:"payments" binding:"omitempty,dive"`
	Discount      float64          `json:"discount" binding:"omitempty,min=0"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	Search           string `form:"search"`
	Status           string `form:"status"`
	ClientID         string `form:"client_id"`
	StartDate        string `form:"start_date"`
	EndDate          string `form:"end_date"`
	SalonConsumption string `form:"salon_consumption"`
	SortBy           string `form:"sort_by"`
	SortOrder        string `form:"sort_order"`
	Page             int    `form:"page"`
	PerPage          int    `form:"per_page"`
}

// DeleteOrdersRangeRequest bounds a bulk order purge
type DeleteOrdersRangeRequest struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}
