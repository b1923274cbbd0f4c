package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ExpertShare identifies one service provider on a multi-expert line item
type ExpertShare struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LineItem is one order line: a service, a retail product or a membership
// tier sale. Price is the unit price; the line total is Price * Quantity.
type LineItem struct {
	ServiceID      string            `json:"service_id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	Quantity       int               `json:"quantity"`
	Type           enum.LineItemType `json:"type"`
	GSTPercentage  float64           `json:"gst_percentage,omitempty"`
	HSNCode        string            `json:"hsn_code,omitempty"`
	Experts        []ExpertShare     `json:"experts,omitempty"`
	DurationMonths int               `json:"duration_months,omitempty"`
	BenefitAmount  float64           `json:"benefit_amount,omitempty"`
}

// Total returns the line total, treating a missing quantity as 1
func (li LineItem) Total() float64 {
	qty := li.Quantity
	if qty <= 0 {
		qty = 1
	}
	return li.Price * float64(qty)
}

// LineItems is stored as a JSONB column on pos_orders
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for LineItems")
}

// PaymentDetail records one payment slice against an order. The sum of all
// detail amounts plus the order's pending amount equals the order total
// within a one paise tolerance.
type PaymentDetail struct {
	ID            uuid.UUID          `json:"id"`
	Amount        float64            `json:"amount"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	PaymentDate   time.Time          `json:"payment_date"`
	Note          string             `json:"payment_note,omitempty"`
}

// PaymentList is stored as a JSONB column on pos_orders
type PaymentList []PaymentDetail

func (p PaymentList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	return string(b), err
}

func (p *PaymentList) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return errors.New("unsupported type for PaymentList")
}

// TotalPaid sums the recorded payment amounts
func (p PaymentList) TotalPaid() float64 {
	var sum float64
	for _, d := range p {
		sum += d.Amount
	}
	return sum
}

// Order represents one POS order row. A multi-expert visit is stored as
// several sibling rows sharing AppointmentID, one per expert revenue share.
type Order struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID           *uuid.UUID         `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName         string             `gorm:"size:255" json:"client_name"`
	StylistID          *uuid.UUID         `gorm:"type:uuid;index" json:"stylist_id,omitempty"`
	StylistName        string             `gorm:"size:255" json:"stylist_name"`
	AppointmentID      *uuid.UUID         `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	Services           LineItems          `gorm:"type:jsonb" json:"services"`
	Subtotal           float64            `gorm:"type:decimal(12,2);default:0" json:"subtotal"`
	Tax                float64            `gorm:"type:decimal(12,2);default:0" json:"tax"`
	Discount           float64            `gorm:"type:decimal(12,2);default:0" json:"discount"`
	Total              float64            `gorm:"type:decimal(12,2);default:0" json:"total"`
	PaymentMethod      enum.PaymentMethod `gorm:"size:50" json:"payment_method"`
	Payments           PaymentList        `gorm:"type:jsonb" json:"payments"`
	PendingAmount      float64            `gorm:"type:decimal(12,2);default:0" json:"pending_amount"`
	Status             enum.OrderStatus   `gorm:"size:20;default:'pending';index" json:"status"`
	IsWalkIn           bool               `gorm:"default:false" json:"is_walk_in"`
	IsSalonConsumption bool               `gorm:"default:false;index" json:"is_salon_consumption"`
	ConsumptionPurpose string             `gorm:"size:255" json:"consumption_purpose,omitempty"`
	MultiExpert        bool               `gorm:"default:false" json:"multi_expert"`
	TotalExperts       int                `gorm:"default:1" json:"total_experts"`
	ExpertIndex        int                `gorm:"default:1" json:"expert_index"`
	InvoiceNumber      string             `gorm:"size:100;index" json:"invoice_number"`
	StockSnapshot      string             `gorm:"type:jsonb;default:'{}'" json:"stock_snapshot"`
	CreatedAt          time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Client *Client     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "pos_orders"
}

// HasProducts reports whether any line item is a retail product
func (o *Order) HasProducts() bool {
	for _, li := range o.Services {
		if li.Type == enum.LineItemTypeProduct {
			return true
		}
	}
	return false
}

// OrderItem mirrors one order line as a child row of pos_orders, preserving
// the tax classification fields for reporting.
type OrderItem struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID         `gorm:"type:uuid;not null;index;column:pos_order_id" json:"pos_order_id"`
	ServiceID     *uuid.UUID        `gorm:"type:uuid;index" json:"service_id,omitempty"`
	ProductID     *uuid.UUID        `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	Type          enum.LineItemType `gorm:"size:20;not null" json:"type"`
	Quantity      int               `gorm:"not null;default:1" json:"quantity"`
	UnitPrice     float64           `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice    float64           `gorm:"type:decimal(12,2);not null" json:"total_price"`
	GSTPercentage float64           `gorm:"type:decimal(5,2);default:0" json:"gst_percentage"`
	HSNCode       string            `gorm:"size:50" json:"hsn_code"`
	CreatedAt     time.Time         `json:"created_at"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "pos_order_items"
}
