package request

// CreateTierRequest represents a membership tier creation request
type CreateTierRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=255"`
	Price          float64 `json:"price" binding:"min=0"`
	DurationMonths int     `json:"duration_months" binding:"omitempty,min=1,max=120"`
	BenefitAmount  float64 `json:"benefit_amount" binding:"omitempty,min=0"`
	Description    string  `json:"description"`
}
