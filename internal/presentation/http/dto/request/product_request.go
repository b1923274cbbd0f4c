package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Price         float64 `json:"price" binding:"min=0"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	HSNCode       string  `json:"hsn_code" binding:"omitempty,max=50"`
	GSTPercentage float64 `json:"gst_percentage" binding:"omitempty,min=0,max=100"`
}

// AdjustStockRequest decrements a product's stock by hand, for breakage or
// back-bar use recorded outside an order
type AdjustStockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
