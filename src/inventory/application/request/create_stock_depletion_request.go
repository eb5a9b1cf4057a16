package request

import "time"

// CreateStockDepletionRequest alta manual de un producto agotado (carga histórica)
type CreateStockDepletionRequest struct {
	ProductID       int64      `json:"product_id" binding:"required,gt=0"`
	PeriodStart     *time.Time `json:"period_start"`
	InitialQuantity int        `json:"initial_quantity" binding:"gte=0"`
	QuantitySold    int        `json:"quantity_sold" binding:"gte=0"`
	LifetimeDays    *int       `json:"lifetime_days" binding:"omitempty,gte=0"`
}
