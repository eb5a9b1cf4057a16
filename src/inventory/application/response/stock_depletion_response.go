package response

import "time"

// StockDepletionResponse registro de producto agotado listo para el reporte
type StockDepletionResponse struct {
	ID              int64      `json:"id"`
	ProductID       int64      `json:"product_id"`
	ProductName     string     `json:"product_name"`
	CategoryID      int64      `json:"category_id"`
	PeriodStart     *time.Time `json:"period_start"`
	DepletedAt      time.Time  `json:"depleted_at"`
	InitialQuantity int        `json:"initial_quantity"`
	QuantitySold    int        `json:"quantity_sold"`
	LifetimeDays    *int       `json:"lifetime_days"`
}

// StockDepletionListResponse listado completo, sin paginación
type StockDepletionListResponse struct {
	Items      []StockDepletionResponse `json:"items"`
	TotalCount int                      `json:"total_count"`
}
