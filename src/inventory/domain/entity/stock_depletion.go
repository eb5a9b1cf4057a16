package entity

import (
	"math"
	"time"
)

// StockDepletion registra la primera vez que un producto se agotó.
// Hay a lo sumo uno por producto.
type StockDepletion struct {
	ID              int64      `json:"id"`
	ProductID       int64      `json:"product_id"`
	PeriodStart     *time.Time `json:"period_start"`
	DepletedAt      time.Time  `json:"depleted_at"`
	InitialQuantity int        `json:"initial_quantity"`
	QuantitySold    int        `json:"quantity_sold"`
	LifetimeDays    *int       `json:"lifetime_days"`
}

// NewStockDepletion crea el registro. Si lifetimeDays es nil se calcula como
// días completos entre periodStart y depletedAt; sin periodStart queda nil
// para completarlo a mano.
func NewStockDepletion(
	productID int64,
	initialQuantity int,
	quantitySold int,
	periodStart *time.Time,
	lifetimeDays *int,
	depletedAt time.Time,
) (*StockDepletion, error) {
	if productID <= 0 {
		return nil, ErrProductNotFound
	}
	if initialQuantity < 0 || quantitySold < 0 {
		return nil, ErrInvalidDepletionQuantities
	}

	if lifetimeDays == nil && periodStart != nil {
		days := LifetimeDays(*periodStart, depletedAt)
		lifetimeDays = &days
	}

	return &StockDepletion{
		ProductID:       productID,
		PeriodStart:     periodStart,
		DepletedAt:      depletedAt,
		InitialQuantity: initialQuantity,
		QuantitySold:    quantitySold,
		LifetimeDays:    lifetimeDays,
	}, nil
}

// LifetimeDays días completos entre from y to, redondeando hacia abajo
func LifetimeDays(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
