package entity

import "github.com/shopspring/decimal"

// SaleLine representa una línea dentro de una venta (Entity dentro del Aggregate).
// UnitPrice es una foto del precio al momento de la venta.
type SaleLine struct {
	ID          int64           `json:"id"`
	SaleID      int64           `json:"sale_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// NewSaleLine crea una línea y calcula su subtotal
func NewSaleLine(
	productID int64,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
) (*SaleLine, error) {
	if productID <= 0 {
		return nil, ErrProductRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &SaleLine{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}
