package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta confirmada (Aggregate Root).
// Una vez persistida no se modifica; las devoluciones sólo afectan al inventario.
type Sale struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	SellerID   int64           `json:"seller_id"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	Lines      []SaleLine      `json:"lines"`
}

// NewSale crea la venta con sus líneas; Total es la suma de los subtotales
func NewSale(customerID, sellerID int64, lines []SaleLine, createdAt time.Time) (*Sale, error) {
	if customerID <= 0 {
		return nil, &ValidationError{Field: "customer_id", Err: ErrCustomerRequired}
	}
	if sellerID <= 0 {
		return nil, &ValidationError{Field: "seller_id", Err: ErrSellerRequired}
	}
	if len(lines) == 0 {
		return nil, &ValidationError{Field: "lines", Err: ErrSaleMustHaveLines}
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}

	return &Sale{
		CustomerID: customerID,
		SellerID:   sellerID,
		Total:      total,
		CreatedAt:  createdAt,
		Lines:      lines,
	}, nil
}

// TotalItems retorna el número de líneas
func (s *Sale) TotalItems() int {
	return len(s.Lines)
}

// SoldQuantity unidades vendidas de un producto en esta venta y el nombre
// registrado en la primera línea que lo contiene
func (s *Sale) SoldQuantity(productID int64) (quantity int, productName string, found bool) {
	for _, line := range s.Lines {
		if line.ProductID != productID {
			continue
		}
		if !found {
			productName = line.ProductName
			found = true
		}
		quantity += line.Quantity
	}
	return quantity, productName, found
}
