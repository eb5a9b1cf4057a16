package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReturnItem producto y cantidad que el cliente devuelve
type ReturnItem struct {
	ProductID int64
	Quantity  int
}

// ResolvedReturnLine ítem de devolución ya validado contra la venta.
// Se construye sólo con Sale.ResolveReturn.
type ResolvedReturnLine struct {
	ProductID    int64
	ProductName  string
	SoldQuantity int
	Quantity     int
}

// ResolveReturn valida cada ítem contra las líneas de la venta.
// Cada ítem se compara con lo vendido originalmente, sin descontar
// devoluciones anteriores.
func (s *Sale) ResolveReturn(items []ReturnItem) ([]ResolvedReturnLine, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Field: "items", Err: ErrReturnMustHaveItems}
	}

	resolved := make([]ResolvedReturnLine, 0, len(items))
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, &ValidationError{Field: "quantity", Line: i + 1, Err: ErrInvalidQuantity}
		}

		sold, name, found := s.SoldQuantity(item.ProductID)
		if !found {
			return nil, &ValidationError{
				Field: "product_id",
				Line:  i + 1,
				Err:   &LineNotFoundError{SaleID: s.ID, ProductID: item.ProductID},
			}
		}
		if item.Quantity > sold {
			return nil, &ValidationError{
				Field: "quantity",
				Line:  i + 1,
				Err: &ExcessiveReturnError{
					ProductID:   item.ProductID,
					ProductName: name,
					Sold:        sold,
					Requested:   item.Quantity,
				},
			}
		}

		resolved = append(resolved, ResolvedReturnLine{
			ProductID:    item.ProductID,
			ProductName:  name,
			SoldQuantity: sold,
			Quantity:     item.Quantity,
		})
	}

	return resolved, nil
}

// ReturnedItem producto repuesto en el inventario
type ReturnedItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// ReturnReceipt comprobante de una devolución. No se persiste.
type ReturnReceipt struct {
	ID          uuid.UUID      `json:"id"`
	SaleID      int64          `json:"sale_id"`
	Items       []ReturnedItem `json:"items"`
	ProcessedAt time.Time      `json:"processed_at"`
}

// NewReturnReceipt arma el comprobante en el orden de los ítems recibidos
func NewReturnReceipt(saleID int64, lines []ResolvedReturnLine, processedAt time.Time) *ReturnReceipt {
	items := make([]ReturnedItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, ReturnedItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
		})
	}

	return &ReturnReceipt{
		ID:          uuid.New(),
		SaleID:      saleID,
		Items:       items,
		ProcessedAt: processedAt,
	}
}

// TotalUnits unidades repuestas en total
func (r *ReturnReceipt) TotalUnits() int {
	total := 0
	for _, item := range r.Items {
		total += item.Quantity
	}
	return total
}
