package response

import (
	"time"

	"github.com/gandallf070/trebol/src/sales/domain/entity"

	"github.com/shopspring/decimal"
)

// SaleLineResponse representa una línea en la respuesta de venta
type SaleLineResponse struct {
	LineID      int64           `json:"line_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con sus líneas, lista para imprimir
type SaleResponse struct {
	SaleID     int64              `json:"sale_id"`
	CustomerID int64              `json:"customer_id"`
	SellerID   int64              `json:"seller_id"`
	Lines      []SaleLineResponse `json:"lines"`
	TotalItems int                `json:"total_items"`
	Total      decimal.Decimal    `json:"total"`
	CreatedAt  time.Time          `json:"created_at"`
}

// NewSaleResponse arma la respuesta desde el aggregate
func NewSaleResponse(sale *entity.Sale) *SaleResponse {
	lines := make([]SaleLineResponse, 0, len(sale.Lines))
	for _, line := range sale.Lines {
		lines = append(lines, SaleLineResponse{
			LineID:      line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}

	return &SaleResponse{
		SaleID:     sale.ID,
		CustomerID: sale.CustomerID,
		SellerID:   sale.SellerID,
		Lines:      lines,
		TotalItems: sale.TotalItems(),
		Total:      sale.Total,
		CreatedAt:  sale.CreatedAt,
	}
}
