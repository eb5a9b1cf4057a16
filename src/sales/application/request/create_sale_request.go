package request

// SaleLineRequest producto y cantidad de una línea
type SaleLineRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest request para registrar una venta multi-línea.
// El vendedor no viaja en el body: sale del header X-Seller-ID.
type CreateSaleRequest struct {
	CustomerID int64             `json:"customer_id" binding:"required,gt=0"`
	Lines      []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ProductIDs IDs de producto en el orden de las líneas, con repetidos
func (r *CreateSaleRequest) ProductIDs() []int64 {
	ids := make([]int64, 0, len(r.Lines))
	for _, line := range r.Lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}
