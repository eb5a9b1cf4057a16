package request

import "github.com/gandallf070/trebol/src/sales/domain/entity"

// ReturnItemRequest producto y cantidad a devolver
type ReturnItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// ReturnLinesRequest request de devolución sobre una venta existente.
// La validación contra la venta la hace entity.Sale.ResolveReturn.
type ReturnLinesRequest struct {
	Items []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ToReturnItems convierte al tipo del dominio
func (r *ReturnLinesRequest) ToReturnItems() []entity.ReturnItem {
	items := make([]entity.ReturnItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entity.ReturnItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return items
}
