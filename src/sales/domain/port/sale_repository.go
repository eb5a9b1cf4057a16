package port

import (
	"context"

	"github.com/gandallf070/trebol/src/sales/domain/entity"
)

// SaleRepository define el contrato para persistir ventas.
// Sin Update ni Delete: una venta no cambia después de creada.
type SaleRepository interface {
	// Create persiste la venta con sus líneas y asigna los IDs.
	// Un vendedor inexistente devuelve entity.ErrSellerNotFound.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID devuelve la venta con sus líneas en el orden en que se cargaron
	FindByID(ctx context.Context, id int64) (*entity.Sale, error)
}
