package port

import (
	"context"

	"github.com/gandallf070/trebol/src/inventory/domain/entity"
)

// ProductRepository define el acceso a productos para el inventario
type ProductRepository interface {
	// FindByID lectura de display, sin lock
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDForUpdate lee y bloquea la fila hasta el fin de la transacción
	// del contexto. Devuelve *entity.ProductNotFoundError si no existe.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)

	// UpdateStock persiste available_quantity, active y updated_at
	UpdateStock(ctx context.Context, product *entity.Product) error
}
