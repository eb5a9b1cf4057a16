package port

import (
	"context"

	"github.com/gandallf070/trebol/src/inventory/domain/entity"
)

// StockDepletionRepository persiste los registros de productos agotados
type StockDepletionRepository interface {
	// CreateIfAbsent inserta el registro y completa su ID. Si ya existe uno
	// para el producto no modifica nada y devuelve false.
	CreateIfAbsent(ctx context.Context, depletion *entity.StockDepletion) (bool, error)

	// FindByProductID devuelve el registro del producto o nil si no existe
	FindByProductID(ctx context.Context, productID int64) (*entity.StockDepletion, error)

	// List devuelve todos los registros, los más recientes primero
	List(ctx context.Context) ([]*entity.StockDepletion, error)
}
