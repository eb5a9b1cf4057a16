package port

import (
	"context"

	inventoryEntity "github.com/gandallf070/trebol/src/inventory/domain/entity"
)

// InventoryLedger accesos bloqueantes al stock que usan ventas y devoluciones.
// Lo implementa el servicio InventoryLedger del contexto de inventario.
type InventoryLedger interface {
	// LockAll bloquea en orden ascendente de ID; los IDs inexistentes quedan
	// fuera del mapa sin error
	LockAll(ctx context.Context, productIDs []int64) (map[int64]*inventoryEntity.Product, error)
	Decrement(ctx context.Context, product *inventoryEntity.Product, quantity int) (*inventoryEntity.Product, error)
	Increment(ctx context.Context, product *inventoryEntity.Product, quantity int) (*inventoryEntity.Product, error)
}
