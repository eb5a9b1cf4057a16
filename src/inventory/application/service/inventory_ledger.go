package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gandallf070/trebol/src/inventory/domain/entity"
	"github.com/gandallf070/trebol/src/inventory/domain/port"

	"go.uber.org/zap"
)

// InventoryLedger es el único punto de escritura de available_quantity y
// active. Todos sus métodos deben llamarse dentro de port.Transactor.WithinTx:
// los locks que toma duran hasta el commit o rollback de esa transacción.
type InventoryLedger struct {
	products port.ProductRepository
	recorder *StockDepletionRecorder
	logger   *zap.Logger
}

// NewInventoryLedger crea una nueva instancia del ledger
func NewInventoryLedger(products port.ProductRepository, recorder *StockDepletionRecorder, logger *zap.Logger) *InventoryLedger {
	return &InventoryLedger{
		products: products,
		recorder: recorder,
		logger:   logger,
	}
}

// Lock bloquea la fila del producto
func (l *InventoryLedger) Lock(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := l.products.FindByIDForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// LockAll bloquea los productos en orden ascendente de ID, sin importar el
// orden recibido, para que dos transacciones sobre el mismo conjunto no se
// bloqueen mutuamente. Los IDs repetidos se bloquean una sola vez.
// Los productos inexistentes no figuran en el mapa: el llamador decide en qué
// orden reportarlos.
func (l *InventoryLedger) LockAll(ctx context.Context, productIDs []int64) (map[int64]*entity.Product, error) {
	ids := slices.Clone(productIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	locked := make(map[int64]*entity.Product, len(ids))
	for _, id := range ids {
		product, err := l.Lock(ctx, id)
		if errors.Is(err, entity.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		locked[id] = product
	}
	return locked, nil
}

// Decrement descuenta quantity de un producto ya bloqueado y lo persiste.
// Si el producto llega a cero se registra el agotamiento con la cantidad
// previa a este descuento como cantidad inicial.
func (l *InventoryLedger) Decrement(ctx context.Context, product *entity.Product, quantity int) (*entity.Product, error) {
	before, depleted, err := product.Decrement(quantity)
	if err != nil {
		return nil, err
	}

	if err := l.products.UpdateStock(ctx, product); err != nil {
		return nil, err
	}

	if depleted {
		periodStart := product.CreatedAt
		_, err := l.recorder.RecordDepletion(ctx, DepletionInput{
			ProductID:       product.ID,
			InitialQuantity: before,
			QuantitySold:    quantity,
			PeriodStart:     &periodStart,
		})
		switch {
		case errors.Is(err, entity.ErrStockDepletionAlreadyRecorded):
			l.logger.Debug("stock depletion already recorded, skipping",
				zap.Int64("productId", product.ID))
		case err != nil:
			return nil, fmt.Errorf("error recording depletion: %w", err)
		}
	}

	return product, nil
}

// Increment repone quantity en un producto ya bloqueado y lo persiste
func (l *InventoryLedger) Increment(ctx context.Context, product *entity.Product, quantity int) (*entity.Product, error) {
	if err := product.Increment(quantity); err != nil {
		return nil, err
	}

	if err := l.products.UpdateStock(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
