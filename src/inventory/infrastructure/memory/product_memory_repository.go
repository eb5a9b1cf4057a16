package memory

import (
	"context"
	"sync"

	"github.com/gandallf070/trebol/src/inventory/domain/entity"
	"github.com/gandallf070/trebol/src/inventory/domain/port"
	sharedMemory "github.com/gandallf070/trebol/src/shared/infrastructure/memory"
)

// ProductMemoryRepository implementa ProductRepository en memoria.
// El lock de fila lo provee el transactor en memoria, que serializa las
// transacciones; este repositorio sólo protege el mapa.
type ProductMemoryRepository struct {
	mu       sync.RWMutex
	products map[int64]entity.Product
	nextID   int64
}

// NewProductMemoryRepository crea un repositorio vacío
func NewProductMemoryRepository() *ProductMemoryRepository {
	return &ProductMemoryRepository{
		products: make(map[int64]entity.Product),
	}
}

var _ port.ProductRepository = (*ProductMemoryRepository)(nil)

// Add carga un producto (alta de catálogo). Si ID es 0 se asigna uno.
func (r *ProductMemoryRepository) Add(product entity.Product) entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		r.nextID++
		product.ID = r.nextID
	} else if product.ID > r.nextID {
		r.nextID = product.ID
	}
	r.products[product.ID] = product
	return product
}

// FindByID lectura sin lock
func (r *ProductMemoryRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, &entity.ProductNotFoundError{ProductID: id}
	}
	return &product, nil
}

// FindByIDForUpdate equivale a FindByID: la exclusión la da el transactor
func (r *ProductMemoryRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.FindByID(ctx, id)
}

// UpdateStock guarda cantidad y estado, registrando el valor previo para rollback
func (r *ProductMemoryRepository) UpdateStock(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, ok := r.products[product.ID]
	if !ok {
		return &entity.ProductNotFoundError{ProductID: product.ID}
	}

	updated := previous
	updated.AvailableQuantity = product.AvailableQuantity
	updated.Active = product.Active
	updated.UpdatedAt = product.UpdatedAt
	r.products[product.ID] = updated

	sharedMemory.OnRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.products[previous.ID] = previous
	})
	return nil
}
