package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gandallf070/trebol/src/inventory/domain/entity"
	"github.com/gandallf070/trebol/src/inventory/domain/port"
	sharedMemory "github.com/gandallf070/trebol/src/shared/infrastructure/memory"
)

// StockDepletionMemoryRepository implementa StockDepletionRepository en memoria
type StockDepletionMemoryRepository struct {
	mu        sync.RWMutex
	byProduct map[int64]entity.StockDepletion
	nextID    int64
}

// NewStockDepletionMemoryRepository crea un repositorio vacío
func NewStockDepletionMemoryRepository() *StockDepletionMemoryRepository {
	return &StockDepletionMemoryRepository{
		byProduct: make(map[int64]entity.StockDepletion),
	}
}

var _ port.StockDepletionRepository = (*StockDepletionMemoryRepository)(nil)

// CreateIfAbsent respeta la unicidad por producto
func (r *StockDepletionMemoryRepository) CreateIfAbsent(ctx context.Context, depletion *entity.StockDepletion) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byProduct[depletion.ProductID]; exists {
		return false, nil
	}

	r.nextID++
	depletion.ID = r.nextID
	r.byProduct[depletion.ProductID] = *depletion

	productID := depletion.ProductID
	sharedMemory.OnRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.byProduct, productID)
	})
	return true, nil
}

// FindByProductID devuelve nil si no hay registro
func (r *StockDepletionMemoryRepository) FindByProductID(ctx context.Context, productID int64) (*entity.StockDepletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	depletion, ok := r.byProduct[productID]
	if !ok {
		return nil, nil
	}
	return &depletion, nil
}

// List ordena por depleted_at descendente
func (r *StockDepletionMemoryRepository) List(ctx context.Context) ([]*entity.StockDepletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.StockDepletion, 0, len(r.byProduct))
	for _, d := range r.byProduct {
		d := d
		out = append(out, &d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DepletedAt.Equal(out[j].DepletedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].DepletedAt.After(out[j].DepletedAt)
	})
	return out, nil
}
