package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/gandallf070/trebol/src/sales/domain/entity"
	"github.com/gandallf070/trebol/src/sales/domain/port"
	sharedMemory "github.com/gandallf070/trebol/src/shared/infrastructure/memory"
)

// SaleMemoryRepository implementa SaleRepository en memoria.
// Los vendedores se registran con AddSeller, igual que la FK de sales.seller_id.
type SaleMemoryRepository struct {
	mu         sync.RWMutex
	sales      map[int64]entity.Sale
	sellers    map[int64]struct{}
	nextSaleID int64
	nextLineID int64
}

// NewSaleMemoryRepository crea un repositorio vacío
func NewSaleMemoryRepository() *SaleMemoryRepository {
	return &SaleMemoryRepository{
		sales:   make(map[int64]entity.Sale),
		sellers: make(map[int64]struct{}),
	}
}

var _ port.SaleRepository = (*SaleMemoryRepository)(nil)

// AddSeller habilita un vendedor
func (r *SaleMemoryRepository) AddSeller(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sellers[id] = struct{}{}
}

func (r *SaleMemoryRepository) Create(ctx context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sellers[sale.SellerID]; !ok {
		return entity.ErrSellerNotFound
	}

	r.nextSaleID++
	sale.ID = r.nextSaleID
	for i := range sale.Lines {
		r.nextLineID++
		sale.Lines[i].ID = r.nextLineID
		sale.Lines[i].SaleID = sale.ID
	}

	stored := *sale
	stored.Lines = slices.Clone(sale.Lines)
	r.sales[sale.ID] = stored

	saleID := sale.ID
	sharedMemory.OnRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.sales, saleID)
	})
	return nil
}

func (r *SaleMemoryRepository) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sale, ok := r.sales[id]
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	sale.Lines = slices.Clone(sale.Lines)
	return &sale, nil
}

// Count cantidad de ventas guardadas
func (r *SaleMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sales)
}
