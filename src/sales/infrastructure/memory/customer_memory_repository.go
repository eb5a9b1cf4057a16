package memory

import (
	"context"
	"sync"

	"github.com/gandallf070/trebol/src/sales/domain/entity"
	"github.com/gandallf070/trebol/src/sales/domain/port"
)

// CustomerMemoryRepository implementa CustomerRepository en memoria
type CustomerMemoryRepository struct {
	mu        sync.RWMutex
	customers map[int64]entity.Customer
	nextID    int64
}

// NewCustomerMemoryRepository crea un repositorio vacío
func NewCustomerMemoryRepository() *CustomerMemoryRepository {
	return &CustomerMemoryRepository{
		customers: make(map[int64]entity.Customer),
	}
}

var _ port.CustomerRepository = (*CustomerMemoryRepository)(nil)

// Add carga un cliente. Si ID es 0 se asigna uno.
func (r *CustomerMemoryRepository) Add(customer entity.Customer) entity.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.ID == 0 {
		r.nextID++
		customer.ID = r.nextID
	} else if customer.ID > r.nextID {
		r.nextID = customer.ID
	}
	r.customers[customer.ID] = customer
	return customer
}

func (r *CustomerMemoryRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	return &customer, nil
}
