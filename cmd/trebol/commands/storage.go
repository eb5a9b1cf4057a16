package commands

import (
	"context"
	"database/sql"
	"time"

	inventoryEntity "github.com/gandallf070/trebol/src/inventory/domain/entity"
	inventoryPort "github.com/gandallf070/trebol/src/inventory/domain/port"
	inventoryMemory "github.com/gandallf070/trebol/src/inventory/infrastructure/memory"
	inventoryPersistence "github.com/gandallf070/trebol/src/inventory/infrastructure/persistence"
	salesEntity "github.com/gandallf070/trebol/src/sales/domain/entity"
	salesPort "github.com/gandallf070/trebol/src/sales/domain/port"
	salesMemory "github.com/gandallf070/trebol/src/sales/infrastructure/memory"
	salesPersistence "github.com/gandallf070/trebol/src/sales/infrastructure/persistence"
	sharedPort "github.com/gandallf070/trebol/src/shared/domain/port"
	"github.com/gandallf070/trebol/src/shared/infrastructure/database"
	"github.com/gandallf070/trebol/src/shared/infrastructure/memory"

	"github.com/shopspring/decimal"
)

// storage agrupa los adaptadores de persistencia de un backend
type storage struct {
	name       string
	transactor sharedPort.Transactor
	products   inventoryPort.ProductRepository
	depletions inventoryPort.StockDepletionRepository
	customers  salesPort.CustomerRepository
	sales      salesPort.SaleRepository
	ping       func(ctx context.Context) error
	close      func() error

	// sólo en memoria, para cargar datos de ejemplo
	memProducts  *inventoryMemory.ProductMemoryRepository
	memCustomers *salesMemory.CustomerMemoryRepository
	memSales     *salesMemory.SaleMemoryRepository
}

func (s *storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func newPostgresStorage(db *sql.DB) *storage {
	return &storage{
		name:       "postgres",
		transactor: database.NewPostgresTransactor(db),
		products:   inventoryPersistence.NewProductPostgresRepository(db),
		depletions: inventoryPersistence.NewStockDepletionPostgresRepository(db),
		customers:  salesPersistence.NewCustomerPostgresRepository(db),
		sales:      salesPersistence.NewSalePostgresRepository(db),
		ping:       db.PingContext,
		close:      db.Close,
	}
}

func newMemoryStorage() *storage {
	products := inventoryMemory.NewProductMemoryRepository()
	customers := salesMemory.NewCustomerMemoryRepository()
	sales := salesMemory.NewSaleMemoryRepository()

	return &storage{
		name:         "memory",
		transactor:   memory.NewTransactor(),
		products:     products,
		depletions:   inventoryMemory.NewStockDepletionMemoryRepository(),
		customers:    customers,
		sales:        sales,
		ping:         func(context.Context) error { return nil },
		memProducts:  products,
		memCustomers: customers,
		memSales:     sales,
	}
}

// seedDemoData carga un vendedor, un cliente y un catálogo chico
func seedDemoData(s *storage) {
	if s.memProducts == nil {
		return
	}

	s.memSales.AddSeller(1)
	s.memCustomers.Add(salesEntity.Customer{
		ID:         1,
		NationalID: "4567890",
		FirstName:  "Consumidor",
		LastName:   "Final",
		CreatedAt:  time.Now(),
	})

	catalog := []struct {
		name  string
		price string
		qty   int
	}{
		{"Arroz 1kg", "8.50", 40},
		{"Aceite 900ml", "15.90", 12},
		{"Yerba 500g", "12.00", 25},
		{"Azúcar 1kg", "6.75", 3},
	}
	for i, p := range catalog {
		s.memProducts.Add(inventoryEntity.Product{
			ID:                int64(i + 1),
			CategoryID:        1,
			Name:              p.name,
			Price:             decimal.RequireFromString(p.price),
			AvailableQuantity: p.qty,
			Active:            true,
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
		})
	}
}
