package usecase

import (
	"context"
	"testing"
	"time"

	inventoryService "github.com/gandallf070/trebol/src/inventory/application/service"
	inventoryEntity "github.com/gandallf070/trebol/src/inventory/domain/entity"
	inventoryMemory "github.com/gandallf070/trebol/src/inventory/infrastructure/memory"
	"github.com/gandallf070/trebol/src/sales/application/request"
	"github.com/gandallf070/trebol/src/sales/domain/entity"
	salesMemory "github.com/gandallf070/trebol/src/sales/infrastructure/memory"
	"github.com/gandallf070/trebol/src/shared/infrastructure/memory"
	"github.com/gandallf070/trebol/src/shared/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSellerID   int64 = 1
	testCustomerID int64 = 1
)

type salesFixture struct {
	products   *inventoryMemory.ProductMemoryRepository
	depletions *inventoryMemory.StockDepletionMemoryRepository
	sales      *salesMemory.SaleMemoryRepository
	registry   *prometheus.Registry
	createSale *CreateSaleUseCase
	returns    *ReturnLinesUseCase
	getSale    *GetSaleUseCase
}

func newSalesFixture() *salesFixture {
	tx := memory.NewTransactor()
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	logger := zap.NewNop()

	products := inventoryMemory.NewProductMemoryRepository()
	depletions := inventoryMemory.NewStockDepletionMemoryRepository()
	recorder := inventoryService.NewStockDepletionRecorder(depletions, m, logger)
	ledger := inventoryService.NewInventoryLedger(products, recorder, logger)

	customers := salesMemory.NewCustomerMemoryRepository()
	customers.Add(entity.Customer{ID: testCustomerID, NationalID: "12345678", FirstName: "Ana", LastName: "Pérez"})
	sales := salesMemory.NewSaleMemoryRepository()
	sales.AddSeller(testSellerID)

	return &salesFixture{
		products:   products,
		depletions: depletions,
		sales:      sales,
		registry:   registry,
		createSale: NewCreateSaleUseCase(tx, customers, sales, ledger, m, logger),
		returns:    NewReturnLinesUseCase(tx, sales, ledger, m, logger),
		getSale:    NewGetSaleUseCase(sales),
	}
}

func (f *salesFixture) addProduct(id int64, name string, qty int, price string) {
	f.products.Add(inventoryEntity.Product{
		ID:                id,
		Name:              name,
		Price:             decimal.RequireFromString(price),
		AvailableQuantity: qty,
		Active:            qty > 0,
		CreatedAt:         time.Now().UTC().AddDate(0, 0, -3),
	})
}

func (f *salesFixture) product(t *testing.T, id int64) *inventoryEntity.Product {
	t.Helper()
	p, err := f.products.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

// counter valor de un contador sin labels del registro del fixture
func (f *salesFixture) counter(t *testing.T, name string) float64 {
	t.Helper()
	families, err := f.registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return family.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func saleRequest(lines ...request.SaleLineRequest) *request.CreateSaleRequest {
	return &request.CreateSaleRequest{CustomerID: testCustomerID, Lines: lines}
}

func line(productID int64, qty int) request.SaleLineRequest {
	return request.SaleLineRequest{ProductID: productID, Quantity: qty}
}

func returnRequest(items ...request.ReturnItemRequest) *request.ReturnLinesRequest {
	return &request.ReturnLinesRequest{Items: items}
}

func item(productID int64, qty int) request.ReturnItemRequest {
	return request.ReturnItemRequest{ProductID: productID, Quantity: qty}
}
