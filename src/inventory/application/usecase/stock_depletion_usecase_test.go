package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gandallf070/trebol/src/inventory/application/request"
	"github.com/gandallf070/trebol/src/inventory/application/service"
	"github.com/gandallf070/trebol/src/inventory/domain/entity"
	inventoryMemory "github.com/gandallf070/trebol/src/inventory/infrastructure/memory"
	"github.com/gandallf070/trebol/src/shared/infrastructure/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	products   *inventoryMemory.ProductMemoryRepository
	depletions *inventoryMemory.StockDepletionMemoryRepository
	create     *CreateStockDepletionUseCase
	list       *ListStockDepletionsUseCase
	get        *GetStockDepletionUseCase
}

func newFixture() *fixture {
	products := inventoryMemory.NewProductMemoryRepository()
	depletions := inventoryMemory.NewStockDepletionMemoryRepository()
	recorder := service.NewStockDepletionRecorder(depletions, nil, zap.NewNop())
	products.Add(entity.Product{ID: 1, Name: "Arroz", Price: decimal.NewFromInt(2)})
	products.Add(entity.Product{ID: 2, Name: "Fideos", CategoryID: 4, Price: decimal.NewFromInt(3)})

	return &fixture{
		products:   products,
		depletions: depletions,
		create:     NewCreateStockDepletionUseCase(memory.NewTransactor(), products, recorder),
		list:       NewListStockDepletionsUseCase(depletions, products),
		get:        NewGetStockDepletionUseCase(depletions, products),
	}
}

func TestCreateStockDepletion(t *testing.T) {
	f := newFixture()
	start := time.Now().UTC().AddDate(0, 0, -10)

	resp, err := f.create.Execute(context.Background(), &request.CreateStockDepletionRequest{
		ProductID: 1, PeriodStart: &start, InitialQuantity: 20, QuantitySold: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, "Arroz", resp.ProductName)
	require.NotNil(t, resp.LifetimeDays)
	assert.Equal(t, 10, *resp.LifetimeDays)
}

func TestCreateStockDepletion_Duplicate(t *testing.T) {
	f := newFixture()
	req := &request.CreateStockDepletionRequest{ProductID: 1, InitialQuantity: 1, QuantitySold: 1}

	_, err := f.create.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = f.create.Execute(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrStockDepletionAlreadyRecorded)
}

func TestCreateStockDepletion_UnknownProduct(t *testing.T) {
	f := newFixture()

	_, err := f.create.Execute(context.Background(), &request.CreateStockDepletionRequest{ProductID: 42})

	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestListStockDepletions_NewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	older, _ := entity.NewStockDepletion(1, 5, 5, nil, nil, time.Now().Add(-time.Hour))
	newer, _ := entity.NewStockDepletion(2, 3, 3, nil, nil, time.Now())
	_, _ = f.depletions.CreateIfAbsent(ctx, older)
	_, _ = f.depletions.CreateIfAbsent(ctx, newer)

	resp, err := f.list.Execute(ctx)

	require.NoError(t, err)
	require.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, "Fideos", resp.Items[0].ProductName)
	assert.Equal(t, int64(4), resp.Items[0].CategoryID)
	assert.Equal(t, "Arroz", resp.Items[1].ProductName)
}

func TestGetStockDepletion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.get.Execute(ctx, 2)
	assert.ErrorIs(t, err, entity.ErrStockDepletionNotFound)

	d, _ := entity.NewStockDepletion(2, 6, 6, nil, nil, time.Now())
	_, err = f.depletions.CreateIfAbsent(ctx, d)
	require.NoError(t, err)

	resp, err := f.get.Execute(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, "Fideos", resp.ProductName)
	assert.Equal(t, int64(4), resp.CategoryID)
	assert.Equal(t, 6, resp.InitialQuantity)
}
