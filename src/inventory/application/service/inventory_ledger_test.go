package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gandallf070/trebol/src/inventory/domain/entity"
	inventoryMemory "github.com/gandallf070/trebol/src/inventory/infrastructure/memory"
	"github.com/gandallf070/trebol/src/shared/infrastructure/memory"
	"github.com/gandallf070/trebol/src/shared/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ledgerFixture struct {
	tx         *memory.Transactor
	products   *inventoryMemory.ProductMemoryRepository
	depletions *inventoryMemory.StockDepletionMemoryRepository
	ledger     *InventoryLedger
}

func newLedgerFixture() *ledgerFixture {
	products := inventoryMemory.NewProductMemoryRepository()
	depletions := inventoryMemory.NewStockDepletionMemoryRepository()
	recorder := NewStockDepletionRecorder(depletions, metrics.New(prometheus.NewRegistry()), zap.NewNop())
	return &ledgerFixture{
		tx:         memory.NewTransactor(),
		products:   products,
		depletions: depletions,
		ledger:     NewInventoryLedger(products, recorder, zap.NewNop()),
	}
}

func (f *ledgerFixture) addProduct(id int64, qty int) {
	f.products.Add(entity.Product{
		ID:                id,
		Name:              "producto",
		Price:             decimal.NewFromInt(10),
		AvailableQuantity: qty,
		Active:            qty > 0,
		CreatedAt:         time.Now().UTC().AddDate(0, 0, -5),
	})
}

func (f *ledgerFixture) quantity(t *testing.T, id int64) int {
	p, err := f.products.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p.AvailableQuantity
}

func TestLedger_LockNotFound(t *testing.T) {
	f := newLedgerFixture()

	err := f.tx.WithinTx(context.Background(), func(ctx context.Context) error {
		_, err := f.ledger.Lock(ctx, 99)
		return err
	})

	require.ErrorIs(t, err, entity.ErrProductNotFound)
	var nf *entity.ProductNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(99), nf.ProductID)
}

func TestLedger_LockAllDeduplicates(t *testing.T) {
	f := newLedgerFixture()
	f.addProduct(1, 3)
	f.addProduct(2, 3)

	err := f.tx.WithinTx(context.Background(), func(ctx context.Context) error {
		locked, err := f.ledger.LockAll(ctx, []int64{2, 1, 2})
		require.NoError(t, err)
		assert.Len(t, locked, 2)
		return nil
	})
	require.NoError(t, err)
}

func TestLedger_LockAllLeavesMissingProductsOut(t *testing.T) {
	f := newLedgerFixture()
	f.addProduct(1, 3)

	err := f.tx.WithinTx(context.Background(), func(ctx context.Context) error {
		locked, err := f.ledger.LockAll(ctx, []int64{99, 1})
		require.NoError(t, err)
		assert.Len(t, locked, 1)
		assert.Contains(t, locked, int64(1))
		assert.NotContains(t, locked, int64(99))
		return nil
	})
	require.NoError(t, err)
}

func TestLedger_DecrementPersists(t *testing.T) {
	f := newLedgerFixture()
	f.addProduct(1, 5)

	err := f.tx.WithinTx(context.Background(), func(ctx context.Context) error {
		p, err := f.ledger.Lock(ctx, 1)
		require.NoError(t, err)
		_, err = f.ledger.Decrement(ctx, p, 3)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 2, f.quantity(t, 1))
	list, _ := f.depletions.List(context.Background())
	assert.Empty(t, list)
}

func TestLedger_DecrementToZeroRecordsDepletion(t *testing.T) {
	f := newLedgerFixture()
	f.addProduct(1, 4)

	err := f.tx.WithinTx(context.Background(), func(ctx context.Context) error {
		p, err := f.ledger.Lock(ctx, 1)
		require.NoError(t, err)
		_, err = f.ledger.Decrement(ctx, p, 4)
		return err
	})
	require.NoError(t, err)

	p, _ := f.products.FindByID(context.Background(), 1)
	assert.Equal(t, 0, p.AvailableQuantity)
	assert.False(t, p.Active)

	d, err := f.depletions.FindByProductID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 4, d.InitialQuantity)
	assert.Equal(t, 4, d.QuantitySold)
	require.NotNil(t, d.LifetimeDays)
	assert.Equal(t, 5, *d.LifetimeDays)
}

func TestLedger_SecondDepletionIsNoop(t *testing.T) {
	f := newLedgerFixture()
	f.addProduct(1, 2)
	ctx := context.Background()

	deplete := func(qty int) error {
		return f.tx.WithinTx(ctx, func(ctx context.Context) error {
			p, err := f.ledger.Lock(ctx, 1)
			if err != nil {
				return err
			}
			_, err = f.ledger.Decrement(ctx, p, qty)
			return err
		})
	}

	require.NoError(t, deplete(2))
	first, _ := f.depletions.FindByProductID(ctx, 1)

	require.NoError(t, f.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := f.ledger.Lock(ctx, 1)
		if err != nil {
			return err
		}
		_, err = f.ledger.Increment(ctx, p, 3)
		return err
	}))
	require.NoError(t, deplete(3))

	list, _ := f.depletions.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, 2, list[0].InitialQuantity)
}

func TestLedger_RollbackUndoesStockAndDepletion(t *testing.T) {
	f := newLedgerFixture()
	f.addProduct(1, 1)

	err := f.tx.WithinTx(context.Background(), func(ctx context.Context) error {
		p, err := f.ledger.Lock(ctx, 1)
		require.NoError(t, err)
		_, err = f.ledger.Decrement(ctx, p, 1)
		require.NoError(t, err)
		return errors.New("later line failed")
	})

	require.Error(t, err)
	assert.Equal(t, 1, f.quantity(t, 1))
	d, _ := f.depletions.FindByProductID(context.Background(), 1)
	assert.Nil(t, d)
}

func TestLedger_DecrementInsufficient(t *testing.T) {
	f := newLedgerFixture()
	f.addProduct(1, 2)

	err := f.tx.WithinTx(context.Background(), func(ctx context.Context) error {
		p, err := f.ledger.Lock(ctx, 1)
		require.NoError(t, err)
		_, err = f.ledger.Decrement(ctx, p, 3)
		return err
	})

	assert.ErrorIs(t, err, entity.ErrInsufficientStock)
	assert.Equal(t, 2, f.quantity(t, 1))
}

func TestLedger_IncrementReactivates(t *testing.T) {
	f := newLedgerFixture()
	f.addProduct(1, 0)

	err := f.tx.WithinTx(context.Background(), func(ctx context.Context) error {
		p, err := f.ledger.Lock(ctx, 1)
		require.NoError(t, err)
		_, err = f.ledger.Increment(ctx, p, 2)
		return err
	})

	require.NoError(t, err)
	p, _ := f.products.FindByID(context.Background(), 1)
	assert.Equal(t, 2, p.AvailableQuantity)
	assert.True(t, p.Active)
}
