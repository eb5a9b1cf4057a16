package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_RollbackAppliesUndoInReverseOrder(t *testing.T) {
	tr := NewTransactor()
	var order []int

	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		OnRollback(ctx, func() { order = append(order, 1) })
		OnRollback(ctx, func() { order = append(order, 2) })
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, []int{2, 1}, order)
}

func TestWithinTx_PanicRollsBackAndReleasesLock(t *testing.T) {
	tr := NewTransactor()
	stock := 5

	assert.PanicsWithValue(t, "boom", func() {
		_ = tr.WithinTx(context.Background(), func(ctx context.Context) error {
			stock = 2
			OnRollback(ctx, func() { stock = 5 })
			panic("boom")
		})
	})
	assert.Equal(t, 5, stock)

	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		stock--
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, stock)
}

func TestWithinTx_CommitDiscardsUndo(t *testing.T) {
	tr := NewTransactor()
	called := false

	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		OnRollback(ctx, func() { called = true })
		return nil
	})

	require.NoError(t, err)
	assert.False(t, called)
}

func TestWithinTx_NestedJoinsOuterTransaction(t *testing.T) {
	tr := NewTransactor()
	rolledBack := false

	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		inner := tr.WithinTx(ctx, func(ctx context.Context) error {
			OnRollback(ctx, func() { rolledBack = true })
			return nil
		})
		require.NoError(t, inner)
		return errors.New("outer failed")
	})

	require.Error(t, err)
	assert.True(t, rolledBack)
}

func TestWithinTx_Serializes(t *testing.T) {
	tr := NewTransactor()
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tr.WithinTx(context.Background(), func(ctx context.Context) error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
