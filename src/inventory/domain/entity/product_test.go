package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(qty int) *Product {
	return &Product{ID: 7, Name: "Yerba 1kg", Price: decimal.RequireFromString("3.50"), AvailableQuantity: qty, Active: qty > 0}
}

func TestProduct_Decrement(t *testing.T) {
	p := newProduct(5)

	before, depleted, err := p.Decrement(3)

	require.NoError(t, err)
	assert.Equal(t, 5, before)
	assert.False(t, depleted)
	assert.Equal(t, 2, p.AvailableQuantity)
	assert.True(t, p.Active)
}

func TestProduct_DecrementToZeroDeactivates(t *testing.T) {
	p := newProduct(2)

	before, depleted, err := p.Decrement(2)

	require.NoError(t, err)
	assert.Equal(t, 2, before)
	assert.True(t, depleted)
	assert.Equal(t, 0, p.AvailableQuantity)
	assert.False(t, p.Active)
}

func TestProduct_DecrementInsufficient(t *testing.T) {
	p := newProduct(2)

	_, _, err := p.Decrement(5)

	require.ErrorIs(t, err, ErrInsufficientStock)
	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, int64(7), stockErr.ProductID)
	assert.Equal(t, 2, p.AvailableQuantity)
}

func TestProduct_DecrementInvalidQuantity(t *testing.T) {
	p := newProduct(2)

	_, _, err := p.Decrement(0)

	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestProduct_IncrementReactivates(t *testing.T) {
	p := newProduct(0)
	p.Active = false

	require.NoError(t, p.Increment(3))

	assert.Equal(t, 3, p.AvailableQuantity)
	assert.True(t, p.Active)
}

func TestProduct_IncrementReactivatesManuallyDisabled(t *testing.T) {
	p := newProduct(4)
	p.Active = false

	require.NoError(t, p.Increment(1))

	assert.True(t, p.Active)
}

func TestProduct_IncrementInvalidQuantity(t *testing.T) {
	p := newProduct(1)
	assert.ErrorIs(t, p.Increment(-1), ErrInvalidQuantity)
	assert.Equal(t, 1, p.AvailableQuantity)
}
