package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/gandallf070/trebol/src/sales/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnLines_RoundTripRestoresAndReactivates(t *testing.T) {
	f := newSalesFixture()
	f.addProduct(1, "X", 3, "10")
	ctx := context.Background()

	sale, err := f.createSale.Execute(ctx, testSellerID, saleRequest(line(1, 3)))
	require.NoError(t, err)
	assert.False(t, f.product(t, 1).Active)

	receipt, err := f.returns.Execute(ctx, sale.SaleID, returnRequest(item(1, 3)))

	require.NoError(t, err)
	p := f.product(t, 1)
	assert.Equal(t, 3, p.AvailableQuantity)
	assert.True(t, p.Active)

	assert.Equal(t, sale.SaleID, receipt.SaleID)
	assert.Equal(t, "Devolución procesada exitosamente", receipt.Message)
	require.Len(t, receipt.ReturnedItems, 1)
	assert.Equal(t, "X", receipt.ReturnedItems[0].ProductName)
	assert.Equal(t, 3, receipt.ReturnedItems[0].ReturnedQuantity)
	assert.Equal(t, 1, receipt.TotalReturnedItems)
	assert.Equal(t, float64(3), f.counter(t, "trebol_units_returned_total"))
}

func TestReturnLines_ExcessiveReturnLeavesInventoryUnchanged(t *testing.T) {
	f := newSalesFixture()
	f.addProduct(1, "X", 10, "10")
	f.addProduct(2, "Y", 10, "10")
	ctx := context.Background()

	sale, err := f.createSale.Execute(ctx, testSellerID, saleRequest(line(2, 1), line(1, 2)))
	require.NoError(t, err)

	_, err = f.returns.Execute(ctx, sale.SaleID, returnRequest(item(2, 1), item(1, 3)))

	require.ErrorIs(t, err, entity.ErrExcessiveReturn)
	var excessive *entity.ExcessiveReturnError
	require.True(t, errors.As(err, &excessive))
	assert.Equal(t, 2, excessive.Sold)
	assert.Equal(t, 8, f.product(t, 1).AvailableQuantity)
	assert.Equal(t, 9, f.product(t, 2).AvailableQuantity)
}

func TestReturnLines_SaleIsNotModified(t *testing.T) {
	f := newSalesFixture()
	f.addProduct(1, "X", 10, "10")
	ctx := context.Background()

	sale, err := f.createSale.Execute(ctx, testSellerID, saleRequest(line(1, 4)))
	require.NoError(t, err)

	_, err = f.returns.Execute(ctx, sale.SaleID, returnRequest(item(1, 2)))
	require.NoError(t, err)

	got, err := f.getSale.Execute(ctx, sale.SaleID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Lines[0].Quantity)
	assert.True(t, got.Total.Equal(sale.Total))
}

// Cada devolución se valida contra lo vendido originalmente, no contra un
// saldo pendiente, así que dos devoluciones parciales pueden superar lo vendido.
func TestReturnLines_RepeatedPartialReturnsAreValidatedAgainstOriginalLine(t *testing.T) {
	f := newSalesFixture()
	f.addProduct(1, "X", 10, "10")
	ctx := context.Background()

	sale, err := f.createSale.Execute(ctx, testSellerID, saleRequest(line(1, 2)))
	require.NoError(t, err)

	_, err = f.returns.Execute(ctx, sale.SaleID, returnRequest(item(1, 2)))
	require.NoError(t, err)
	_, err = f.returns.Execute(ctx, sale.SaleID, returnRequest(item(1, 2)))
	require.NoError(t, err)

	assert.Equal(t, 12, f.product(t, 1).AvailableQuantity)
}

func TestReturnLines_Errors(t *testing.T) {
	f := newSalesFixture()
	f.addProduct(1, "X", 10, "10")
	f.addProduct(2, "Y", 10, "10")
	ctx := context.Background()

	sale, err := f.createSale.Execute(ctx, testSellerID, saleRequest(line(1, 2)))
	require.NoError(t, err)

	_, err = f.returns.Execute(ctx, 999, returnRequest(item(1, 1)))
	assert.ErrorIs(t, err, entity.ErrSaleNotFound)

	_, err = f.returns.Execute(ctx, sale.SaleID, returnRequest(item(1, 1), item(2, 1)))
	require.ErrorIs(t, err, entity.ErrLineNotFound)
	var verr *entity.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 2, verr.Line)

	_, err = f.returns.Execute(ctx, sale.SaleID, returnRequest())
	assert.ErrorIs(t, err, entity.ErrReturnMustHaveItems)

	_, err = f.returns.Execute(ctx, sale.SaleID, returnRequest(item(1, 0)))
	assert.ErrorIs(t, err, entity.ErrInvalidQuantity)

	assert.Equal(t, 8, f.product(t, 1).AvailableQuantity)
	assert.Equal(t, 10, f.product(t, 2).AvailableQuantity)
}

func TestGetSale_NotFound(t *testing.T) {
	f := newSalesFixture()

	_, err := f.getSale.Execute(context.Background(), 5)

	assert.ErrorIs(t, err, entity.ErrSaleNotFound)
}
