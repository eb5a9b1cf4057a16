package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SaleCreated(decimal.RequireFromString("12.50"))
	m.SaleCreated(decimal.RequireFromString("7.50"))
	m.SaleFailed("insufficient_stock")
	m.ReturnProcessed(3)
	m.StockDepleted()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.salesCreated))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.saleAmount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.saleFailures.WithLabelValues("insufficient_stock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.returnsProcessed))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.unitsReturned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stockDepletions))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SaleCreated(decimal.NewFromInt(1))
		m.SaleFailed("x")
		m.ReturnProcessed(1)
		m.StockDepleted()
	})
}
