package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const namespace = "trebol"

// Metrics agrupa los contadores del motor de ventas.
// Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	salesCreated     prometheus.Counter
	saleFailures     *prometheus.CounterVec
	saleAmount       prometheus.Counter
	returnsProcessed prometheus.Counter
	unitsReturned    prometheus.Counter
	stockDepletions  prometheus.Counter
}

// New registra los contadores en reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		salesCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_created_total",
			Help:      "Ventas confirmadas.",
		}),
		saleFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sale_failures_total",
			Help:      "Ventas rechazadas, por motivo.",
		}, []string{"reason"}),
		saleAmount: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sale_amount_total",
			Help:      "Suma de los totales de ventas confirmadas.",
		}),
		returnsProcessed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "returns_processed_total",
			Help:      "Devoluciones procesadas.",
		}),
		unitsReturned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_returned_total",
			Help:      "Unidades devueltas al inventario.",
		}),
		stockDepletions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_depletions_total",
			Help:      "Productos registrados como agotados.",
		}),
	}
}

// SaleCreated cuenta una venta confirmada y su monto
func (m *Metrics) SaleCreated(total decimal.Decimal) {
	if m == nil {
		return
	}
	m.salesCreated.Inc()
	m.saleAmount.Add(total.InexactFloat64())
}

// SaleFailed cuenta una venta rechazada
func (m *Metrics) SaleFailed(reason string) {
	if m == nil {
		return
	}
	m.saleFailures.WithLabelValues(reason).Inc()
}

// ReturnProcessed cuenta una devolución y sus unidades
func (m *Metrics) ReturnProcessed(units int) {
	if m == nil {
		return
	}
	m.returnsProcessed.Inc()
	m.unitsReturned.Add(float64(units))
}

// StockDepleted cuenta un registro de agotamiento nuevo
func (m *Metrics) StockDepleted() {
	if m == nil {
		return
	}
	m.stockDepletions.Inc()
}
