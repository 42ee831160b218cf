package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const _centsPerUnit = 100

var _ Orders = (*orderMetrics)(nil)

type orderMetrics struct {
	placed     *prometheus.CounterVec
	rejected   *prometheus.CounterVec
	transition *prometheus.CounterVec
	orderValue *prometheus.HistogramVec
}

func newOrderMetrics(registry *promRegistry) *orderMetrics {
	placed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of successfully placed orders by fulfillment type",
		},
		[]string{"fulfillment"},
	)

	rejected := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Total number of order placement attempts rejected by a validation gate",
		},
		[]string{"reason"},
	)

	transition := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_transitions_total",
			Help: "Total number of applied order status transitions",
		},
		[]string{"from", "to"},
	)

	orderValue := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_value",
			Help:    "Order total value in currency units",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
		},
		[]string{"fulfillment"},
	)

	registry.registry.MustRegister(placed, rejected, transition, orderValue)

	return &orderMetrics{
		placed:     placed,
		rejected:   rejected,
		transition: transition,
		orderValue: orderValue,
	}
}

func (m *orderMetrics) Placed(fulfillment string, totalCents int64) {
	m.placed.WithLabelValues(fulfillment).Add(1)
	m.orderValue.WithLabelValues(fulfillment).Observe(float64(totalCents) / _centsPerUnit)
}

func (m *orderMetrics) Rejected(reason string) {
	m.rejected.WithLabelValues(reason).Add(1)
}

func (m *orderMetrics) StatusChanged(from, to string) {
	m.transition.WithLabelValues(from, to).Add(1)
}
