package metric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var _ DLQ = (*dlqMetrics)(nil)

type dlqMetrics struct {
	sent   *prometheus.CounterVec
	errors *prometheus.CounterVec
}

func newDLQMetrics(registry *promRegistry) *dlqMetrics {
	sent := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dlq_messages_sent_total",
			Help: "Total number of messages routed to the dead letter topic",
		},
		[]string{"topic", "event_type", "retry_count"},
	)

	errs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dlq_errors_total",
			Help: "Total number of dead letter queue write failures",
		},
		[]string{"topic", "reason"},
	)

	registry.registry.MustRegister(sent, errs)

	return &dlqMetrics{
		sent:   sent,
		errors: errs,
	}
}

func (m *dlqMetrics) DLSent(topic string, eventType string, retryCount int) {
	m.sent.WithLabelValues(topic, eventType, strconv.Itoa(retryCount)).Add(1)
}

func (m *dlqMetrics) DLError(topic string, reason string) {
	m.errors.WithLabelValues(topic, reason).Add(1)
}
