package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Publisher = (*publisherMetrics)(nil)

type publisherMetrics struct {
	published *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

func newPublisherMetrics(registry *promRegistry) *publisherMetrics {
	published := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of order events published by topic and type",
		},
		[]string{"topic", "event_type"},
	)

	failed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_publish_failures_total",
			Help: "Total number of failed event publishes by topic, type and reason",
		},
		[]string{"topic", "event_type", "reason"},
	)

	registry.registry.MustRegister(published, failed)

	return &publisherMetrics{
		published: published,
		failed:    failed,
	}
}

func (m *publisherMetrics) EventPublished(topic, eventType string) {
	m.published.WithLabelValues(topic, eventType).Add(1)
}

func (m *publisherMetrics) EventFailed(topic, eventType, reason string) {
	m.failed.WithLabelValues(topic, eventType, reason).Add(1)
}
