package metric

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=metrics.go -destination=mock/metric.go -package=mock_metric

type (
	Factory interface {
		HTTP() HTTP
		Transaction() Transaction
		Cache() Cache
		Orders() Orders
		Publisher() Publisher
		DLQ() DLQ
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	Transaction interface {
		ObserveDuration(operation string, duration time.Duration)
		IncrementRetries(operation string)
		IncrementFailures(operation string)
	}

	Cache interface {
		Hit(cacheType string)
		Miss(cacheType string)
		Eviction(cacheType string, reason string)
		Size(cacheType string, size int)
	}

	// Orders tracks the placement pipeline outcome per merchant store.
	Orders interface {
		Placed(fulfillment string, totalCents int64)
		Rejected(reason string)
		StatusChanged(from, to string)
	}

	Publisher interface {
		EventPublished(topic, eventType string)
		EventFailed(topic, eventType, reason string)
	}

	DLQ interface {
		DLSent(topic string, eventType string, retryCount int)
		DLError(topic string, reason string)
	}
)
