package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/kafka/dlq"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/metric"

	"github.com/segmentio/kafka-go"
)

const (
	_eventOrderPlaced        = "order.placed"
	_eventOrderStatusChanged = "order.status_changed"
)

type (
	orderEventPayload struct {
		OrderID         string    `json:"order_id"`
		MerchantID      string    `json:"merchant_id"`
		Number          int64     `json:"number"`
		Status          string    `json:"status"`
		FulfillmentType string    `json:"fulfillment_type"`
		DeliveryDate    time.Time `json:"delivery_date"`
		TotalCents      int64     `json:"total_cents"`
		ItemsCount      int       `json:"items_count"`
	}

	orderEvent struct {
		Type       string            `json:"type"`
		OccurredAt time.Time         `json:"occurred_at"`
		Order      orderEventPayload `json:"order"`
		FromStatus string            `json:"from_status,omitempty"`
	}

	// Publisher pushes order lifecycle events onto the outbound topic.
	// Messages are keyed by order id so one order's events stay ordered.
	Publisher struct {
		writer  *kafka.Writer
		dlq     *dlq.DLQ
		logger  logger.Logger
		metrics metric.Publisher
	}
)

func NewPublisher(
	writer *kafka.Writer,
	dlq *dlq.DLQ,
	logger logger.Logger,
	metrics metric.Publisher,
) *Publisher {
	return &Publisher{
		writer:  writer,
		dlq:     dlq,
		logger:  logger,
		metrics: metrics,
	}
}

func (p *Publisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("transport.kafka.Close: %w", err)
	}
	return nil
}

func (p *Publisher) OrderPlaced(ctx context.Context, order *entity.Order) error {
	return p.publish(ctx, orderEvent{
		Type:       _eventOrderPlaced,
		OccurredAt: time.Now().UTC(),
		Order:      payloadFromOrder(order),
	})
}

func (p *Publisher) OrderStatusChanged(
	ctx context.Context,
	order *entity.Order,
	from entity.OrderStatus,
) error {
	return p.publish(ctx, orderEvent{
		Type:       _eventOrderStatusChanged,
		OccurredAt: time.Now().UTC(),
		Order:      payloadFromOrder(order),
		FromStatus: string(from),
	})
}

// publish writes one event and parks it on the dead-letter topic when the
// main topic is unreachable. The original error is returned either way so
// callers can log it.
func (p *Publisher) publish(ctx context.Context, event orderEvent) error {
	const op = "transport.kafka.publish"

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: marshal %s: %w", op, event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Order.OrderID),
		Value: value,
		Time:  event.OccurredAt,
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.metrics.EventFailed(p.writer.Topic, event.Type, "write_failed")

		msg.Topic = p.writer.Topic
		if dlqErr := p.dlq.Send(ctx, msg, event.Type, err); dlqErr != nil {
			p.logger.Errorw("event lost: dlq write failed after publish failure",
				"op", op,
				"event_type", event.Type,
				"order_id", event.Order.OrderID,
				"publish_error", err,
				"dlq_error", dlqErr,
			)
		}

		return fmt.Errorf("%s: write %s: %w", op, event.Type, err)
	}

	p.metrics.EventPublished(p.writer.Topic, event.Type)

	return nil
}

func payloadFromOrder(order *entity.Order) orderEventPayload {
	return orderEventPayload{
		OrderID:         order.ID.String(),
		MerchantID:      order.MerchantID.String(),
		Number:          order.Number,
		Status:          string(order.Status),
		FulfillmentType: string(order.FulfillmentType),
		DeliveryDate:    order.DeliveryDate,
		TotalCents:      order.TotalCents,
		ItemsCount:      len(order.Items),
	}
}
