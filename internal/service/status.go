package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/cache"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/metric"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
)

type StatusService struct {
	orderRepo OrderRepository
	txManager transaction.Manager
	cache     cache.Cache[uuid.UUID, *entity.OrderView]
	publisher EventPublisher
	logger    logger.Logger
	metrics   metric.Orders
}

func NewStatusService(
	orderRepo OrderRepository,
	txManager transaction.Manager,
	cache cache.Cache[uuid.UUID, *entity.OrderView],
	publisher EventPublisher,
	logger logger.Logger,
	metrics metric.Orders,
) *StatusService {
	return &StatusService{
		orderRepo: orderRepo,
		txManager: txManager,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// ChangeStatus moves an order through the lifecycle. The current state is
// re-read on every call and the persisted update carries it as a predicate,
// so two racing transitions cannot both win.
func (ss *StatusService) ChangeStatus(
	ctx context.Context,
	merchantID, orderID uuid.UUID,
	requested entity.OrderStatus,
) (*entity.Order, error) {
	const op = "service.status.ChangeStatus"
	log := ss.logger.Ctx(ctx)

	if !requested.Valid() {
		return nil, fmt.Errorf("%s: unknown status %q: %w", op, requested, entity.ErrInvalidData)
	}

	order, err := ss.orderRepo.GetByID(ctx, merchantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: load order: %w", op, err)
	}

	from := order.Status
	if !entity.CanTransition(from, requested) {
		return nil, fmt.Errorf(
			"%s: transition from %s to %s is not allowed: %w",
			op, from, requested, entity.ErrStatusTransition)
	}

	var updated *entity.Order
	err = ss.txManager.ExecuteInTransaction(
		ctx,
		"ChangeStatus",
		func(tx postgres.QueryExecuter) error {
			var txErr error
			updated, txErr = ss.orderRepo.UpdateStatus(ctx, tx, merchantID, orderID, from, requested)
			if txErr != nil {
				return transaction.HandleError("ChangeStatus", "update status", txErr)
			}
			return nil
		},
	)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, fmt.Errorf(
				"%s: order changed concurrently, no longer in %s: %w",
				op, from, entity.ErrConflictingData)
		}
		return nil, err
	}

	ss.cache.Delete(orderID)
	ss.metrics.StatusChanged(string(from), string(requested))

	if pubErr := ss.publisher.OrderStatusChanged(ctx, updated, from); pubErr != nil {
		log.Warnw("status changed event not published",
			"op", op,
			"order_id", orderID.String(),
			"error", pubErr,
		)
	}

	log.Infow("order status changed",
		"op", op,
		"order_id", orderID.String(),
		"from", string(from),
		"to", string(requested),
	)

	return updated, nil
}
