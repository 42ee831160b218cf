package service

import (
	"context"
	"fmt"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/cache"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/metric"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	_defaultListLimit = 50
	_maxListLimit     = 200

	_orderViewCacheType = "order_view"
)

// OrderViewService serves the merchant dashboard read side: assembled order
// views and order listings. Views are cached; listings always hit storage.
type OrderViewService struct {
	orderRepo    OrderRepository
	itemRepo     ItemRepository
	customerRepo CustomerRepository
	cache        cache.Cache[uuid.UUID, *entity.OrderView]
	cacheTTL     time.Duration
	logger       logger.Logger
	metrics      metric.Cache
}

func NewOrderViewService(
	orderRepo OrderRepository,
	itemRepo ItemRepository,
	customerRepo CustomerRepository,
	cache cache.Cache[uuid.UUID, *entity.OrderView],
	cacheTTL time.Duration,
	logger logger.Logger,
	metrics metric.Cache,
) *OrderViewService {
	return &OrderViewService{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
		metrics:      metrics,
	}
}

func (vs *OrderViewService) GetOrder(
	ctx context.Context,
	merchantID, orderID uuid.UUID,
) (*entity.OrderView, error) {
	const op = "service.view.GetOrder"
	log := vs.logger.Ctx(ctx)

	if view, found := vs.cache.Get(orderID); found {
		// Cache keys are global order ids; a hit still has to belong to
		// the requesting merchant.
		if view.Order.MerchantID == merchantID {
			vs.metrics.Hit(_orderViewCacheType)
			return view, nil
		}
	}
	vs.metrics.Miss(_orderViewCacheType)

	view, err := vs.assembleView(ctx, merchantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs.cache.Put(orderID, view, vs.cacheTTL)

	log.Debugw("order view assembled",
		"op", op,
		"order_id", orderID.String(),
		"items_count", len(view.Order.Items),
	)

	return view, nil
}

func (vs *OrderViewService) assembleView(
	ctx context.Context,
	merchantID, orderID uuid.UUID,
) (*entity.OrderView, error) {
	order, err := vs.orderRepo.GetByID(ctx, merchantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}

	var (
		items    []*entity.OrderItem
		customer *entity.Customer
	)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(gCtx, _defaultContextTimeout)
		defer cancel()

		var fetchErr error
		items, fetchErr = vs.itemRepo.GetListByOrderID(fetchCtx, orderID)
		if fetchErr != nil {
			return fmt.Errorf("load items: %w", fetchErr)
		}
		return nil
	})

	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(gCtx, _defaultContextTimeout)
		defer cancel()

		var fetchErr error
		customer, fetchErr = vs.customerRepo.GetByID(fetchCtx, order.CustomerID)
		if fetchErr != nil {
			return fmt.Errorf("load customer: %w", fetchErr)
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		return nil, err
	}

	order.Items = items

	return &entity.OrderView{
		Order:    order,
		Customer: customer,
	}, nil
}

func (vs *OrderViewService) ListOrders(
	ctx context.Context,
	merchantID uuid.UUID,
	status *entity.OrderStatus,
	limit, offset uint64,
) ([]*entity.Order, error) {
	const op = "service.view.ListOrders"

	if limit == 0 {
		limit = _defaultListLimit
	}
	if limit > _maxListLimit {
		limit = _maxListLimit
	}

	orders, err := vs.orderRepo.GetList(ctx, merchantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}
