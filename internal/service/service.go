package service

import (
	"context"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"

	"github.com/google/uuid"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
)

//go:generate mockgen -source=service.go -destination=../repository/mock/repository.go -package=mock_repository

type (
	MerchantRepository interface {
		GetBySlug(ctx context.Context, slug string) (*entity.Merchant, error)
		GetByID(ctx context.Context, merchantID uuid.UUID) (*entity.Merchant, error)
		GetByAPIToken(ctx context.Context, token string) (*entity.Merchant, error)
		NextOrderNumber(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			merchantID uuid.UUID,
		) (int64, error)
	}

	CustomerRepository interface {
		Upsert(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			customer *entity.Customer,
		) (*entity.Customer, error)
		GetByID(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)
	}

	ProductRepository interface {
		GetByID(ctx context.Context, merchantID, productID uuid.UUID) (*entity.Product, error)
	}

	OrderRepository interface {
		Create(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			order *entity.Order,
		) (*entity.Order, error)
		GetByID(ctx context.Context, merchantID, orderID uuid.UUID) (*entity.Order, error)
		UpdateStatus(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			merchantID, orderID uuid.UUID,
			from, to entity.OrderStatus,
		) (*entity.Order, error)
		GetList(
			ctx context.Context,
			merchantID uuid.UUID,
			status *entity.OrderStatus,
			limit, offset uint64,
		) ([]*entity.Order, error)
	}

	ItemRepository interface {
		CreateBatch(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			items []*entity.OrderItem,
		) error
		GetListByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	}

	DeliveryRangeRepository interface {
		GetListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.DeliveryRange, error)
	}

	PickupSlotRepository interface {
		GetActiveByDay(
			ctx context.Context,
			merchantID uuid.UUID,
			day time.Weekday,
		) ([]*entity.PickupSlot, error)
	}

	ScheduleRepository interface {
		GetByDate(
			ctx context.Context,
			merchantID uuid.UUID,
			date time.Time,
		) (*entity.ScheduleDay, error)
	}

	// EventPublisher pushes order lifecycle events onto the outbound stream.
	// Publishing is best effort and never blocks the order flow.
	EventPublisher interface {
		OrderPlaced(ctx context.Context, order *entity.Order) error
		OrderStatusChanged(ctx context.Context, order *entity.Order, from entity.OrderStatus) error
	}

	// ScheduleChecker answers whether the store takes orders for a date.
	ScheduleChecker interface {
		IsOpen(ctx context.Context, merchant *entity.Merchant, date time.Time) (bool, error)
	}

	// AreaChecker answers whether a normalized postal code is served.
	AreaChecker interface {
		IsServed(ctx context.Context, merchantID uuid.UUID, cep string) (AreaResult, error)
	}

	// SlotResolver maps a client-chosen slot id to an active slot valid for
	// the requested weekday.
	SlotResolver interface {
		ResolveActiveSlot(
			ctx context.Context,
			merchantID uuid.UUID,
			day time.Weekday,
			slotID uuid.UUID,
		) (*entity.PickupSlot, error)
	}
)
