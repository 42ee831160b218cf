package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/metric"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
)

// Rejection reason labels for the placement outcome counter.
const (
	_rejectInvalidRequest  = "invalid_request"
	_rejectStoreNotFound   = "store_not_found"
	_rejectProductNotFound = "product_not_found"
	_rejectProductRejected = "product_rejected"
	_rejectClosedDate      = "closed_date"
	_rejectPastDate        = "past_date"
	_rejectSlotUnavailable = "slot_unavailable"
	_rejectOutsideArea     = "outside_delivery_area"
	_rejectInternal        = "internal"
)

type (
	PlaceOrderItemInput struct {
		ProductID uuid.UUID
		VariantID *uuid.UUID
		Quantity  int
	}

	PlaceOrderAddress struct {
		PostalCode   string
		Street       string
		StreetNumber string
		Neighborhood string
		City         string
		Complement   string
	}

	PlaceOrderInput struct {
		CustomerName    string
		CustomerPhone   string
		FulfillmentType entity.FulfillmentType
		DeliveryDate    time.Time
		PickupSlotID    *uuid.UUID
		Address         PlaceOrderAddress
		Notes           string
		Items           []PlaceOrderItemInput
	}

	PlacementService struct {
		merchantRepo MerchantRepository
		customerRepo CustomerRepository
		productRepo  ProductRepository
		orderRepo    OrderRepository
		itemRepo     ItemRepository
		txManager    transaction.Manager
		schedule     ScheduleChecker
		area         AreaChecker
		slots        SlotResolver
		publisher    EventPublisher
		logger       logger.Logger
		metrics      metric.Orders
		countryCode  string
	}
)

func NewPlacementService(
	merchantRepo MerchantRepository,
	customerRepo CustomerRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	itemRepo ItemRepository,
	txManager transaction.Manager,
	schedule ScheduleChecker,
	area AreaChecker,
	slots SlotResolver,
	publisher EventPublisher,
	logger logger.Logger,
	metrics metric.Orders,
	countryCode string,
) *PlacementService {
	return &PlacementService{
		merchantRepo: merchantRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		txManager:    txManager,
		schedule:     schedule,
		area:         area,
		slots:        slots,
		publisher:    publisher,
		logger:       logger,
		metrics:      metrics,
		countryCode:  countryCode,
	}
}

// PlaceOrder runs the full placement pipeline for one storefront submission.
// Gates run in a fixed order and the first failure aborts before any write;
// all database writes happen together in one transaction at the end.
func (ps *PlacementService) PlaceOrder(
	ctx context.Context,
	slug string,
	input PlaceOrderInput,
) (*entity.Order, error) {
	const op = "service.placement.PlaceOrder"
	log := ps.logger.Ctx(ctx)

	merchant, err := ps.merchantRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, ps.reject(_rejectStoreNotFound,
				fmt.Errorf("%s: store %q: %w", op, slug, err))
		}
		return nil, ps.reject(_rejectInternal, fmt.Errorf("%s: resolve store: %w", op, err))
	}

	if err = validatePlaceOrderInput(input); err != nil {
		return nil, ps.reject(_rejectInvalidRequest, fmt.Errorf("%s: %w", op, err))
	}

	phone, err := entity.NormalizePhone(input.CustomerPhone, ps.countryCode)
	if err != nil {
		return nil, ps.reject(_rejectInvalidRequest, fmt.Errorf("%s: %w", op, err))
	}

	items, totalCents, err := ps.snapshotItems(ctx, merchant.ID, input.Items)
	if err != nil {
		reason := _rejectProductRejected
		if errors.Is(err, entity.ErrDataNotFound) {
			reason = _rejectProductNotFound
		}
		return nil, ps.reject(reason, fmt.Errorf("%s: %w", op, err))
	}

	deliveryDay, err := ps.checkDate(ctx, merchant, input.DeliveryDate)
	if err != nil {
		reason := _rejectClosedDate
		if errors.Is(err, errPastDate) {
			reason = _rejectPastDate
		}
		return nil, ps.reject(reason, fmt.Errorf("%s: %w", op, err))
	}

	order := &entity.Order{
		ID:              uuid.New(),
		MerchantID:      merchant.ID,
		Status:          entity.StatusPending,
		FulfillmentType: input.FulfillmentType,
		DeliveryDate:    deliveryDay,
		Notes:           input.Notes,
		TotalCents:      totalCents,
		Items:           items,
	}

	if err = ps.applyFulfillment(ctx, merchant.ID, order, input, deliveryDay); err != nil {
		reason := _rejectOutsideArea
		if input.FulfillmentType == entity.FulfillmentPickup {
			reason = _rejectSlotUnavailable
		}
		if errors.Is(err, entity.ErrInvalidData) {
			reason = _rejectInvalidRequest
		}
		return nil, ps.reject(reason, fmt.Errorf("%s: %w", op, err))
	}

	if err = order.Validate(); err != nil {
		return nil, ps.reject(_rejectInvalidRequest, fmt.Errorf("%s: %w", op, err))
	}

	if err = ps.writeOrder(ctx, merchant.ID, order, input.CustomerName, phone); err != nil {
		if errors.Is(err, entity.ErrConflictingData) {
			return nil, ps.reject(_rejectInternal, fmt.Errorf("%s: %w", op, err))
		}
		return nil, ps.reject(_rejectInternal, err)
	}

	ps.metrics.Placed(string(order.FulfillmentType), order.TotalCents)

	if pubErr := ps.publisher.OrderPlaced(ctx, order); pubErr != nil {
		log.Warnw("order placed event not published",
			"op", op,
			"order_id", order.ID.String(),
			"error", pubErr,
		)
	}

	log.Infow("order placed",
		"op", op,
		"order_id", order.ID.String(),
		"order_number", order.Number,
		"merchant", slug,
		"fulfillment", string(order.FulfillmentType),
		"total_cents", order.TotalCents,
	)

	return order, nil
}

var errPastDate = fmt.Errorf("delivery date is in the past: %w", entity.ErrUnprocessableEntity)

func validatePlaceOrderInput(input PlaceOrderInput) error {
	if input.CustomerName == "" {
		return fmt.Errorf("customer name is required: %w", entity.ErrInvalidData)
	}
	if input.CustomerPhone == "" {
		return fmt.Errorf("customer phone is required: %w", entity.ErrInvalidData)
	}
	if input.DeliveryDate.IsZero() {
		return fmt.Errorf("delivery date is required: %w", entity.ErrInvalidData)
	}
	if len(input.Items) == 0 {
		return fmt.Errorf("order has no items: %w", entity.ErrInvalidData)
	}
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return fmt.Errorf("item product id is required: %w", entity.ErrInvalidData)
		}
		// A non-positive quantity is a malformed submission; the product's
		// own minimum is enforced later against the catalog.
		if item.Quantity < 1 {
			return fmt.Errorf("item quantity must be at least 1: %w", entity.ErrInvalidData)
		}
	}

	switch input.FulfillmentType {
	case entity.FulfillmentPickup:
		if input.PickupSlotID == nil {
			return fmt.Errorf("pickup order requires a slot id: %w", entity.ErrInvalidData)
		}
	case entity.FulfillmentDelivery:
		addr := input.Address
		if addr.PostalCode == "" || addr.Street == "" || addr.StreetNumber == "" ||
			addr.Neighborhood == "" || addr.City == "" {
			return fmt.Errorf("delivery order requires the full address: %w", entity.ErrInvalidData)
		}
	default:
		return fmt.Errorf(
			"unknown fulfillment type %q: %w", input.FulfillmentType, entity.ErrInvalidData)
	}

	return nil
}

// snapshotItems validates every line against the live catalog and freezes
// names and prices. Quantities are checked against the product minimum.
func (ps *PlacementService) snapshotItems(
	ctx context.Context,
	merchantID uuid.UUID,
	inputs []PlaceOrderItemInput,
) ([]*entity.OrderItem, int64, error) {
	items := make([]*entity.OrderItem, 0, len(inputs))
	var totalCents int64

	for _, in := range inputs {
		product, err := ps.productRepo.GetByID(ctx, merchantID, in.ProductID)
		if err != nil {
			if errors.Is(err, entity.ErrDataNotFound) {
				return nil, 0, fmt.Errorf("product %s: %w", in.ProductID, err)
			}
			return nil, 0, fmt.Errorf("load product %s: %w", in.ProductID, err)
		}

		if !product.IsActive {
			return nil, 0, fmt.Errorf(
				"product %q is no longer available: %w",
				product.Name, entity.ErrUnprocessableEntity)
		}

		if in.Quantity < product.MinQuantity {
			return nil, 0, fmt.Errorf(
				"product %q requires at least %d units: %w",
				product.Name, product.MinQuantity, entity.ErrUnprocessableEntity)
		}

		unitPriceCents, variantLabel, err := product.ResolveUnitPrice(in.VariantID)
		if err != nil {
			return nil, 0, err
		}

		item := &entity.OrderItem{
			ID:             uuid.New(),
			ProductID:      product.ID,
			VariantID:      in.VariantID,
			ProductName:    product.Name,
			VariantLabel:   variantLabel,
			Quantity:       in.Quantity,
			UnitPriceCents: unitPriceCents,
		}
		items = append(items, item)
		totalCents += item.LineTotalCents()
	}

	return items, totalCents, nil
}

// checkDate truncates the requested date to the merchant's calendar day and
// verifies the store accepts orders for it.
func (ps *PlacementService) checkDate(
	ctx context.Context,
	merchant *entity.Merchant,
	date time.Time,
) (time.Time, error) {
	loc := merchant.Location()
	day := entity.DateOnly(date, loc)
	today := entity.DateOnly(time.Now(), loc)

	if day.Before(today) {
		return time.Time{}, errPastDate
	}

	open, err := ps.schedule.IsOpen(ctx, merchant, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("check schedule: %w", err)
	}
	if !open {
		return time.Time{}, fmt.Errorf(
			"store is closed on %s: %w",
			day.Format(time.DateOnly), entity.ErrUnprocessableEntity)
	}

	return day, nil
}

func (ps *PlacementService) applyFulfillment(
	ctx context.Context,
	merchantID uuid.UUID,
	order *entity.Order,
	input PlaceOrderInput,
	deliveryDay time.Time,
) error {
	switch input.FulfillmentType {
	case entity.FulfillmentPickup:
		slot, err := ps.slots.ResolveActiveSlot(
			ctx, merchantID, deliveryDay.Weekday(), *input.PickupSlotID)
		if err != nil {
			return err
		}
		order.PickupSlotID = &slot.ID
		order.PickupTimeLabel = slot.TimeLabel()

	case entity.FulfillmentDelivery:
		cep, err := entity.NormalizeCEP(input.Address.PostalCode)
		if err != nil {
			return err
		}

		result, err := ps.area.IsServed(ctx, merchantID, cep)
		if err != nil {
			return fmt.Errorf("check delivery area: %w", err)
		}
		if !result.Served {
			return fmt.Errorf(
				"postal code %s is outside the delivery area: %w",
				cep, entity.ErrUnprocessableEntity)
		}

		order.PostalCode = cep
		order.Street = input.Address.Street
		order.StreetNumber = input.Address.StreetNumber
		order.Neighborhood = input.Address.Neighborhood
		order.City = input.Address.City
		order.Complement = input.Address.Complement
	}

	return nil
}

// writeOrder persists the customer, the claimed order number, the header and
// the item snapshots together. Any failure rolls everything back.
func (ps *PlacementService) writeOrder(
	ctx context.Context,
	merchantID uuid.UUID,
	order *entity.Order,
	customerName, phone string,
) error {
	return ps.txManager.ExecuteInTransaction(
		ctx,
		"PlaceOrder",
		func(tx postgres.QueryExecuter) error {
			customer, err := ps.customerRepo.Upsert(ctx, tx, &entity.Customer{
				ID:         uuid.New(),
				MerchantID: merchantID,
				Name:       customerName,
				Phone:      phone,
			})
			if err != nil {
				return transaction.HandleError("PlaceOrder", "upsert customer", err)
			}
			order.CustomerID = customer.ID

			number, err := ps.merchantRepo.NextOrderNumber(ctx, tx, merchantID)
			if err != nil {
				return transaction.HandleError("PlaceOrder", "claim order number", err)
			}
			order.Number = number

			if _, err = ps.orderRepo.Create(ctx, tx, order); err != nil {
				return transaction.HandleError("PlaceOrder", "create order", err)
			}

			for _, item := range order.Items {
				item.OrderID = order.ID
			}
			if err = ps.itemRepo.CreateBatch(ctx, tx, order.Items); err != nil {
				return transaction.HandleError("PlaceOrder", "create items", err)
			}

			return nil
		},
	)
}

func (ps *PlacementService) reject(reason string, err error) error {
	ps.metrics.Rejected(reason)
	return err
}
