package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	mock_repository "github.com/leohenricardoso/encomenda-zap-sub000/internal/repository/mock"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/service"
	mock_logger "github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger/mock"
	mock_metric "github.com/leohenricardoso/encomenda-zap-sub000/pkg/metric/mock"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"
	mock_transaction "github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres/transaction/mock"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

const _testCountryCode = "55"

func generateFakeMerchant() *entity.Merchant {
	return &entity.Merchant{
		ID:        uuid.New(),
		Slug:      gofakeit.Username(),
		Name:      gofakeit.Company(),
		Phone:     "5511" + gofakeit.DigitN(9),
		Timezone:  "America/Sao_Paulo",
		CreatedAt: gofakeit.Date(),
	}
}

func generateFakeProduct(merchantID uuid.UUID, priceCents int64) *entity.Product {
	return &entity.Product{
		ID:          uuid.New(),
		MerchantID:  merchantID,
		Name:        gofakeit.ProductName(),
		Description: gofakeit.Sentence(6),
		PriceCents:  &priceCents,
		MinQuantity: 1,
		IsActive:    true,
	}
}

func generateFakeSlot(merchantID uuid.UUID, day time.Weekday) *entity.PickupSlot {
	return &entity.PickupSlot{
		ID:         uuid.New(),
		MerchantID: merchantID,
		DayOfWeek:  day,
		StartTime:  "09:00",
		EndTime:    "12:00",
		IsActive:   true,
	}
}

func tomorrow() time.Time {
	return time.Now().AddDate(0, 0, 1)
}

// pickupInput builds a valid one-line pickup submission for the product.
func pickupInput(product *entity.Product, slotID uuid.UUID, quantity int) service.PlaceOrderInput {
	return service.PlaceOrderInput{
		CustomerName:    gofakeit.Name(),
		CustomerPhone:   "(11) 98765-4321",
		FulfillmentType: entity.FulfillmentPickup,
		DeliveryDate:    tomorrow(),
		PickupSlotID:    &slotID,
		Items: []service.PlaceOrderItemInput{
			{ProductID: product.ID, Quantity: quantity},
		},
	}
}

func deliveryInput(product *entity.Product, rawCEP string, quantity int) service.PlaceOrderInput {
	return service.PlaceOrderInput{
		CustomerName:    gofakeit.Name(),
		CustomerPhone:   "(11) 98765-4321",
		FulfillmentType: entity.FulfillmentDelivery,
		DeliveryDate:    tomorrow(),
		Address: service.PlaceOrderAddress{
			PostalCode:   rawCEP,
			Street:       gofakeit.Street(),
			StreetNumber: "100",
			Neighborhood: gofakeit.City(),
			City:         gofakeit.City(),
		},
		Items: []service.PlaceOrderItemInput{
			{ProductID: product.ID, Quantity: quantity},
		},
	}
}

type placementMocks struct {
	merchantRepo *mock_repository.MockMerchantRepository
	customerRepo *mock_repository.MockCustomerRepository
	productRepo  *mock_repository.MockProductRepository
	orderRepo    *mock_repository.MockOrderRepository
	itemRepo     *mock_repository.MockItemRepository
	txManager    *mock_transaction.MockManager
	schedule     *mock_repository.MockScheduleChecker
	area         *mock_repository.MockAreaChecker
	slots        *mock_repository.MockSlotResolver
	publisher    *mock_repository.MockEventPublisher
	metrics      *mock_metric.MockOrders
}

// expectWrite wires the happy-path transaction: the manager runs the
// callback with a nil executer and every step succeeds.
func expectWrite(ctx context.Context, m placementMocks, merchant *entity.Merchant, number int64) {
	m.txManager.EXPECT().ExecuteInTransaction(
		ctx, "PlaceOrder", gomock.Any(),
	).DoAndReturn(func(
		ctx context.Context,
		opName string,
		txFunc func(postgres.QueryExecuter) error,
	) error {
		return txFunc(nil)
	}).Times(1)

	m.customerRepo.EXPECT().Upsert(ctx, nil, gomock.Any()).
		DoAndReturn(func(
			ctx context.Context,
			qe postgres.QueryExecuter,
			customer *entity.Customer,
		) (*entity.Customer, error) {
			return customer, nil
		}).Times(1)

	m.merchantRepo.EXPECT().NextOrderNumber(ctx, nil, merchant.ID).
		Return(number, nil).Times(1)

	m.orderRepo.EXPECT().Create(ctx, nil, gomock.Any()).
		DoAndReturn(func(
			ctx context.Context,
			qe postgres.QueryExecuter,
			order *entity.Order,
		) (*entity.Order, error) {
			return order, nil
		}).Times(1)

	m.itemRepo.EXPECT().CreateBatch(ctx, nil, gomock.Any()).
		Return(nil).Times(1)
}

func TestPlacementService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	merchant := generateFakeMerchant()
	product := generateFakeProduct(merchant.ID, 2990)
	slot := generateFakeSlot(merchant.ID, tomorrow().Weekday())

	testCases := []struct {
		desc  string
		input func() service.PlaceOrderInput
		mocks func(m placementMocks)
		check func(t *testing.T, order *entity.Order)
		err   error
	}{
		{
			desc: "Success_Pickup",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 2)
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(product, nil).Times(1)
				m.schedule.EXPECT().IsOpen(ctx, merchant, gomock.Any()).
					Return(true, nil).Times(1)
				m.slots.EXPECT().ResolveActiveSlot(ctx, merchant.ID, gomock.Any(), slot.ID).
					Return(slot, nil).Times(1)
				expectWrite(ctx, m, merchant, 42)
				m.metrics.EXPECT().Placed("PICKUP", int64(5980)).Times(1)
				m.publisher.EXPECT().OrderPlaced(ctx, gomock.Any()).Return(nil).Times(1)
			},
			check: func(t *testing.T, order *entity.Order) {
				if order.Number != 42 {
					t.Errorf("expected order number 42, got %d", order.Number)
				}
				if order.Status != entity.StatusPending {
					t.Errorf("expected PENDING, got %s", order.Status)
				}
				if order.TotalCents != 5980 {
					t.Errorf("expected total 5980, got %d", order.TotalCents)
				}
				if order.PickupTimeLabel != "09:00-12:00" {
					t.Errorf("unexpected pickup label %q", order.PickupTimeLabel)
				}
				if order.CustomerID == uuid.Nil {
					t.Error("expected customer id to be set")
				}
				if len(order.Items) != 1 || order.Items[0].UnitPriceCents != 2990 {
					t.Errorf("expected one item frozen at 2990, got %+v", order.Items)
				}
			},
		},
		{
			desc: "Success_Delivery",
			input: func() service.PlaceOrderInput {
				return deliveryInput(product, "01310-100", 1)
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(product, nil).Times(1)
				m.schedule.EXPECT().IsOpen(ctx, merchant, gomock.Any()).
					Return(true, nil).Times(1)
				m.area.EXPECT().IsServed(ctx, merchant.ID, "01310100").
					Return(service.AreaResult{Served: true}, nil).Times(1)
				expectWrite(ctx, m, merchant, 7)
				m.metrics.EXPECT().Placed("DELIVERY", int64(2990)).Times(1)
				m.publisher.EXPECT().OrderPlaced(ctx, gomock.Any()).Return(nil).Times(1)
			},
			check: func(t *testing.T, order *entity.Order) {
				if order.PostalCode != "01310100" {
					t.Errorf("expected normalized CEP, got %q", order.PostalCode)
				}
				if order.PickupSlotID != nil {
					t.Error("delivery order must not carry a pickup slot")
				}
			},
		},
		{
			desc: "StoreNotFound",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 1)
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(nil, entity.ErrDataNotFound).Times(1)
				m.metrics.EXPECT().Rejected("store_not_found").Times(1)
			},
			err: entity.ErrDataNotFound,
		},
		{
			desc: "MalformedPhone",
			input: func() service.PlaceOrderInput {
				input := pickupInput(product, slot.ID, 1)
				input.CustomerPhone = "123"
				return input
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.metrics.EXPECT().Rejected("invalid_request").Times(1)
			},
			err: entity.ErrInvalidData,
		},
		{
			desc: "ZeroQuantity",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 0)
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.metrics.EXPECT().Rejected("invalid_request").Times(1)
			},
			err: entity.ErrInvalidData,
		},
		{
			desc: "UnknownProduct",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 1)
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(nil, entity.ErrDataNotFound).Times(1)
				m.metrics.EXPECT().Rejected("product_not_found").Times(1)
			},
			err: entity.ErrDataNotFound,
		},
		{
			desc: "InactiveProduct",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 1)
			},
			mocks: func(m placementMocks) {
				inactive := generateFakeProduct(merchant.ID, 2990)
				inactive.ID = product.ID
				inactive.IsActive = false

				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(inactive, nil).Times(1)
				m.metrics.EXPECT().Rejected("product_rejected").Times(1)
			},
			err: entity.ErrUnprocessableEntity,
		},
		{
			desc: "BelowMinimumQuantity",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 5)
			},
			mocks: func(m placementMocks) {
				bulk := generateFakeProduct(merchant.ID, 2990)
				bulk.ID = product.ID
				bulk.MinQuantity = 6

				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(bulk, nil).Times(1)
				m.metrics.EXPECT().Rejected("product_rejected").Times(1)
			},
			err: entity.ErrUnprocessableEntity,
		},
		{
			desc: "ExactMinimumQuantity",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 6)
			},
			mocks: func(m placementMocks) {
				bulk := generateFakeProduct(merchant.ID, 1000)
				bulk.ID = product.ID
				bulk.MinQuantity = 6

				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(bulk, nil).Times(1)
				m.schedule.EXPECT().IsOpen(ctx, merchant, gomock.Any()).
					Return(true, nil).Times(1)
				m.slots.EXPECT().ResolveActiveSlot(ctx, merchant.ID, gomock.Any(), slot.ID).
					Return(slot, nil).Times(1)
				expectWrite(ctx, m, merchant, 8)
				m.metrics.EXPECT().Placed("PICKUP", int64(6000)).Times(1)
				m.publisher.EXPECT().OrderPlaced(ctx, gomock.Any()).Return(nil).Times(1)
			},
			check: func(t *testing.T, order *entity.Order) {
				if order.TotalCents != 6000 {
					t.Errorf("expected total 6000, got %d", order.TotalCents)
				}
			},
		},
		{
			desc: "ForeignVariant",
			input: func() service.PlaceOrderInput {
				input := pickupInput(product, slot.ID, 1)
				foreign := uuid.New()
				input.Items[0].VariantID = &foreign
				return input
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(product, nil).Times(1)
				m.metrics.EXPECT().Rejected("product_rejected").Times(1)
			},
			err: entity.ErrUnprocessableEntity,
		},
		{
			desc: "PastDate",
			input: func() service.PlaceOrderInput {
				input := pickupInput(product, slot.ID, 1)
				input.DeliveryDate = time.Now().AddDate(0, 0, -1)
				return input
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(product, nil).Times(1)
				m.metrics.EXPECT().Rejected("past_date").Times(1)
			},
			err: entity.ErrUnprocessableEntity,
		},
		{
			desc: "ClosedDate",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 1)
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(product, nil).Times(1)
				m.schedule.EXPECT().IsOpen(ctx, merchant, gomock.Any()).
					Return(false, nil).Times(1)
				m.metrics.EXPECT().Rejected("closed_date").Times(1)
			},
			err: entity.ErrUnprocessableEntity,
		},
		{
			desc: "SlotUnavailable",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 1)
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(product, nil).Times(1)
				m.schedule.EXPECT().IsOpen(ctx, merchant, gomock.Any()).
					Return(true, nil).Times(1)
				m.slots.EXPECT().ResolveActiveSlot(ctx, merchant.ID, gomock.Any(), slot.ID).
					Return(nil, entity.ErrUnprocessableEntity).Times(1)
				m.metrics.EXPECT().Rejected("slot_unavailable").Times(1)
			},
			err: entity.ErrUnprocessableEntity,
		},
		{
			desc: "OutsideDeliveryArea",
			input: func() service.PlaceOrderInput {
				return deliveryInput(product, "99999-999", 1)
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(product, nil).Times(1)
				m.schedule.EXPECT().IsOpen(ctx, merchant, gomock.Any()).
					Return(true, nil).Times(1)
				m.area.EXPECT().IsServed(ctx, merchant.ID, "99999999").
					Return(service.AreaResult{}, nil).Times(1)
				m.metrics.EXPECT().Rejected("outside_delivery_area").Times(1)
			},
			err: entity.ErrUnprocessableEntity,
		},
		{
			desc: "TransactionError",
			input: func() service.PlaceOrderInput {
				return pickupInput(product, slot.ID, 1)
			},
			mocks: func(m placementMocks) {
				m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).
					Return(merchant, nil).Times(1)
				m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).
					Return(product, nil).Times(1)
				m.schedule.EXPECT().IsOpen(ctx, merchant, gomock.Any()).
					Return(true, nil).Times(1)
				m.slots.EXPECT().ResolveActiveSlot(ctx, merchant.ID, gomock.Any(), slot.ID).
					Return(slot, nil).Times(1)
				m.txManager.EXPECT().ExecuteInTransaction(
					ctx, "PlaceOrder", gomock.Any(),
				).Return(errors.New("transaction error")).Times(1)
				m.metrics.EXPECT().Rejected("internal").Times(1)
			},
			err: errors.New("transaction error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := placementMocks{
				merchantRepo: mock_repository.NewMockMerchantRepository(ctrl),
				customerRepo: mock_repository.NewMockCustomerRepository(ctrl),
				productRepo:  mock_repository.NewMockProductRepository(ctrl),
				orderRepo:    mock_repository.NewMockOrderRepository(ctrl),
				itemRepo:     mock_repository.NewMockItemRepository(ctrl),
				txManager:    mock_transaction.NewMockManager(ctrl),
				schedule:     mock_repository.NewMockScheduleChecker(ctrl),
				area:         mock_repository.NewMockAreaChecker(ctrl),
				slots:        mock_repository.NewMockSlotResolver(ctrl),
				publisher:    mock_repository.NewMockEventPublisher(ctrl),
				metrics:      mock_metric.NewMockOrders(ctrl),
			}

			log := mock_logger.NewMockLogger(ctrl)
			log.EXPECT().Ctx(gomock.Any()).Return(log).AnyTimes()
			log.EXPECT().Infow(gomock.Any(), gomock.Any()).AnyTimes()
			log.EXPECT().Warnw(gomock.Any(), gomock.Any()).AnyTimes()

			tc.mocks(m)

			s := service.NewPlacementService(
				m.merchantRepo,
				m.customerRepo,
				m.productRepo,
				m.orderRepo,
				m.itemRepo,
				m.txManager,
				m.schedule,
				m.area,
				m.slots,
				m.publisher,
				log,
				m.metrics,
				_testCountryCode,
			)

			order, err := s.PlaceOrder(ctx, merchant.Slug, tc.input())

			if tc.err != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tc.err)
				}
				if tc.desc == "TransactionError" {
					if err.Error() != "transaction error" {
						t.Fatalf("expected 'transaction error', got %q", err.Error())
					}
				} else if !errors.Is(err, tc.err) {
					t.Fatalf("expected error to contain %v, got %v", tc.err, err)
				}
				if order != nil {
					t.Error("expected nil order on error, got non-nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if order == nil {
				t.Fatal("expected non-nil order on success")
			}
			if tc.check != nil {
				tc.check(t, order)
			}
		})
	}
}

func TestPlacementService_PlaceOrder_PriceFreeze(t *testing.T) {
	ctx := context.Background()

	merchant := generateFakeMerchant()
	product := generateFakeProduct(merchant.ID, 4500)
	slot := generateFakeSlot(merchant.ID, tomorrow().Weekday())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := placementMocks{
		merchantRepo: mock_repository.NewMockMerchantRepository(ctrl),
		customerRepo: mock_repository.NewMockCustomerRepository(ctrl),
		productRepo:  mock_repository.NewMockProductRepository(ctrl),
		orderRepo:    mock_repository.NewMockOrderRepository(ctrl),
		itemRepo:     mock_repository.NewMockItemRepository(ctrl),
		txManager:    mock_transaction.NewMockManager(ctrl),
		schedule:     mock_repository.NewMockScheduleChecker(ctrl),
		area:         mock_repository.NewMockAreaChecker(ctrl),
		slots:        mock_repository.NewMockSlotResolver(ctrl),
		publisher:    mock_repository.NewMockEventPublisher(ctrl),
		metrics:      mock_metric.NewMockOrders(ctrl),
	}

	log := mock_logger.NewMockLogger(ctrl)
	log.EXPECT().Ctx(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Infow(gomock.Any(), gomock.Any()).AnyTimes()

	m.merchantRepo.EXPECT().GetBySlug(ctx, merchant.Slug).Return(merchant, nil).Times(1)
	m.productRepo.EXPECT().GetByID(ctx, merchant.ID, product.ID).Return(product, nil).Times(1)
	m.schedule.EXPECT().IsOpen(ctx, merchant, gomock.Any()).Return(true, nil).Times(1)
	m.slots.EXPECT().ResolveActiveSlot(ctx, merchant.ID, gomock.Any(), slot.ID).
		Return(slot, nil).Times(1)
	expectWrite(ctx, m, merchant, 1)
	m.metrics.EXPECT().Placed("PICKUP", int64(4500)).Times(1)
	m.publisher.EXPECT().OrderPlaced(ctx, gomock.Any()).Return(nil).Times(1)

	s := service.NewPlacementService(
		m.merchantRepo,
		m.customerRepo,
		m.productRepo,
		m.orderRepo,
		m.itemRepo,
		m.txManager,
		m.schedule,
		m.area,
		m.slots,
		m.publisher,
		log,
		m.metrics,
		_testCountryCode,
	)

	order, err := s.PlaceOrder(ctx, merchant.Slug, pickupInput(product, slot.ID, 1))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The snapshot keeps its own copies; repricing the catalog afterwards
	// must not touch the placed order.
	*product.PriceCents = 9900
	product.Name = "renamed"

	if order.Items[0].UnitPriceCents != 4500 {
		t.Errorf("expected frozen unit price 4500, got %d", order.Items[0].UnitPriceCents)
	}
	if order.Items[0].ProductName == "renamed" {
		t.Error("expected frozen product name, got live catalog name")
	}
	if order.TotalCents != 4500 {
		t.Errorf("expected total 4500, got %d", order.TotalCents)
	}
}
