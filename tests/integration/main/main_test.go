package main

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/config"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/repository"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/service"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/cache"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/metric"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres/transaction"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// noopPublisher stands in for the kafka publisher; event delivery has its
// own end-to-end coverage.
type noopPublisher struct{}

func (noopPublisher) OrderPlaced(context.Context, *entity.Order) error { return nil }

func (noopPublisher) OrderStatusChanged(context.Context, *entity.Order, entity.OrderStatus) error {
	return nil
}

type IntegrationTestSuite struct {
	suite.Suite

	db        *postgres.Postgres
	cfg       *config.Config
	placement *service.PlacementService
	status    *service.StatusService
	views     *service.OrderViewService
	area      *service.DeliveryAreaService
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load()
	s.Require().NoError(err, "Failed to load configuration")
	s.cfg = cfg

	testLogger, err := logger.NewAdapter(cfg)
	s.Require().NoError(err)

	maxRetries := 10
	var db *postgres.Postgres

	for i := range maxRetries {
		db, err = postgres.NewPostgres(&cfg.Postgres, testLogger)
		if err == nil {
			break
		}
		testLogger.Info("Waiting for database to be ready...", "attempt", i+1, "error", err.Error())
		time.Sleep(5 * time.Second)
	}
	s.Require().NoError(err, "Failed to connect to postgres after retries")
	s.db = db

	err = db.Pool.Ping(ctx)
	s.Require().NoError(err, "Failed to ping database")

	metrics := metric.NewFactory()

	txManager, err := transaction.NewManager(db, testLogger, metrics.Transaction())
	s.Require().NoError(err)

	merchantRepo := repository.NewMerchantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewItemRepository(db)
	rangeRepo := repository.NewDeliveryRangeRepository(db)
	slotRepo := repository.NewPickupSlotRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	viewCache, err := cache.NewLRUCache[uuid.UUID, *entity.OrderView](
		cfg.Cache.Capacity,
		testLogger,
		metrics.Cache(),
	)
	s.Require().NoError(err)

	scheduleService := service.NewScheduleService(
		scheduleRepo, cfg.Ordering.OpenWeekdays, testLogger)
	s.area = service.NewDeliveryAreaService(rangeRepo, testLogger)
	slotService := service.NewSlotService(slotRepo, testLogger)

	s.placement = service.NewPlacementService(
		merchantRepo,
		customerRepo,
		productRepo,
		orderRepo,
		itemRepo,
		txManager,
		scheduleService,
		s.area,
		slotService,
		noopPublisher{},
		testLogger,
		metrics.Orders(),
		cfg.Ordering.PhoneCountryCode,
	)
	s.status = service.NewStatusService(
		orderRepo, txManager, viewCache, noopPublisher{}, testLogger, metrics.Orders())
	s.views = service.NewOrderViewService(
		orderRepo, itemRepo, customerRepo, viewCache, cfg.Cache.TTL,
		testLogger, metrics.Cache())
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Pool.Close()
	}
}

func (s *IntegrationTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.Pool.Exec(
		ctx,
		`TRUNCATE TABLE order_items, orders, customers, schedule_days, pickup_slots,
			delivery_ranges, product_variants, products, merchants RESTART IDENTITY CASCADE;`,
	)
	s.Require().NoError(err)
}

type fixture struct {
	merchant *entity.Merchant
	product  *entity.Product
	slot     *entity.PickupSlot
}

// seedStore inserts a merchant open tomorrow, one base-priced product and a
// pickup slot on tomorrow's weekday.
func (s *IntegrationTestSuite) seedStore(ctx context.Context, priceCents int64) fixture {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)

	merchant := &entity.Merchant{
		ID:       uuid.New(),
		Slug:     gofakeit.Username(),
		Name:     gofakeit.Company(),
		Timezone: "UTC",
	}
	_, err := s.db.Pool.Exec(ctx,
		`INSERT INTO merchants (id, slug, name, phone, timezone, api_token)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		merchant.ID, merchant.Slug, merchant.Name, "5511"+gofakeit.DigitN(9),
		merchant.Timezone, uuid.NewString(),
	)
	s.Require().NoError(err)

	_, err = s.db.Pool.Exec(ctx,
		`INSERT INTO schedule_days (id, merchant_id, date, is_open)
		 VALUES ($1, $2, $3, TRUE)`,
		uuid.New(), merchant.ID, tomorrow.Format(time.DateOnly),
	)
	s.Require().NoError(err)

	product := &entity.Product{
		ID:         uuid.New(),
		MerchantID: merchant.ID,
		Name:       gofakeit.ProductName(),
		PriceCents: &priceCents,
	}
	_, err = s.db.Pool.Exec(ctx,
		`INSERT INTO products (id, merchant_id, name, price_cents, min_quantity, is_active)
		 VALUES ($1, $2, $3, $4, 1, TRUE)`,
		product.ID, product.MerchantID, product.Name, priceCents,
	)
	s.Require().NoError(err)

	slot := &entity.PickupSlot{
		ID:         uuid.New(),
		MerchantID: merchant.ID,
		DayOfWeek:  tomorrow.Weekday(),
		StartTime:  "09:00",
		EndTime:    "12:00",
		IsActive:   true,
	}
	_, err = s.db.Pool.Exec(ctx,
		`INSERT INTO pickup_slots (id, merchant_id, day_of_week, start_time, end_time, is_active)
		 VALUES ($1, $2, $3, $4, $5, TRUE)`,
		slot.ID, slot.MerchantID, int(slot.DayOfWeek), slot.StartTime, slot.EndTime,
	)
	s.Require().NoError(err)

	return fixture{merchant: merchant, product: product, slot: slot}
}

func (s *IntegrationTestSuite) seedRange(ctx context.Context, merchantID uuid.UUID, start, end string) {
	_, err := s.db.Pool.Exec(ctx,
		`INSERT INTO delivery_ranges (id, merchant_id, cep_start, cep_end)
		 VALUES ($1, $2, $3, $4)`,
		uuid.New(), merchantID, start, end,
	)
	s.Require().NoError(err)
}

func pickupOrderInput(productID, slotID uuid.UUID, quantity int) service.PlaceOrderInput {
	return service.PlaceOrderInput{
		CustomerName:    gofakeit.Name(),
		CustomerPhone:   "(11) 98765-4321",
		FulfillmentType: entity.FulfillmentPickup,
		DeliveryDate:    time.Now().UTC().AddDate(0, 0, 1),
		PickupSlotID:    &slotID,
		Items: []service.PlaceOrderItemInput{
			{ProductID: productID, Quantity: quantity},
		},
	}
}

func (s *IntegrationTestSuite) TestPlaceAndGetOrder() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fx := s.seedStore(ctx, 2990)

	placed, err := s.placement.PlaceOrder(ctx, fx.merchant.Slug, pickupOrderInput(fx.product.ID, fx.slot.ID, 2))
	s.Require().NoError(err)
	s.Require().NotNil(placed)
	s.Require().EqualValues(1, placed.Number)
	s.Require().Equal(entity.StatusPending, placed.Status)
	s.Require().EqualValues(5980, placed.TotalCents)
	s.Require().Equal("09:00-12:00", placed.PickupTimeLabel)

	second, err := s.placement.PlaceOrder(ctx, fx.merchant.Slug, pickupOrderInput(fx.product.ID, fx.slot.ID, 1))
	s.Require().NoError(err)
	s.Require().EqualValues(2, second.Number, "order numbers must be sequential per merchant")

	view, err := s.views.GetOrder(ctx, fx.merchant.ID, placed.ID)
	s.Require().NoError(err)
	s.Require().NotNil(view.Customer)
	s.Require().Equal("5511987654321", view.Customer.Phone)
	s.Require().Len(view.Order.Items, 1)
	s.Require().Equal(fx.product.Name, view.Order.Items[0].ProductName)
	s.Require().EqualValues(2990, view.Order.Items[0].UnitPriceCents)

	pending := entity.StatusPending
	orders, err := s.views.ListOrders(ctx, fx.merchant.ID, &pending, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(orders, 2)
}

func (s *IntegrationTestSuite) TestStatusLifecycle() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fx := s.seedStore(ctx, 1500)

	placed, err := s.placement.PlaceOrder(ctx, fx.merchant.Slug, pickupOrderInput(fx.product.ID, fx.slot.ID, 1))
	s.Require().NoError(err)

	approved, err := s.status.ChangeStatus(ctx, fx.merchant.ID, placed.ID, entity.StatusApproved)
	s.Require().NoError(err)
	s.Require().Equal(entity.StatusApproved, approved.Status)

	rejected, err := s.status.ChangeStatus(ctx, fx.merchant.ID, placed.ID, entity.StatusRejected)
	s.Require().NoError(err)
	s.Require().Equal(entity.StatusRejected, rejected.Status)

	_, err = s.status.ChangeStatus(ctx, fx.merchant.ID, placed.ID, entity.StatusApproved)
	s.Require().Error(err)
	s.Require().True(errors.Is(err, entity.ErrStatusTransition), "REJECTED must be terminal")

	_, err = s.status.ChangeStatus(ctx, uuid.New(), placed.ID, entity.StatusApproved)
	s.Require().True(errors.Is(err, entity.ErrDataNotFound), "orders are scoped per merchant")
}

func (s *IntegrationTestSuite) TestDeliveryArea() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fx := s.seedStore(ctx, 2000)
	s.seedRange(ctx, fx.merchant.ID, "01000000", "05999999")

	result, err := s.area.CheckCode(ctx, fx.merchant.ID, "01310-100")
	s.Require().NoError(err)
	s.Require().True(result.Served)
	s.Require().False(result.Unrestricted)

	result, err = s.area.CheckCode(ctx, fx.merchant.ID, "99999-999")
	s.Require().NoError(err)
	s.Require().False(result.Served)

	input := pickupOrderInput(fx.product.ID, fx.slot.ID, 1)
	input.FulfillmentType = entity.FulfillmentDelivery
	input.PickupSlotID = nil
	input.Address = service.PlaceOrderAddress{
		PostalCode:   "99999-999",
		Street:       gofakeit.Street(),
		StreetNumber: "42",
		Neighborhood: gofakeit.City(),
		City:         gofakeit.City(),
	}

	_, err = s.placement.PlaceOrder(ctx, fx.merchant.Slug, input)
	s.Require().True(errors.Is(err, entity.ErrUnprocessableEntity))

	input.Address.PostalCode = "01310-100"
	placed, err := s.placement.PlaceOrder(ctx, fx.merchant.Slug, input)
	s.Require().NoError(err)
	s.Require().Equal("01310100", placed.PostalCode)
}

func TestIntegration(t *testing.T) {
	t.Parallel()
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration test; set INTEGRATION_TEST to run.")
	}
	suite.Run(t, new(IntegrationTestSuite))
}
