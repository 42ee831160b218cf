package app

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/config"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/repository"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/service"
	httpt "github.com/leohenricardoso/encomenda-zap-sub000/internal/transport/http"
	kafkat "github.com/leohenricardoso/encomenda-zap-sub000/internal/transport/kafka"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/cache"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/kafka"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/kafka/dlq"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/metric"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	db, dbErr := initDatabase(&cfg.Postgres, log)
	if dbErr != nil {
		return dbErr
	}
	defer closeDB(db)

	txManager, txErr := initTransactionManager(db, log, metrics)
	if txErr != nil {
		return txErr
	}

	viewCache, cacheErr := initCache(&cfg.Cache, log, metrics)
	if cacheErr != nil {
		return cacheErr
	}
	defer stopCache(viewCache)

	publisher, pubErr := initPublisher(cfg, log, metrics)
	if pubErr != nil {
		return pubErr
	}
	defer closePublisher(publisher, log)

	services := initServices(cfg, db, txManager, viewCache, publisher, log, metrics)

	merchantRepo := repository.NewMerchantRepository(db)

	if serverErr := initHTTPServer(ctx, eg, &cfg.HTTP, services, merchantRepo, log, metrics); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

// services bundles the four request-facing services the HTTP layer needs.
type services struct {
	placement *service.PlacementService
	status    *service.StatusService
	views     *service.OrderViewService
	area      *service.DeliveryAreaService
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

func initDatabase(cfg *config.Postgres, log logger.Logger) (*postgres.Postgres, error) {
	db, err := postgres.NewPostgres(
		cfg,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.PoolMax),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDatabase: %w", err)
	}
	return db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initTransactionManager(
	db *postgres.Postgres,
	log logger.Logger,
	metrics metric.Factory,
) (transaction.Manager, error) {
	txManager, err := transaction.NewManager(
		db,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initTransactionManager: %w", err)
	}
	return txManager, nil
}

func initCache(
	cfg *config.Cache,
	log logger.Logger,
	metrics metric.Factory,
) (cache.Cache[uuid.UUID, *entity.OrderView], error) {
	viewCache, err := cache.NewLRUCache[uuid.UUID, *entity.OrderView](
		cfg.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initCache: %w", err)
	}
	viewCache.StartCleanup(cfg.CleanupInterval)
	return viewCache, nil
}

func stopCache(viewCache cache.Cache[uuid.UUID, *entity.OrderView]) {
	if viewCache != nil {
		viewCache.StopCleanup()
	}
}

func initPublisher(
	cfg *config.Config,
	log logger.Logger,
	metrics metric.Factory,
) (*kafkat.Publisher, error) {
	writer, err := kafka.NewEventWriter(cfg.Events, log.With("component", "event writer"))
	if err != nil {
		return nil, fmt.Errorf("app.initPublisher: event writer creation: %w", err)
	}

	deadLetterQueue, err := dlq.NewDLQ(cfg.DLQ, log.With("component", "dlq"), metrics.DLQ())
	if err != nil {
		return nil, fmt.Errorf("app.initPublisher: dead letter queue creation: %w", err)
	}

	return kafkat.NewPublisher(
		writer,
		deadLetterQueue,
		log.With("component", "event publisher"),
		metrics.Publisher(),
	), nil
}

func closePublisher(publisher *kafkat.Publisher, log logger.Logger) {
	if publisher == nil {
		return
	}
	if err := publisher.Close(); err != nil {
		log.Errorw("failed to close event publisher", "error", err)
	}
}

func initServices(
	cfg *config.Config,
	db *postgres.Postgres,
	txManager transaction.Manager,
	viewCache cache.Cache[uuid.UUID, *entity.OrderView],
	publisher *kafkat.Publisher,
	log logger.Logger,
	metrics metric.Factory,
) *services {
	merchantRepo := repository.NewMerchantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewItemRepository(db)
	rangeRepo := repository.NewDeliveryRangeRepository(db)
	slotRepo := repository.NewPickupSlotRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	scheduleService := service.NewScheduleService(
		scheduleRepo,
		cfg.Ordering.OpenWeekdays,
		log.With("component", "schedule service"),
	)
	areaService := service.NewDeliveryAreaService(
		rangeRepo,
		log.With("component", "delivery area service"),
	)
	slotService := service.NewSlotService(
		slotRepo,
		log.With("component", "slot service"),
	)

	placementService := service.NewPlacementService(
		merchantRepo,
		customerRepo,
		productRepo,
		orderRepo,
		itemRepo,
		txManager,
		scheduleService,
		areaService,
		slotService,
		publisher,
		log.With("component", "placement service"),
		metrics.Orders(),
		cfg.Ordering.PhoneCountryCode,
	)

	statusService := service.NewStatusService(
		orderRepo,
		txManager,
		viewCache,
		publisher,
		log.With("component", "status service"),
		metrics.Orders(),
	)

	viewService := service.NewOrderViewService(
		orderRepo,
		itemRepo,
		customerRepo,
		viewCache,
		cfg.Cache.TTL,
		log.With("component", "order view service"),
		metrics.Cache(),
	)

	return &services{
		placement: placementService,
		status:    statusService,
		views:     viewService,
		area:      areaService,
	}
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	svcs *services,
	merchants httpt.MerchantResolver,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer, err := httpt.NewHTTPServer(
		httpt.NewOrderHandler(
			svcs.placement,
			svcs.status,
			svcs.views,
			svcs.area,
			merchants,
			log,
			metrics.HTTP(),
		),
		cfg,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !isShutdownSignal(err) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}

func isShutdownSignal(err error) bool {
	return err != nil && err.Error() == "shutdown signal"
}
