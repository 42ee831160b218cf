package httpt

import (
	"context"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/service"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/metric"

	"github.com/gin-gonic/gin"
)

// MerchantResolver resolves merchant identity for the two entry points:
// public routes name a store by slug, authenticated routes present an API
// token. Handlers never trust a client-supplied merchant id for writes.
type MerchantResolver interface {
	GetBySlug(ctx context.Context, slug string) (*entity.Merchant, error)
	GetByAPIToken(ctx context.Context, token string) (*entity.Merchant, error)
}

type OrderHandler struct {
	placement *service.PlacementService
	status    *service.StatusService
	views     *service.OrderViewService
	area      *service.DeliveryAreaService
	merchants MerchantResolver
	log       logger.Logger
	metrics   metric.HTTP
	router    *gin.Engine
}

func NewOrderHandler(
	placement *service.PlacementService,
	status *service.StatusService,
	views *service.OrderViewService,
	area *service.DeliveryAreaService,
	merchants MerchantResolver,
	log logger.Logger,
	metrics metric.HTTP,
) *OrderHandler {
	h := &OrderHandler{
		placement: placement,
		status:    status,
		views:     views,
		area:      area,
		merchants: merchants,
		log:       log,
		metrics:   metrics,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	h.router = router

	h.setupRoutes()

	return h
}

func (h *OrderHandler) Engine() *gin.Engine {
	return h.router
}
