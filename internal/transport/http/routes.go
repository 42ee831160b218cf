package httpt

import (
	"net/http"

	_ "github.com/leohenricardoso/encomenda-zap-sub000/docs" // for swagger

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Storefront Order Service API
// @version         1.0
// @description     Order placement and lifecycle API for small-merchant storefronts
// @contact.name    API Support
// @contact.email   support@example.com
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Token
func (h *OrderHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	v1 := h.router.Group("/api/v1")

	stores := v1.Group("/stores/:slug")
	{
		stores.POST("/orders", h.placeOrderHandler)
		stores.GET("/delivery-area/:cep", h.deliveryAreaHandler)
	}

	orders := v1.Group("/orders")
	orders.Use(h.authMiddleware())
	{
		orders.GET("", h.listOrdersHandler)
		orders.GET("/:order_id", h.getOrderHandler)
		orders.PATCH("/:order_id/status", h.changeStatusHandler)
	}

	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
