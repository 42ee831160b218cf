package httpt

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/service"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
	_writeContextTimeout   = 5 * time.Second
)

// @Summary Place an order
// @Description Runs the full placement pipeline for a storefront submission
// @Tags Storefront
// @Accept json
// @Produce json
// @Param slug path string true "Store slug"
// @Param request body httpt.placeOrderRequest true "Order submission"
// @Success 201 {object} entity.Order "Confirmed order with frozen prices"
// @Failure 400 {object} httpt.ErrorResponse "Malformed request"
// @Failure 404 {object} httpt.ErrorResponse "Store or product not found"
// @Failure 422 {object} httpt.ErrorResponse "Business rule violated"
// @Failure 500 {object} httpt.ErrorResponse "Internal error"
// @Router /stores/{slug}/orders [post]
func (h *OrderHandler) placeOrderHandler(c *gin.Context) {
	const op = "transport.placeOrderHandler"

	log := h.log.Ctx(c.Request.Context())
	slug := c.Param("slug")

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	deliveryDate, err := time.Parse(time.DateOnly, req.DeliveryDate)
	if err != nil {
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid delivery date",
			logger.String("op", op),
			logger.String("value", req.DeliveryDate),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "delivery_date must be YYYY-MM-DD"})
		return
	}

	input := service.PlaceOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		FulfillmentType: entity.FulfillmentType(req.FulfillmentType),
		DeliveryDate:    deliveryDate,
		PickupSlotID:    req.PickupSlotID,
		Notes:           req.Notes,
	}
	if req.Address != nil {
		input.Address = service.PlaceOrderAddress{
			PostalCode:   req.Address.PostalCode,
			Street:       req.Address.Street,
			StreetNumber: req.Address.StreetNumber,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			Complement:   req.Address.Complement,
		}
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.PlaceOrderItemInput{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _writeContextTimeout)
	defer cancel()

	order, err := h.placement.PlaceOrder(ctx, slug, input)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "order placed",
		logger.String("order_id", order.ID.String()),
		logger.Int64("order_number", order.Number),
	)

	c.JSON(http.StatusCreated, order)
}

// @Summary Check the delivery area
// @Description Reports whether the store delivers to a postal code
// @Tags Storefront
// @Produce json
// @Param slug path string true "Store slug"
// @Param cep path string true "Postal code, formatted or bare digits"
// @Success 200 {object} service.AreaResult
// @Failure 400 {object} httpt.ErrorResponse "Malformed postal code"
// @Failure 404 {object} httpt.ErrorResponse "Store not found"
// @Failure 500 {object} httpt.ErrorResponse "Internal error"
// @Router /stores/{slug}/delivery-area/{cep} [get]
func (h *OrderHandler) deliveryAreaHandler(c *gin.Context) {
	const op = "transport.deliveryAreaHandler"

	slug := c.Param("slug")
	rawCEP := c.Param("cep")

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	merchant, err := h.merchants.GetBySlug(ctx, slug)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	result, err := h.area.CheckCode(ctx, merchant.ID, rawCEP)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Change order status
// @Description Moves an order along the lifecycle (PENDING, APPROVED, REJECTED)
// @Tags Orders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param order_id path string true "Order id"
// @Param request body httpt.changeStatusRequest true "Requested status"
// @Success 200 {object} entity.Order "Updated order"
// @Failure 400 {object} httpt.ErrorResponse "Malformed request"
// @Failure 401 {object} httpt.ErrorResponse "Missing or invalid API token"
// @Failure 404 {object} httpt.ErrorResponse "Order not found for this merchant"
// @Failure 409 {object} httpt.ErrorResponse "Transition not allowed"
// @Failure 500 {object} httpt.ErrorResponse "Internal error"
// @Router /orders/{order_id}/status [patch]
func (h *OrderHandler) changeStatusHandler(c *gin.Context) {
	const op = "transport.changeStatusHandler"

	merchant := h.merchantFromContext(c)
	if merchant == nil {
		return
	}

	orderID, ok := h.parseUUIDParam(c, op, "order_id")
	if !ok {
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _writeContextTimeout)
	defer cancel()

	order, err := h.status.ChangeStatus(ctx, merchant.ID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Get an order
// @Description Returns the assembled order view with items and customer
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Param order_id path string true "Order id"
// @Success 200 {object} entity.OrderView
// @Failure 400 {object} httpt.ErrorResponse "Malformed order id"
// @Failure 401 {object} httpt.ErrorResponse "Missing or invalid API token"
// @Failure 404 {object} httpt.ErrorResponse "Order not found for this merchant"
// @Failure 500 {object} httpt.ErrorResponse "Internal error"
// @Router /orders/{order_id} [get]
func (h *OrderHandler) getOrderHandler(c *gin.Context) {
	const op = "transport.getOrderHandler"

	merchant := h.merchantFromContext(c)
	if merchant == nil {
		return
	}

	orderID, ok := h.parseUUIDParam(c, op, "order_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	view, err := h.views.GetOrder(ctx, merchant.ID, orderID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List orders
// @Description Lists the merchant's orders, newest first
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Page offset"
// @Success 200 {array} entity.Order
// @Failure 400 {object} httpt.ErrorResponse "Malformed filter"
// @Failure 401 {object} httpt.ErrorResponse "Missing or invalid API token"
// @Failure 500 {object} httpt.ErrorResponse "Internal error"
// @Router /orders [get]
func (h *OrderHandler) listOrdersHandler(c *gin.Context) {
	const op = "transport.listOrdersHandler"

	merchant := h.merchantFromContext(c)
	if merchant == nil {
		return
	}

	var statusFilter *entity.OrderStatus
	if raw := c.Query("status"); raw != "" {
		status := entity.OrderStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status filter"})
			return
		}
		statusFilter = &status
	}

	limit := parseUintQuery(c, "limit")
	offset := parseUintQuery(c, "offset")

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	orders, err := h.views.ListOrders(ctx, merchant.ID, statusFilter, limit, offset)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	if orders == nil {
		orders = []*entity.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) parseUUIDParam(c *gin.Context, op, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.handleInvalidUUID(c, op, raw)
		return uuid.Nil, false
	}
	return id, true
}

func parseUintQuery(c *gin.Context, name string) uint64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
