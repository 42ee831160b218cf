package httpt

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps the sentinel taxonomy onto HTTP statuses. The 4xx
// branches echo the error text because placement and status failures carry
// messages naming the offending product, date or state.
func (h *OrderHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
		logger.String("user_agent", c.Request.UserAgent()),
	)

	switch {
	case errors.Is(err, entity.ErrInvalidData):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: clientMessage(err)})
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "resource not found",
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: clientMessage(err)})
	case errors.Is(err, entity.ErrUnprocessableEntity):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: clientMessage(err)})
	case errors.Is(err, entity.ErrStatusTransition),
		errors.Is(err, entity.ErrConflictingData):
		c.JSON(http.StatusConflict, ErrorResponse{Error: clientMessage(err)})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request timeout",
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Request timed out"})
	default:
		log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "internal server error",
			logger.Any("error", err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal service error"})
	}
}

// clientMessage strips internal op-chain prefixes ("service.placement.PlaceOrder: ")
// from a wrapped error, leaving the human-readable tail for the response
// body. Prefixes are single space-free tokens; a real message always
// contains a space before its first colon.
func clientMessage(err error) string {
	msg := err.Error()
	for {
		head, tail, found := strings.Cut(msg, ": ")
		if !found || strings.Contains(head, " ") {
			return msg
		}
		msg = tail
	}
}

func (h *OrderHandler) handleInvalidUUID(c *gin.Context, op, value string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid id format",
		logger.String("op", op),
		logger.String("value", value),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id format"})
}

func (h *OrderHandler) handleBindError(c *gin.Context, op string, err error) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "malformed request body",
		logger.String("op", op),
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed request body"})
}
