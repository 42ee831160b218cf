package httpt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_apiTokenHeader     = "X-API-Token"
	_merchantContextKey = "merchant"
)

func (h *OrderHandler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := h.log.GenerateRequestID()
		ctx := h.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (h *OrderHandler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path

		h.log.LogAttrs(c.Request.Context(), logger.InfoLevel, "HTTP request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", statusCode),
			logger.String("duration", latency.String()),
			logger.String("client_ip", c.ClientIP()),
			logger.String("user_agent", c.Request.UserAgent()),
		)

		h.metrics.Request(method, path, statusCode, latency)

		if latency > 200*time.Millisecond {
			h.metrics.SlowRequest(method, path, statusCode, latency)
		}
	}
}

// authMiddleware resolves the API token header to a merchant and aborts
// with 401 when it is missing or unknown.
func (h *OrderHandler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(_apiTokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ErrorResponse{Error: "Missing API token"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
		defer cancel()

		merchant, err := h.merchants.GetByAPIToken(ctx, token)
		if err != nil {
			if errors.Is(err, entity.ErrDataNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					ErrorResponse{Error: "Invalid API token"})
				return
			}
			h.log.Ctx(c.Request.Context()).Errorw("api token lookup failed",
				"error", err,
				"client_ip", c.ClientIP(),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				ErrorResponse{Error: "Internal service error"})
			return
		}

		c.Set(_merchantContextKey, merchant)
		c.Next()
	}
}

// merchantFromContext returns the authenticated merchant or writes a 401
// and returns nil. Routes behind authMiddleware always find one.
func (h *OrderHandler) merchantFromContext(c *gin.Context) *entity.Merchant {
	value, exists := c.Get(_merchantContextKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			ErrorResponse{Error: "Missing API token"})
		return nil
	}

	merchant, ok := value.(*entity.Merchant)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			ErrorResponse{Error: "Internal service error"})
		return nil
	}
	return merchant
}
