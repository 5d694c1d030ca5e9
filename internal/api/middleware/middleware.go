package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eos420/indexer-api/internal/api/dto"
	"github.com/eos420/indexer-api/internal/bigint"
	"github.com/eos420/indexer-api/internal/id"
	"github.com/eos420/indexer-api/internal/logger"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-Id"

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.InfoCtx(c.Request.Context(), "API request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}

				fields := []zap.Field{zap.String("path", c.Request.URL.Path)}
				var arithErr *bigint.ArithmeticError
				if errors.As(err, &arithErr) {
					fields = append(fields, zap.String("op", arithErr.Op))
				}
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %w", err), fields...)

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewError(dto.ErrorServerError, ""))
			}
		}()
		c.Next()
	}
}

// RequestID tags every request with an id, reusing the caller's when present.
// The id is echoed in the response and attached to the request-scoped logger.
func RequestID(ids *id.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" && ids != nil {
			next, err := ids.Next()
			if err != nil {
				logger.WarnCtx(c.Request.Context(), "Failed to allocate request id", zap.Error(err))
			} else {
				requestID = strconv.FormatInt(next, 10)
			}
		}

		if requestID != "" {
			c.Header(RequestIDHeader, requestID)
			ctx := logger.WithContext(c.Request.Context(), zap.String("request_id", requestID))
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}
