package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"pembukuan/internal/logger"
	"pembukuan/internal/uuid"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// RequestLogging returns a Gin middleware that logs each request with a
// request ID, method, path, status code, latency, and client IP using Zap.
// A well-formed inbound X-Request-ID is reused; otherwise a new one is issued.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if !uuid.IsValid(requestID) {
			requestID = uuid.New()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)
		log := logger.Get()
		log.Infow("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// RequestID returns the request ID assigned by RequestLogging, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
