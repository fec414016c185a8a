package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/response"
	"careerai-web/pkg/logger"
)

// RequestLogger writes one structured line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", response.RequestID(c),
		}
		switch {
		case status >= 500:
			logger.Log.Error("http request", attrs...)
		case status >= 400:
			logger.Log.Warn("http request", attrs...)
		default:
			logger.Log.Info("http request", attrs...)
		}
	}
}
