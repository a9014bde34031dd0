package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Andhika-Putra/dashboard-app/internal/logger"
)

// Logger logs HTTP requests through the process-wide zap logger.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"client_ip", c.ClientIP(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if errs := c.Errors.String(); errs != "" {
			fields = append(fields, "errors", errs)
			logger.Errorw("request", fields...)
			return
		}
		logger.Infow("request", fields...)
	}
}
