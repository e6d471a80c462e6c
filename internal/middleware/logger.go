package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger logs every request after it completes. Handlers put the cause
// of a failed request under the "error" key.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := logger.InfoLevel
		if status >= 500 {
			level = logger.ErrorLevel
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("request_id", c.GetString(requestIDKey)),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("error", c.GetString("error")),
		)
	}
}
