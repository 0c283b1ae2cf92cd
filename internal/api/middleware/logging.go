package middleware

import (
	"time"

	"github.com/aversacc/avers-site/internal/logging"
	"github.com/aversacc/avers-site/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger is a middleware that logs request information
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Process request
		c.Next()

		latency := time.Since(start)

		logger := logging.GetGlobalLogger()
		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			latency.String(),
		)
	}
}
