package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/aversacc/avers-site/internal/api/dto/common"
	"github.com/aversacc/avers-site/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into generic 500 responses.
// No internal detail reaches the caller.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger := logging.GetGlobalLogger()
				logger.Error("[PANIC] %s %s: %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					rec,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(
					common.ErrCodeInternalServer,
					"Internal server error",
					nil,
				))
			}
		}()

		c.Next()
	}
}
