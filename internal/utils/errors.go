package utils

import (
	"github.com/aversacc/avers-site/internal/api/dto/common"
	"github.com/aversacc/avers-site/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetGlobalLogger()
	logger.Error("%s: %v", message, err)
}

// HandleAPIError is a utility function for consistent error handling across the API.
// Sensitive error details are only exposed in non-production environments.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	// In production, don't expose error details
	var errorDetails interface{}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		errorDetails = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, errorDetails))
}
