package utils

import (
	"net/http"

	"github.com/aversacc/avers-site/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}

// HandleMessage sends a success response with just a message
func HandleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewMessageResponse(message))
}
