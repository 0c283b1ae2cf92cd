package handlers

import (
	"net/http"

	"github.com/aversacc/avers-site/internal/api/dto/common"
	"github.com/aversacc/avers-site/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"status":  "ok",
		"version": version.GetVersionString(),
	}))
}
