package routes

import (
	"github.com/aversacc/avers-site/internal/api/middleware"
	"github.com/aversacc/avers-site/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) error {
	logger := logging.GetGlobalLogger()

	// Create base API v1 group
	v1 := router.Group("/api/v1")

	// Contact routes (public)
	SetupContactRoutes(v1, h.Contact, m)

	// Health check
	SetupHealthRoutes(router, h.Health)

	// Marketing site
	if err := SetupSiteRoutes(router, h.Site); err != nil {
		return err
	}

	logger.Info("All routes have been set up successfully")
	return nil
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))
}
