package routes

import (
	"github.com/aversacc/avers-site/internal/api/handlers"
	"github.com/aversacc/avers-site/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	public := router.Group("/contact")
	{
		// Public endpoint with rate limiting (no auth required)
		// RPS=1 allows ~1 request per second, Burst=5 allows short bursts
		public.POST("/submit",
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				RPS:   1,
				Burst: 5,
			}),
			m.Validation.ValidateContactRequest(),
			contact.Submit,
		)
	}
}
