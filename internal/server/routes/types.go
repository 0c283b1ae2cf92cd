package routes

import (
	"github.com/aversacc/avers-site/internal/api/handlers"
	"github.com/aversacc/avers-site/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
	Site    *handlers.SiteHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
