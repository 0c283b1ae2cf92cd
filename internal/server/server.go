package server

import (
	"io"

	"github.com/aversacc/avers-site/internal/api/handlers"
	"github.com/aversacc/avers-site/internal/api/middleware"
	"github.com/aversacc/avers-site/internal/config"
	"github.com/aversacc/avers-site/internal/server/routes"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Init wires middleware, handlers and routes
func (s *Server) Init() error {
	routes.SetupGlobalMiddleware(s.router)

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(s.cfg.TurnstilePolicy),
		Health:  handlers.NewHealthHandler(),
		Site:    handlers.NewSiteHandler(s.cfg.TurnstileSiteKey),
	}

	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	return routes.Setup(s.router, h, m)
}

// Start starts the server
func (s *Server) Start() error {
	port := s.cfg.Port
	if port == "" {
		port = "8080"
	}

	return s.router.Run(":" + port)
}
