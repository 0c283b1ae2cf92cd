package main

import (
	"os"

	"github.com/aversacc/avers-site/internal/config"
	"github.com/aversacc/avers-site/internal/logging"
	"github.com/aversacc/avers-site/internal/server"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Configure and get logger
	logConfig := &logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)
	logger.Info("Turnstile verification policy: %s", cfg.TurnstilePolicy)

	// Create and start server
	srv := server.NewServer(cfg)

	if err := srv.Init(); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
