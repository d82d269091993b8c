package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gitpulse/server/internal/auth"
	"github.com/gitpulse/server/internal/config"
	"github.com/gitpulse/server/internal/logger"
)

// @title GitPulse API
// @version 1.0
// @description GitHub contribution leaderboard service
// @description
// @description Features:
// @description - GitHub OAuth sign-in
// @description - Daily contribution ingestion from the GitHub GraphQL API
// @description - Ranked leaderboard over a configurable date window
// @description - Sponsor banner feed

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authenticated requests. Format: Bearer {token}

// @securityDefinitions.apikey AdminKeyAuth
// @in header
// @name Authorization
// @description Static admin key for administrative requests. Format: Bearer {key}

func main() {
	logger.Info("starting gitpulse server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// initialize the GitHub OAuth provider
	if err := auth.InitializeProviders(); err != nil {
		logger.Fatal("failed to initialize OAuth providers", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close Redis connection if the stats cache is running
	if srv.statsCache != nil {
		srv.statsCache.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	// close database connection
	srv.db.Close()

	logger.Info("server stopped")
}
