package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/gitpulse/server/api/rest/admin"
	"github.com/gitpulse/server/api/rest/auth"
	"github.com/gitpulse/server/api/rest/health"
	"github.com/gitpulse/server/api/rest/profiles"
	"github.com/gitpulse/server/api/rest/sponsors"
	"github.com/gitpulse/server/api/rest/stats"
	"github.com/gitpulse/server/internal/logger"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server))
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")
	v1.Use(rateLimitMiddleware("120-M"))

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.profileRepo, server.contribStore, server.githubClient, server.statsCache)
		stats.RegisterRoutes(v1, server.contribStore, server.statsCache)
		profiles.RegisterRoutes(v1, server.profileRepo)
		sponsors.RegisterRoutes(v1, server.sponsorRepo)
		admin.RegisterRoutes(v1, server.profileRepo, server.contribStore)
	}
}

// configures cross-origin access: the leaderboard frontend is served
// from a different origin than the API in production
func CORSMiddleware(server *Server) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if server.config.Environment == "production" {
		cfg.AllowOrigins = []string{server.config.BaseURL}
	} else {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false // gin-contrib/cors forbids credentials with a wildcard origin
	}

	return cors.New(cfg)
}

// per-client-IP rate limit backed by an in-memory store
func rateLimitMiddleware(format string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		logger.Fatal("invalid rate limit format", "format", format, "error", err)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
