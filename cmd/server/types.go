package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gitpulse/server/gitpulse/contributions"
	"github.com/gitpulse/server/gitpulse/profiles"
	"github.com/gitpulse/server/gitpulse/sponsors"
	"github.com/gitpulse/server/internal/cache"
	"github.com/gitpulse/server/internal/config"
	"github.com/gitpulse/server/internal/github"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	config       *config.Config
	profileRepo  *profiles.Repository
	contribStore *contributions.Repository
	sponsorRepo  *sponsors.Repository
	githubClient *github.Client
	statsCache   *cache.StatsCache // nil when REDIS_URL is not configured
	router       *gin.Engine
}
