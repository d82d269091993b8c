package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gitpulse/server/gitpulse/contributions"
	"github.com/gitpulse/server/gitpulse/profiles"
	"github.com/gitpulse/server/gitpulse/sponsors"
	"github.com/gitpulse/server/internal/cache"
	"github.com/gitpulse/server/internal/config"
	"github.com/gitpulse/server/internal/github"
	"github.com/gitpulse/server/internal/logger"
)

// how long cached leaderboard responses stay valid
const statsCacheTTL = 5 * time.Minute

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for hosted Postgres pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// CRITICAL: use simple protocol for PgBouncer-style poolers.
	// transaction-mode pooling doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	profileRepo := profiles.NewRepository(db)
	contribStore := contributions.NewRepository(db)
	sponsorRepo := sponsors.NewRepository(db)
	githubClient := github.NewClient()

	// the stats cache is optional; without Redis every request hits Postgres
	var statsCache *cache.StatsCache

	if cfg.RedisURL != "" {
		statsCache, err = cache.NewStatsCache(cfg.RedisURL, statsCacheTTL)
		if err != nil {
			logger.ErrorErr(err, "failed to initialize stats cache, continuing without caching")
			statsCache = nil
		}
	}

	router := gin.Default()

	server := &Server{
		db:           db,
		config:       cfg,
		profileRepo:  profileRepo,
		contribStore: contribStore,
		sponsorRepo:  sponsorRepo,
		githubClient: githubClient,
		statsCache:   statsCache,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
