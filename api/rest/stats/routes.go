package stats

import (
	"github.com/gin-gonic/gin"

	"github.com/gitpulse/server/gitpulse/contributions"
	"github.com/gitpulse/server/internal/cache"
)

// registers the public stats routes
func RegisterRoutes(router *gin.RouterGroup, store contributions.Store, statsCache *cache.StatsCache) {
	router.GET("/stats", GetStats(store, statsCache))
}
