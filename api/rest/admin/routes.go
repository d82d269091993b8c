package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/gitpulse/server/gitpulse/contributions"
	"github.com/gitpulse/server/internal/auth"
)

// registers administrative routes
func RegisterRoutes(router *gin.RouterGroup, source contributions.LegacySource, store contributions.Store) {
	admin := router.Group("/admin")
	admin.Use(auth.AdminAuthMiddleware())

	admin.POST("/backfill-contributions", BackfillContributions(source, store))
}
