package profiles

import (
	"github.com/gin-gonic/gin"

	"github.com/gitpulse/server/gitpulse/profiles"
	"github.com/gitpulse/server/internal/auth"
)

// registers profile routes
func RegisterRoutes(router *gin.RouterGroup, profileRepo *profiles.Repository) {
	group := router.Group("/profiles")
	group.Use(auth.AuthMiddleware()) // all profile routes require authentication

	group.PATCH("/me", UpdateProfile(profileRepo))
}
