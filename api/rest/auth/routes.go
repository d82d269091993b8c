package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/gitpulse/server/gitpulse/contributions"
	"github.com/gitpulse/server/gitpulse/profiles"
	"github.com/gitpulse/server/internal/auth"
	"github.com/gitpulse/server/internal/cache"
	"github.com/gitpulse/server/internal/github"
)

// registers all authentication routes
func RegisterRoutes(
	router *gin.RouterGroup,
	profileRepo *profiles.Repository,
	store contributions.Store,
	githubClient *github.Client,
	statsCache *cache.StatsCache,
) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/github", BeginAuthHandler())
		authGroup.GET("/github/callback", CallbackHandler(profileRepo, store, githubClient, statsCache))
		authGroup.POST("/logout", LogoutHandler())
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentProfileHandler(profileRepo))
	}
}
