package sponsors

import (
	"github.com/gin-gonic/gin"

	"github.com/gitpulse/server/gitpulse/sponsors"
)

// registers the public sponsor routes
func RegisterRoutes(router *gin.RouterGroup, sponsorRepo *sponsors.Repository) {
	router.GET("/sponsors", ListSponsors(sponsorRepo))
}
