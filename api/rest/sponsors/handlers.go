package sponsors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitpulse/server/gitpulse/sponsors"
	"github.com/gitpulse/server/internal/errors"
)

// ListSponsors godoc
// @Summary List active sponsors
// @Description Returns currently-active sponsors for the banner, ordered by tier
// @Tags sponsors
// @Produce json
// @Success 200 {object} SponsorsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/sponsors [get]
func ListSponsors(sponsorRepo *sponsors.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		active, err := sponsorRepo.ListActive(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to fetch sponsors", err)
			return
		}

		if active == nil {
			active = []sponsors.Sponsor{}
		}

		c.JSON(http.StatusOK, SponsorsResponse{Sponsors: active})
	}
}
