package profiles

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitpulse/server/gitpulse/profiles"
	"github.com/gitpulse/server/internal/auth"
	"github.com/gitpulse/server/internal/errors"
)

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Update display name and website URLs. The first element of
// @Description other_urls is the main website and is mirrored into website_url.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body profiles.UpdateProfileRequest true "Profile update"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/profiles/me [patch]
// @Security BearerAuth
func UpdateProfile(profileRepo *profiles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req profiles.UpdateProfileRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// keep website_url consistent with the URL list
		if len(req.OtherURLs) > 0 && req.WebsiteURL == nil {
			req.WebsiteURL = &req.OtherURLs[0]
		}

		profile, err := profileRepo.UpdateProfile(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to update profile", err)
			return
		}

		c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
	}
}
