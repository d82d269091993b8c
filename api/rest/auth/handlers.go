package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"

	"github.com/gitpulse/server/gitpulse/contributions"
	"github.com/gitpulse/server/gitpulse/profiles"
	"github.com/gitpulse/server/internal/auth"
	"github.com/gitpulse/server/internal/cache"
	"github.com/gitpulse/server/internal/errors"
	"github.com/gitpulse/server/internal/github"
	"github.com/gitpulse/server/internal/logger"
)

// BeginAuthHandler godoc
// @Summary Start OAuth authentication
// @Description Begin GitHub OAuth authentication flow
// @Tags auth
// @Success 302 {string} string "Redirect to GitHub"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/auth/github [get]
func BeginAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", "github")
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary OAuth callback
// @Description GitHub OAuth callback. Creates or updates the profile, ingests the
// @Description user's contribution calendar and returns the profile with a JWT
// @Tags auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/github/callback [get]
func CallbackHandler(
	profileRepo *profiles.Repository,
	store contributions.Store,
	githubClient *github.Client,
	statsCache *cache.StatsCache,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "github")
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "authentication failed", err)
			return
		}

		profile, err := profileRepo.FindOrCreateByProvider(
			c.Request.Context(),
			gothUser.Provider,
			gothUser.UserID,
			gothUser.NickName,
			gothUser.AvatarURL,
			gothUser.AccessToken,
		)

		if err != nil {
			errors.InternalError(c, "failed to create profile", err)
			return
		}

		// pull the contribution calendar while we hold a fresh provider
		// token. Ingestion failure must not fail the login.
		series, err := githubClient.FetchContributionCalendar(
			c.Request.Context(),
			profile.GithubUsername,
			gothUser.AccessToken,
		)

		if err != nil {
			logger.ErrorErr(err, "failed to fetch contribution calendar",
				"user_id", profile.ID,
				"username", profile.GithubUsername,
			)
		} else if err := store.UpsertDaily(c.Request.Context(), profile.ID, series); err != nil {
			logger.ErrorErr(err, "failed to ingest contribution calendar",
				"user_id", profile.ID,
				"username", profile.GithubUsername,
				"days", len(series),
			)
		} else if statsCache != nil {
			// fresh data should show on the leaderboard before the TTL runs out
			statsCache.Invalidate(c.Request.Context())
		}

		token, err := auth.GenerateJWT(profile.ID, profile.GithubUsername)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Profile:    profile,
			Token:      token,
			FirstLogin: profile.FirstLogin,
		})
	}
}

// GetCurrentProfileHandler godoc
// @Summary Get current profile
// @Description Get authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func GetCurrentProfileHandler(profileRepo *profiles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		profile, err := profileRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "profile")
			return
		}

		c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clear authentication session
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/v1/auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to logout user from gothic session")
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}
