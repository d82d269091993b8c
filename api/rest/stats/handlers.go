package stats

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gitpulse/server/gitpulse/contributions"
	"github.com/gitpulse/server/gitpulse/leaderboard"
	"github.com/gitpulse/server/internal/cache"
	"github.com/gitpulse/server/internal/errors"
)

// GetStats godoc
// @Summary Get the contribution leaderboard
// @Description Returns the ranked leaderboard for the requested date range.
// @Description Without parameters the range is the 7 calendar days preceding today.
// @Tags stats
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD), requires end_date"
// @Param end_date query string false "Range end (YYYY-MM-DD), requires start_date"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/stats [get]
func GetStats(store contributions.Store, statsCache *cache.StatsCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		startDate := c.Query("start_date")
		endDate := c.Query("end_date")

		if (startDate == "") != (endDate == "") {
			errors.BadRequest(c, "start_date and end_date must be provided together", nil)
			return
		}

		// cache key covers the request shape; the default window's key
		// pins today's date so stale windows expire at midnight
		cacheStart, cacheEnd := startDate, endDate
		if startDate == "" {
			cacheStart = "default"
			cacheEnd = time.Now().Format(time.DateOnly)
		}

		if statsCache != nil {
			if payload, ok := statsCache.Get(c.Request.Context(), cacheStart, cacheEnd); ok {
				c.Data(http.StatusOK, "application/json", payload)
				return
			}
		}

		board, err := leaderboard.Build(c.Request.Context(), store, leaderboard.Options{
			StartDate: startDate,
			EndDate:   endDate,
		})

		if err != nil {
			if stderrors.Is(err, contributions.ErrInvalidDate) || stderrors.Is(err, contributions.ErrInvalidRange) {
				errors.ValidationError(c, err)
				return
			}

			errors.InternalError(c, "failed to build leaderboard", err)
			return
		}

		if statsCache != nil {
			if payload, err := json.Marshal(board); err == nil {
				statsCache.Set(c.Request.Context(), cacheStart, cacheEnd, payload)
			}
		}

		c.JSON(http.StatusOK, board)
	}
}
