package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitpulse/server/gitpulse/contributions"
	"github.com/gitpulse/server/internal/errors"
	"github.com/gitpulse/server/internal/logger"
)

// BackfillContributions godoc
// @Summary Backfill daily contributions from legacy series
// @Description Admin-only one-time migration: replays every profile's legacy
// @Description full-history series into the daily_contributions table.
// @Description Per-user failures are recorded without aborting the run.
// @Tags admin
// @Produce json
// @Success 200 {object} contributions.BackfillReport
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/backfill-contributions [post]
// @Security AdminKeyAuth
func BackfillContributions(source contributions.LegacySource, store contributions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := contributions.Backfill(c.Request.Context(), source, store)
		if err != nil {
			errors.InternalError(c, "failed to run contribution backfill", err)
			return
		}

		logger.Info("contribution backfill completed",
			"migrated", report.Migrated,
			"failed", report.Failed,
			"total", report.Total,
		)

		c.JSON(http.StatusOK, report)
	}
}
