package contributions

import (
	"context"
	"fmt"

	"github.com/gitpulse/server/internal/logger"
)

// a user's legacy full-history series, kept from before per-day rows existed
type LegacyRecord struct {
	UserID         string
	GithubUsername string
	Series         Series
}

// supplies legacy full-history series for the one-time backfill
type LegacySource interface {
	ListLegacySeries(ctx context.Context) ([]LegacyRecord, error)
}

// one failed user in a backfill run
type BackfillError struct {
	UserID         string `json:"user_id"`
	GithubUsername string `json:"github_username"`
	Error          string `json:"error"`
}

// summary of a backfill run
type BackfillReport struct {
	Migrated int             `json:"migrated"`
	Failed   int             `json:"failed"`
	Total    int             `json:"total"`
	Errors   []BackfillError `json:"errors,omitempty"`
}

// replays every user's legacy full-history series through the store's
// batch upsert. A per-user failure is recorded and the run continues;
// only the legacy listing itself can abort the whole run.
func Backfill(ctx context.Context, source LegacySource, store Store) (*BackfillReport, error) {
	records, err := source.ListLegacySeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy series: %w", err)
	}

	report := &BackfillReport{Total: len(records)}

	for _, record := range records {
		if len(record.Series) == 0 {
			logger.Debug("skipping backfill, no legacy series",
				"user_id", record.UserID,
				"username", record.GithubUsername,
			)
			continue
		}

		if err := store.UpsertDaily(ctx, record.UserID, record.Series); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, BackfillError{
				UserID:         record.UserID,
				GithubUsername: record.GithubUsername,
				Error:          err.Error(),
			})

			logger.ErrorErr(err, "failed to backfill contributions",
				"user_id", record.UserID,
				"username", record.GithubUsername,
			)

			continue
		}

		report.Migrated++

		logger.Info("backfilled daily contributions",
			"user_id", record.UserID,
			"username", record.GithubUsername,
			"days", len(record.Series),
		)
	}

	return report, nil
}
