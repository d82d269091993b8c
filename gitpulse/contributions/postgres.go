package contributions

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gitpulse/server/internal/logger"
)

// creates a new Postgres-backed contribution store
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// write-or-replaces every (date, count) pair of the series for the user,
// as one batch inside a single transaction. The (user_id, date) uniqueness
// constraint makes re-invocation with the same series a no-op; a failure
// anywhere in the batch rolls the whole batch back. An empty series
// succeeds without touching the database. The input series is not mutated.
func (r *Repository) UpsertDaily(ctx context.Context, userID string, series Series) error {
	if len(series) == 0 {
		return nil
	}

	for date := range series {
		if _, err := ParseDay(date); err != nil {
			return err
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// defer rollback - will be no-op if commit succeeds
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to rollback transaction", "error", err)
		}
	}()

	batch := &pgx.Batch{}

	for date, count := range series {
		if count < 0 {
			count = 0 // upstream data is untrusted, clamp instead of failing
		}

		batch.Queue(queryUpsertDaily, userID, date, count)
	}

	br := tx.SendBatch(ctx, batch)

	for range len(series) {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck,gosec // G104: error path cleanup
			return fmt.Errorf("failed to upsert daily contribution for user %s: %w", userID, err)
		}
	}

	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// returns all stored rows with date in [start, end] inclusive, joined with
// the owning user's identity, ordered by ascending date. Users with no
// stored rows in the range are absent; densification is the caller's job.
func (r *Repository) QueryRange(ctx context.Context, start, end string) ([]Row, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, queryRange, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query contributions: %w", err)
	}

	defer rows.Close()

	var result []Row

	for rows.Next() {
		var row Row

		err := rows.Scan(
			&row.UserID,
			&row.Date,
			&row.Count,
			&row.GithubUsername,
			&row.DisplayUsername,
			&row.AvatarURL,
			&row.WebsiteURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contribution row: %w", err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contribution rows: %w", err)
	}

	return result, nil
}
