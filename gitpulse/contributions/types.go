package contributions

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// sparse per-user mapping from calendar day (YYYY-MM-DD) to contribution
// count, as delivered by the upstream provider. Absence of a date means
// "no data", which is distinct from a stored zero.
type Series map[string]int

// the atomic stored fact: user U made Count contributions on Date.
// At most one row exists per (user_id, date).
type DailyContribution struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`
	Count  int    `json:"count"`
}

// a stored daily contribution joined with the owning user's identity,
// as returned by ranged reads
type Row struct {
	UserID          string `json:"user_id"`
	Date            string `json:"date"`
	Count           int    `json:"count"`
	GithubUsername  string `json:"github_username"`
	DisplayUsername string `json:"display_username,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
	WebsiteURL      string `json:"website_url,omitempty"`
}

// durable storage of per-user, per-day contribution counts.
// UpsertDaily is an idempotent atomic batch: re-invoking it with the
// same series leaves storage unchanged, and a failure applies nothing.
// QueryRange returns the sparse rows in [start, end] ordered by
// ascending date, each joined with the owner's identity.
type Store interface {
	UpsertDaily(ctx context.Context, userID string, series Series) error
	QueryRange(ctx context.Context, start, end string) ([]Row, error)
}

// handles daily contribution database operations
type Repository struct {
	db *pgxpool.Pool
}
