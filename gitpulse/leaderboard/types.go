package leaderboard

import (
	"context"
	"time"

	"github.com/gitpulse/server/gitpulse/contributions"
)

// how many calendar days the default window spans, ending yesterday
const DefaultWindowDays = 7

// the ranged read the aggregator consumes; satisfied by both the
// Postgres repository and the in-memory store
type RangeReader interface {
	QueryRange(ctx context.Context, start, end string) ([]contributions.Row, error)
}

// an explicit date range, or the default trailing window when both
// dates are empty. Now supplies "today" for the default window and
// defaults to time.Now.
type Options struct {
	StartDate string
	EndDate   string
	Now       func() time.Time
}

// one ranked user: identity, range total and a dense per-day breakdown
// covering every date of the resolved range (zero where storage is sparse)
type Entry struct {
	UserID          string         `json:"-"`
	GithubUsername  string         `json:"github_username"`
	DisplayUsername string         `json:"display_username,omitempty"`
	AvatarURL       string         `json:"avatar_url,omitempty"`
	WebsiteURL      string         `json:"website_url,omitempty"`
	Total           int            `json:"total"`
	ByDay           map[string]int `json:"contributions_by_day"`
}

// the display-ready result: the full ascending date list of the resolved
// range (always non-empty, even with no data) and the ranked users
type Board struct {
	Dates []string `json:"dates"`
	Users []Entry  `json:"users"`
}
