package leaderboard

import (
	"context"
	"sort"
	"time"

	"github.com/gitpulse/server/gitpulse/contributions"
)

// turns a date range into a ranked, display-ready leaderboard.
//
// The resolved range's full date list is materialized even for days with
// no data. Users are ranked by range total descending; ties break by
// ascending user ID so output is reproducible. Users whose range total
// is zero are dropped. Store errors propagate verbatim.
func Build(ctx context.Context, store RangeReader, opts Options) (*Board, error) {
	start, end, err := resolveRange(opts)
	if err != nil {
		return nil, err
	}

	dates := contributions.DaysBetween(start, end)

	rows, err := store.QueryRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]*Entry)
	order := make([]string, 0)

	for _, row := range rows {
		entry, ok := entries[row.UserID]
		if !ok {
			entry = &Entry{
				UserID:          row.UserID,
				GithubUsername:  row.GithubUsername,
				DisplayUsername: row.DisplayUsername,
				AvatarURL:       row.AvatarURL,
				WebsiteURL:      row.WebsiteURL,
				ByDay:           denseBreakdown(dates),
			}
			entries[row.UserID] = entry
			order = append(order, row.UserID)
		}

		// rows outside the materialized list cannot occur for a valid
		// range, but a stale map key must not resurrect here
		if _, inRange := entry.ByDay[row.Date]; inRange {
			entry.ByDay[row.Date] = row.Count
			entry.Total += row.Count
		}
	}

	users := make([]Entry, 0, len(entries))

	for _, userID := range order {
		entry := entries[userID]

		// zero-activity users do not appear on the leaderboard
		if entry.Total == 0 {
			continue
		}

		users = append(users, *entry)
	}

	sort.SliceStable(users, func(i, j int) bool {
		if users[i].Total != users[j].Total {
			return users[i].Total > users[j].Total
		}

		return users[i].UserID < users[j].UserID
	})

	return &Board{
		Dates: dates,
		Users: users,
	}, nil
}

// resolves the requested range. Both dates empty means the default
// window: the DefaultWindowDays calendar days strictly preceding the
// caller's "today" at local midnight, today excluded.
func resolveRange(opts Options) (string, string, error) {
	if opts.StartDate == "" && opts.EndDate == "" {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}

		t := now()
		today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

		start := today.AddDate(0, 0, -DefaultWindowDays).Format(time.DateOnly)
		end := today.AddDate(0, 0, -1).Format(time.DateOnly)

		return start, end, nil
	}

	if err := contributions.ValidateRange(opts.StartDate, opts.EndDate); err != nil {
		return "", "", err
	}

	return opts.StartDate, opts.EndDate, nil
}

// a breakdown covering every date of the range, all zeros
func denseBreakdown(dates []string) map[string]int {
	byDay := make(map[string]int, len(dates))

	for _, date := range dates {
		byDay[date] = 0
	}

	return byDay
}
