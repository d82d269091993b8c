package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitpulse/server/gitpulse/contributions"
)

// fixed "today" used by default-window tests
func fixedClock(date string) func() time.Time {
	day, _ := time.Parse(time.DateOnly, date)
	return func() time.Time { return day.Add(10 * time.Hour) }
}

func TestBuild_DefaultRange(t *testing.T) {
	store := contributions.NewMemoryStore()

	board, err := Build(context.Background(), store, Options{
		Now: fixedClock("2024-03-15"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-03-08",
		"2024-03-09",
		"2024-03-10",
		"2024-03-11",
		"2024-03-12",
		"2024-03-13",
		"2024-03-14",
	}, board.Dates, "default window is the 7 days preceding today, today excluded")
	assert.Empty(t, board.Users)
}

func TestBuild_Densification(t *testing.T) {
	store := contributions.NewMemoryStore()
	store.SetProfile("u1", "octocat", "", "", "")

	// contributions only on the range edges
	err := store.UpsertDaily(context.Background(), "u1", contributions.Series{
		"2024-03-10": 3,
		"2024-03-14": 2,
	})
	require.NoError(t, err)

	board, err := Build(context.Background(), store, Options{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-14",
	})

	require.NoError(t, err)
	require.Len(t, board.Users, 1)

	entry := board.Users[0]
	assert.Equal(t, 5, entry.Total)
	assert.Equal(t, map[string]int{
		"2024-03-10": 3,
		"2024-03-11": 0,
		"2024-03-12": 0,
		"2024-03-13": 0,
		"2024-03-14": 2,
	}, entry.ByDay, "interior dates must be present and zero")
}

func TestBuild_ZeroActivityExcluded(t *testing.T) {
	store := contributions.NewMemoryStore()
	store.SetProfile("u1", "active", "", "", "")
	store.SetProfile("u2", "idle", "", "", "")

	ctx := context.Background()

	require.NoError(t, store.UpsertDaily(ctx, "u1", contributions.Series{"2024-03-10": 4}))

	// stored rows exist but sum to zero in range
	require.NoError(t, store.UpsertDaily(ctx, "u2", contributions.Series{
		"2024-03-10": 0,
		"2024-03-11": 0,
	}))

	board, err := Build(ctx, store, Options{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-11",
	})

	require.NoError(t, err)
	require.Len(t, board.Users, 1)
	assert.Equal(t, "active", board.Users[0].GithubUsername)
}

func TestBuild_RankingOrder(t *testing.T) {
	store := contributions.NewMemoryStore()
	store.SetProfile("u1", "ten", "", "", "")
	store.SetProfile("u2", "thirty", "", "", "")
	store.SetProfile("u3", "five", "", "", "")

	ctx := context.Background()

	require.NoError(t, store.UpsertDaily(ctx, "u1", contributions.Series{"2024-03-10": 10}))
	require.NoError(t, store.UpsertDaily(ctx, "u2", contributions.Series{"2024-03-10": 30}))
	require.NoError(t, store.UpsertDaily(ctx, "u3", contributions.Series{"2024-03-10": 5}))

	board, err := Build(ctx, store, Options{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	})

	require.NoError(t, err)
	require.Len(t, board.Users, 3)

	totals := []int{board.Users[0].Total, board.Users[1].Total, board.Users[2].Total}
	assert.Equal(t, []int{30, 10, 5}, totals)
}

func TestBuild_TieBreakByUserID(t *testing.T) {
	store := contributions.NewMemoryStore()
	store.SetProfile("bbb", "second", "", "", "")
	store.SetProfile("aaa", "first", "", "", "")

	ctx := context.Background()

	require.NoError(t, store.UpsertDaily(ctx, "bbb", contributions.Series{"2024-03-10": 7}))
	require.NoError(t, store.UpsertDaily(ctx, "aaa", contributions.Series{"2024-03-10": 7}))

	board, err := Build(ctx, store, Options{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	})

	require.NoError(t, err)
	require.Len(t, board.Users, 2)

	// equal totals sort by ascending user ID so output is reproducible
	assert.Equal(t, "aaa", board.Users[0].UserID)
	assert.Equal(t, "bbb", board.Users[1].UserID)
}

func TestBuild_EndToEnd(t *testing.T) {
	store := contributions.NewMemoryStore()
	store.SetProfile("u1", "octocat", "Octo Cat", "https://avatar.test/octocat", "https://octocat.dev")

	ctx := context.Background()

	err := store.UpsertDaily(ctx, "u1", contributions.Series{
		"2024-03-10": 3,
		"2024-03-11": 0,
		"2024-03-12": 7,
	})
	require.NoError(t, err)

	board, err := Build(ctx, store, Options{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-10", "2024-03-11", "2024-03-12"}, board.Dates)
	require.Len(t, board.Users, 1)

	entry := board.Users[0]
	assert.Equal(t, 10, entry.Total)
	assert.Equal(t, map[string]int{
		"2024-03-10": 3,
		"2024-03-11": 0,
		"2024-03-12": 7,
	}, entry.ByDay)
	assert.Equal(t, "octocat", entry.GithubUsername)
	assert.Equal(t, "Octo Cat", entry.DisplayUsername)
	assert.Equal(t, "https://avatar.test/octocat", entry.AvatarURL)
	assert.Equal(t, "https://octocat.dev", entry.WebsiteURL)
}

func TestBuild_SingleDayRange(t *testing.T) {
	store := contributions.NewMemoryStore()
	store.SetProfile("u1", "octocat", "", "", "")

	ctx := context.Background()
	require.NoError(t, store.UpsertDaily(ctx, "u1", contributions.Series{"2024-03-10": 2}))

	board, err := Build(ctx, store, Options{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-10"}, board.Dates)
	require.Len(t, board.Users, 1)
	assert.Equal(t, 2, board.Users[0].Total)
}

func TestBuild_InvalidRange(t *testing.T) {
	store := contributions.NewMemoryStore()

	_, err := Build(context.Background(), store, Options{
		StartDate: "2024-03-12",
		EndDate:   "2024-03-10",
	})

	assert.ErrorIs(t, err, contributions.ErrInvalidRange)
}

func TestBuild_MalformedDate(t *testing.T) {
	store := contributions.NewMemoryStore()

	_, err := Build(context.Background(), store, Options{
		StartDate: "March 10",
		EndDate:   "2024-03-12",
	})

	assert.ErrorIs(t, err, contributions.ErrInvalidDate)
}

type failingReader struct {
	err error
}

func (r *failingReader) QueryRange(context.Context, string, string) ([]contributions.Row, error) {
	return nil, r.err
}

func TestBuild_PropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")

	_, err := Build(context.Background(), &failingReader{err: storeErr}, Options{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})

	assert.ErrorIs(t, err, storeErr, "store errors must propagate verbatim")
}
