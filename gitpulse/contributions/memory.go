package contributions

import (
	"context"
	"sort"
	"sync"
)

// identity attributes joined onto ranged reads, keyed by user ID
type profileInfo struct {
	githubUsername  string
	displayUsername string
	avatarURL       string
	websiteURL      string
}

// MemoryStore implements Store with in-memory storage. It mirrors the
// Postgres repository's semantics (idempotent upserts keyed by
// (user_id, date), atomic batches, sparse date-ordered ranged reads)
// so storage behavior is testable without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	rows     map[string]map[string]int // user_id -> date -> count
	profiles map[string]profileInfo

	// WriteFault, when set, is consulted for every entry of a batch
	// before anything is committed. Returning an error simulates a
	// storage failure mid-batch; the batch must then apply nothing.
	WriteFault func(userID, date string) error
}

// creates a new in-memory contribution store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rows:     make(map[string]map[string]int),
		profiles: make(map[string]profileInfo),
	}
}

// registers identity attributes for a user so ranged reads can join them
func (s *MemoryStore) SetProfile(userID, githubUsername, displayUsername, avatarURL, websiteURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[userID] = profileInfo{
		githubUsername:  githubUsername,
		displayUsername: displayUsername,
		avatarURL:       avatarURL,
		websiteURL:      websiteURL,
	}
}

// stages the whole batch first, then commits it, so a failure on any
// entry leaves the store untouched
func (s *MemoryStore) UpsertDaily(_ context.Context, userID string, series Series) error {
	if len(series) == 0 {
		return nil
	}

	staged := make(map[string]int, len(series))

	for date, count := range series {
		if _, err := ParseDay(date); err != nil {
			return err
		}

		if s.WriteFault != nil {
			if err := s.WriteFault(userID, date); err != nil {
				return err
			}
		}

		if count < 0 {
			count = 0
		}

		staged[date] = count
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rows[userID] == nil {
		s.rows[userID] = make(map[string]int)
	}

	for date, count := range staged {
		s.rows[userID][date] = count
	}

	return nil
}

func (s *MemoryStore) QueryRange(_ context.Context, start, end string) ([]Row, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Row

	for userID, days := range s.rows {
		profile := s.profiles[userID]

		for date, count := range days {
			if date < start || date > end {
				continue
			}

			result = append(result, Row{
				UserID:          userID,
				Date:            date,
				Count:           count,
				GithubUsername:  profile.githubUsername,
				DisplayUsername: profile.displayUsername,
				AvatarURL:       profile.avatarURL,
				WebsiteURL:      profile.websiteURL,
			})
		}
	}

	// ascending date like the SQL ranged read; user ID breaks ties to
	// keep iteration order out of the result
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}

		return result[i].UserID < result[j].UserID
	})

	return result, nil
}
