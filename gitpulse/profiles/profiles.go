package profiles

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gitpulse/server/gitpulse/contributions"
)

// creates a new profile repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// finds a profile by OAuth provider identity or creates a new one.
// FirstLogin on the returned profile is true only when the row was
// inserted by this call, which replaces any row-age guessing: the flag
// comes straight from the upsert (xmax = 0 on a fresh row).
func (r *Repository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, githubUsername, avatarURL, githubToken string,
) (*Profile, error) {
	var profile Profile

	err := r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		provider,
		providerID,
		githubUsername,
		avatarURL,
		githubToken,
	).Scan(
		&profile.ID,
		&profile.Provider,
		&profile.ProviderID,
		&profile.GithubUsername,
		&profile.DisplayUsername,
		&profile.AvatarURL,
		&profile.WebsiteURL,
		&profile.OtherURLs,
		&profile.FirstLogin,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// finds a profile by its ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile

	err := r.db.QueryRow(ctx, queryFindByID, userID).Scan(
		&profile.ID,
		&profile.Provider,
		&profile.ProviderID,
		&profile.GithubUsername,
		&profile.DisplayUsername,
		&profile.AvatarURL,
		&profile.WebsiteURL,
		&profile.OtherURLs,
		&profile.FirstLogin,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// updates a profile's display name and website URLs. Nil fields are
// left unchanged.
func (r *Repository) UpdateProfile(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*Profile, error) {
	var profile Profile

	err := r.db.QueryRow(
		ctx,
		queryUpdateProfile,
		req.DisplayUsername,
		req.WebsiteURL,
		req.OtherURLs,
		userID,
	).Scan(
		&profile.ID,
		&profile.Provider,
		&profile.ProviderID,
		&profile.GithubUsername,
		&profile.DisplayUsername,
		&profile.AvatarURL,
		&profile.WebsiteURL,
		&profile.OtherURLs,
		&profile.FirstLogin,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// lists every profile still carrying a legacy full-history series,
// for the one-time daily-contribution backfill
func (r *Repository) ListLegacySeries(ctx context.Context) ([]contributions.LegacyRecord, error) {
	rows, err := r.db.Query(ctx, queryListLegacySeries)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var records []contributions.LegacyRecord

	for rows.Next() {
		var record contributions.LegacyRecord

		if err := rows.Scan(&record.UserID, &record.GithubUsername, &record.Series); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
