package profiles

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles profile database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents an authenticated contributor in the system.
// DisplayUsername is the user-chosen name; when empty, callers fall
// back to GithubUsername. FirstLogin is set exactly once, by the row
// insert during the user's first OAuth callback.
type Profile struct {
	ID              string    `json:"id"`
	Provider        string    `json:"provider"`
	ProviderID      string    `json:"-"`
	GithubUsername  string    `json:"github_username"`
	DisplayUsername string    `json:"display_username,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	WebsiteURL      string    `json:"website_url,omitempty"`
	OtherURLs       []string  `json:"other_urls"`
	FirstLogin      bool      `json:"first_login"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// contains data for updating a profile. The main website is the first
// element of OtherURLs and is mirrored into WebsiteURL.
type UpdateProfileRequest struct {
	DisplayUsername *string  `json:"display_username,omitempty"`
	WebsiteURL      *string  `json:"website_url,omitempty"`
	OtherURLs       []string `json:"other_urls,omitempty"`
}
