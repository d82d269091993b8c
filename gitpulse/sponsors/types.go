package sponsors

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles sponsor database operations
type Repository struct {
	db *pgxpool.Pool
}

// a paying sponsor shown in the banner. Rows stay in the table after
// expiry; ExpiresAt gates visibility.
type Sponsor struct {
	ID          string     `json:"id"`
	CompanyName string     `json:"company_name"`
	Description string     `json:"description,omitempty"`
	LogoURL     string     `json:"logo_url,omitempty"`
	WebsiteURL  string     `json:"website_url,omitempty"`
	Tier        string     `json:"tier"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
