package sponsors

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new sponsor repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns all currently-active sponsors ordered by tier then name
func (r *Repository) ListActive(ctx context.Context) ([]Sponsor, error) {
	rows, err := r.db.Query(ctx, queryListActive)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var result []Sponsor

	for rows.Next() {
		var s Sponsor

		err := rows.Scan(
			&s.ID,
			&s.CompanyName,
			&s.Description,
			&s.LogoURL,
			&s.WebsiteURL,
			&s.Tier,
			&s.ExpiresAt,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
