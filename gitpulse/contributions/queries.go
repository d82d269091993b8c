package contributions

const (
	queryUpsertDaily = `
		INSERT INTO daily_contributions (user_id, date, count)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date)
		DO UPDATE SET
			count = EXCLUDED.count,
			updated_at = NOW()
	`

	queryRange = `
		SELECT
			dc.user_id,
			to_char(dc.date, 'YYYY-MM-DD'),
			dc.count,
			p.github_username,
			COALESCE(p.display_username, ''),
			COALESCE(p.avatar_url, ''),
			COALESCE(p.website_url, '')
		FROM daily_contributions dc
		JOIN profiles p ON p.id = dc.user_id
		WHERE dc.date >= $1 AND dc.date <= $2
		ORDER BY dc.date ASC
	`
)
