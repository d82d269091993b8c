package profiles

const (
	queryFindOrCreateByProvider = `
		INSERT INTO profiles (provider, provider_id, github_username, avatar_url, github_token)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			github_username = EXCLUDED.github_username,
			avatar_url = EXCLUDED.avatar_url,
			github_token = EXCLUDED.github_token,
			updated_at = NOW()
		RETURNING id, provider, provider_id, github_username,
			COALESCE(display_username, ''), COALESCE(avatar_url, ''), COALESCE(website_url, ''),
			COALESCE(other_urls, '{}'), (xmax = 0), created_at, updated_at
	`

	queryFindByID = `
		SELECT id, provider, provider_id, github_username,
			COALESCE(display_username, ''), COALESCE(avatar_url, ''), COALESCE(website_url, ''),
			COALESCE(other_urls, '{}'), false, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	queryUpdateProfile = `
		UPDATE profiles
		SET
			display_username = COALESCE($1, display_username),
			website_url = COALESCE($2, website_url),
			other_urls = COALESCE($3, other_urls),
			updated_at = NOW()
		WHERE id = $4
		RETURNING id, provider, provider_id, github_username,
			COALESCE(display_username, ''), COALESCE(avatar_url, ''), COALESCE(website_url, ''),
			COALESCE(other_urls, '{}'), false, created_at, updated_at
	`

	queryListLegacySeries = `
		SELECT id, github_username, contributions_data
		FROM profiles
		WHERE contributions_data IS NOT NULL
	`
)
