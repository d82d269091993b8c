package sponsors

const (
	queryListActive = `
		SELECT id, company_name, COALESCE(description, ''), COALESCE(logo_url, ''),
			COALESCE(website_url, ''), tier, expires_at, created_at
		FROM sponsors
		WHERE active = true
		AND (expires_at IS NULL OR expires_at > NOW())
		ORDER BY tier ASC, company_name ASC
	`
)
