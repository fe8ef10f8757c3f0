package feedback

const (
	queryCreate = `
		INSERT INTO feedback (user_id, category, message, page, user_agent)
		VALUES (NULLIF($1, '')::uuid, $2, $3, $4, $5)
		RETURNING id::text, user_id::text, category, message, COALESCE(page, ''), COALESCE(user_agent, ''), created_at
	`

	queryList = `
		SELECT id::text, user_id::text, category, message, COALESCE(page, ''), COALESCE(user_agent, ''), created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT $1
	`
)
