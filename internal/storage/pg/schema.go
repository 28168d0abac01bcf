package pg

import (
	"context"
	"database/sql"
)

// Schema revisions are additive-only: tables are created if absent and
// columns introduced later are added to older deployments. Every statement
// is idempotent, so running this on each request is harmless; after the
// first success it is a cheap flag check.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		content TEXT NOT NULL,
		author_name VARCHAR(50),
		is_anonymous BOOLEAN DEFAULT TRUE,
		is_approved BOOLEAN DEFAULT TRUE,
		is_flagged BOOLEAN DEFAULT FALSE,
		deletion_token VARCHAR(64),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	// deletion_token arrived after the first deployed schema revision
	`ALTER TABLE stories ADD COLUMN IF NOT EXISTS deletion_token VARCHAR(64)`,
	`CREATE TABLE IF NOT EXISTS reactions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		story_id UUID REFERENCES stories(id) ON DELETE CASCADE,
		reaction_type VARCHAR(20) NOT NULL,
		user_token VARCHAR(64) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(story_id, user_token, reaction_type)
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		story_id UUID REFERENCES stories(id) ON DELETE CASCADE,
		content TEXT NOT NULL,
		author_name VARCHAR(50),
		is_anonymous BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// ensureSchema lazily initializes the schema before the first store access.
// A failed attempt is retried on the next call rather than cached.
func (s *Storage) ensureSchema(ctx context.Context) error {
	s.schemaMu.Lock()
	defer s.schemaMu.Unlock()
	if s.schemaReady {
		return nil
	}

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		for _, stmt := range schemaStatements {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.schemaReady = true
	return nil
}
