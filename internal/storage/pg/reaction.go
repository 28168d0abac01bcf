package pg

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/notalone-dev/notalone/internal/domain"
)

// Toggle actions reported back to the caller.
const (
	ReactionAdded   = "added"
	ReactionRemoved = "removed"
)

// ReactionCounts returns per-kind totals for a story. Kinds nobody has set
// are absent from the map.
func (s *Storage) ReactionCounts(ctx context.Context, storyId string) (domain.ReactionCounts, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	counts := domain.ReactionCounts{}
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
		SELECT reaction_type, COUNT(*)
		FROM reactions
		WHERE story_id = $1
		GROUP BY reaction_type`, storyId)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var kind domain.ReactionKind
			var count int64
			if err := rows.Scan(&kind, &count); err != nil {
				return err
			}
			counts[kind] = count
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// UserReactions returns the kinds a user token has set on a story.
func (s *Storage) UserReactions(ctx context.Context, storyId, userToken string) ([]domain.ReactionKind, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	kinds := []domain.ReactionKind{}
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
		SELECT reaction_type
		FROM reactions
		WHERE story_id = $1 AND user_token = $2`, storyId, userToken)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var kind domain.ReactionKind
			if err := rows.Scan(&kind); err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return kinds, nil
}

// ToggleReaction removes the (story, user, kind) row if present, otherwise
// inserts it. The unique constraint absorbs concurrent duplicate inserts:
// whichever insert loses the race is a no-op, never an error.
func (s *Storage) ToggleReaction(ctx context.Context, storyId string, kind domain.ReactionKind, userToken string) (string, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return "", err
	}

	var action string
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

		result, err := tx.ExecContext(ctx, `
		DELETE FROM reactions
		WHERE story_id = $1 AND user_token = $2 AND reaction_type = $3`,
			storyId, userToken, kind)
		if err != nil {
			return err
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if deleted > 0 {
			action = ReactionRemoved
		} else {
			reaction := domain.Reaction{
				Id:        uuid.New().String(),
				StoryId:   storyId,
				Kind:      kind,
				UserToken: userToken,
				CreatedAt: time.Now().UTC().Round(time.Microsecond),
			}
			_, err = tx.ExecContext(ctx, `
			INSERT INTO reactions (id, story_id, reaction_type, user_token, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (story_id, user_token, reaction_type) DO NOTHING`,
				reaction.Id, reaction.StoryId, reaction.Kind, reaction.UserToken, reaction.CreatedAt)
			if err != nil {
				return err
			}
			action = ReactionAdded
		}

		return tx.Commit()
	})
	if err != nil {
		return "", err
	}
	return action, nil
}
