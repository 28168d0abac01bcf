package pg

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/notalone-dev/notalone/internal/domain"
	internal_errors "github.com/notalone-dev/notalone/internal/errors"
)

// ListComments returns all comments of a story, oldest first.
func (s *Storage) ListComments(ctx context.Context, storyId string) ([]domain.Comment, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	var comments []domain.Comment
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
		SELECT id, story_id, content, author_name, is_anonymous, created_at
		FROM comments
		WHERE story_id = $1
		ORDER BY created_at ASC`, storyId)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var comment domain.Comment
			if err := rows.Scan(&comment.Id, &comment.StoryId, &comment.Content, &comment.AuthorName, &comment.IsAnonymous, &comment.CreatedAt); err != nil {
				return err
			}
			comments = append(comments, comment)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Storage) CreateComment(ctx context.Context, storyId, content string, authorName *string, isAnonymous bool) (*domain.Comment, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	comment := domain.Comment{
		Id:          uuid.New().String(),
		StoryId:     storyId,
		Content:     content,
		AuthorName:  authorName,
		IsAnonymous: isAnonymous,
		CreatedAt:   time.Now().UTC().Round(time.Microsecond),
	}

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, `
		INSERT INTO comments (id, story_id, content, author_name, is_anonymous, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
			comment.Id, comment.StoryId, comment.Content, comment.AuthorName, comment.IsAnonymous, comment.CreatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Storage) DeleteComment(ctx context.Context, id string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}

	return s.withConn(ctx, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
		if err != nil {
			return err
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if deleted == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "Comment not found", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}
