package pg

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/notalone-dev/notalone/internal/domain"
	internal_errors "github.com/notalone-dev/notalone/internal/errors"
)

// ListApprovedStories returns approved stories, newest first. The deletion
// token column is deliberately never selected here.
func (s *Storage) ListApprovedStories(ctx context.Context) ([]domain.Story, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	var stories []domain.Story
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
		SELECT id, content, author_name, is_anonymous, created_at
		FROM stories
		WHERE is_approved = TRUE
		ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var story domain.Story
			if err := rows.Scan(&story.Id, &story.Content, &story.AuthorName, &story.IsAnonymous, &story.CreatedAt); err != nil {
				return err
			}
			stories = append(stories, story)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return stories, nil
}

// CreateStory persists a new story and returns it with the server-assigned
// id and creation timestamp filled in.
func (s *Storage) CreateStory(ctx context.Context, content string, authorName *string, isAnonymous bool, deletionToken string) (*domain.Story, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	story := domain.Story{
		Id:            uuid.New().String(),
		Content:       content,
		AuthorName:    authorName,
		IsAnonymous:   isAnonymous,
		CreatedAt:     time.Now().UTC().Round(time.Microsecond), // database anyway rounds to microsecond
		DeletionToken: deletionToken,
	}

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, `
		INSERT INTO stories (id, content, author_name, is_anonymous, is_approved, is_flagged, deletion_token, created_at)
		VALUES ($1, $2, $3, $4, TRUE, FALSE, $5, $6)`,
			story.Id, story.Content, story.AuthorName, story.IsAnonymous, story.DeletionToken, story.CreatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// GetStoryDeletionToken returns the stored possession token for a story.
func (s *Storage) GetStoryDeletionToken(ctx context.Context, id string) (string, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return "", err
	}

	var token sql.NullString
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT deletion_token FROM stories WHERE id = $1`, id).Scan(&token)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &internal_errors.ErrorWithStatusCode{Message: "Story not found", StatusCode: http.StatusNotFound}
		}
		return "", err
	}
	return token.String, nil
}

// DeleteStory removes a story; comments and reactions cascade in the store.
func (s *Storage) DeleteStory(ctx context.Context, id string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}

	return s.withConn(ctx, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, `DELETE FROM stories WHERE id = $1`, id)
		if err != nil {
			return err
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if deleted == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "Story not found", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}

// StoryExists reports whether a story with the given id exists.
func (s *Storage) StoryExists(ctx context.Context, id string) (bool, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return false, err
	}

	var exists bool
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM stories WHERE id = $1)`, id).Scan(&exists)
	})
	return exists, err
}

// CountStories is used by the health endpoint.
func (s *Storage) CountStories(ctx context.Context) (int64, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return 0, err
	}

	var count int64
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM stories`).Scan(&count)
	})
	return count, err
}
