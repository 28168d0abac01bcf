package service

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/notalone-dev/notalone/internal/domain"
	"github.com/notalone-dev/notalone/internal/errors"
	"github.com/notalone-dev/notalone/internal/utils"
)

type CommentService interface {
	List(ctx context.Context, storyId string) ([]domain.Comment, error)
	Create(ctx context.Context, storyId, content string, isAnonymous bool, authorName string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

type CommentStorage interface {
	ListComments(ctx context.Context, storyId string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, storyId, content string, authorName *string, isAnonymous bool) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	StoryExists(ctx context.Context, id string) (bool, error)
}

type Comment struct {
	storage CommentStorage
}

func NewComment(storage CommentStorage) CommentService {
	return &Comment{storage}
}

func (c *Comment) List(ctx context.Context, storyId string) ([]domain.Comment, error) {
	return c.storage.ListComments(ctx, storyId)
}

func (c *Comment) Create(ctx context.Context, storyId, content string, isAnonymous bool, authorName string) (*domain.Comment, error) {
	content = strings.TrimSpace(utils.PlainText(content))
	if content == "" {
		return nil, &errors.ErrorWithStatusCode{Message: "Comment cannot be empty", StatusCode: http.StatusBadRequest}
	}
	if utf8.RuneCountInString(content) > domain.CommentMaxLength {
		return nil, &errors.ErrorWithStatusCode{Message: "Comment must be less than 1000 characters", StatusCode: http.StatusBadRequest}
	}

	exists, err := c.storage.StoryExists(ctx, storyId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &errors.ErrorWithStatusCode{Message: "Story not found", StatusCode: http.StatusNotFound}
	}

	author := normalizeAuthor(authorName, isAnonymous)
	return c.storage.CreateComment(ctx, storyId, content, author, isAnonymous)
}

// Delete removes a comment unconditionally. Admin authorization is enforced
// by the caller.
func (c *Comment) Delete(ctx context.Context, id string) error {
	return c.storage.DeleteComment(ctx, id)
}
