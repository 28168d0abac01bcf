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

type StoryService interface {
	List(ctx context.Context) ([]domain.Story, error)
	Create(ctx context.Context, content string, isAnonymous bool, authorName string) (*domain.Story, error)
	Delete(ctx context.Context, id, deletionToken string, isAdmin bool) error
}

type StoryStorage interface {
	ListApprovedStories(ctx context.Context) ([]domain.Story, error)
	CreateStory(ctx context.Context, content string, authorName *string, isAnonymous bool, deletionToken string) (*domain.Story, error)
	GetStoryDeletionToken(ctx context.Context, id string) (string, error)
	DeleteStory(ctx context.Context, id string) error
}

type Story struct {
	storage StoryStorage
}

func NewStory(storage StoryStorage) StoryService {
	return &Story{storage}
}

func (s *Story) List(ctx context.Context) ([]domain.Story, error) {
	return s.storage.ListApprovedStories(ctx)
}

func (s *Story) Create(ctx context.Context, content string, isAnonymous bool, authorName string) (*domain.Story, error) {
	content = strings.TrimSpace(utils.PlainText(content))
	if utf8.RuneCountInString(content) < domain.StoryMinLength {
		return nil, &errors.ErrorWithStatusCode{Message: "Story content must be at least 10 characters", StatusCode: http.StatusBadRequest}
	}

	author := normalizeAuthor(authorName, isAnonymous)
	deletionToken := utils.GenerateToken(utils.TokenBytes)

	return s.storage.CreateStory(ctx, content, author, isAnonymous, deletionToken)
}

// Delete authorizes via the admin flag or the possession token, then removes
// the story. Comments and reactions cascade in the store.
func (s *Story) Delete(ctx context.Context, id, deletionToken string, isAdmin bool) error {
	storedToken, err := s.storage.GetStoryDeletionToken(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && storedToken != deletionToken {
		return &errors.ErrorWithStatusCode{Message: "You can only delete your own stories", StatusCode: http.StatusForbidden}
	}

	return s.storage.DeleteStory(ctx, id)
}

// normalizeAuthor trims, strips markup and truncates a supplied author name.
// Anonymous or absent names are stored as NULL.
func normalizeAuthor(name string, isAnonymous bool) *string {
	if isAnonymous {
		return nil
	}
	name = strings.TrimSpace(utils.PlainText(name))
	if name == "" {
		return nil
	}
	if runes := []rune(name); len(runes) > domain.AuthorNameMaxLength {
		name = string(runes[:domain.AuthorNameMaxLength])
	}
	return &name
}
