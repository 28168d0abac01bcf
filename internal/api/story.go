package api

import (
	"net/http"
	"time"

	"github.com/notalone-dev/notalone/internal/errors"
)

// Request DTOs

type CreateStoryRequest struct {
	Content     string `json:"content" validate:"required"`
	IsAnonymous bool   `json:"isAnonymous"`
	AuthorName  string `json:"authorName,omitempty"`
}

// FieldError maps a failed validation to its public error. A missing content
// field fails the length rule the same way empty content does.
func (r *CreateStoryRequest) FieldError(field string) error {
	if field == "Content" {
		return &errors.ErrorWithStatusCode{Message: "Story content must be at least 10 characters", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// Response DTOs

// StoryResponse is the public view of a story. The author field already has
// the Anonymous substitution applied; the deletion token is never included.
type StoryResponse struct {
	Id      string    `json:"id"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
}

// CreateStoryResponse is the only payload that ever carries the deletion token.
type CreateStoryResponse struct {
	StoryResponse
	DeletionToken string `json:"deletionToken"`
}

// DeleteResponse confirms a successful delete of a story or comment.
type DeleteResponse struct {
	Message string `json:"message"`
	Id      string `json:"id"`
}
