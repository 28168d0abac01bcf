package api

import (
	"net/http"
	"time"

	"github.com/notalone-dev/notalone/internal/errors"
)

type CreateCommentRequest struct {
	Content     string `json:"content" validate:"required"`
	IsAnonymous bool   `json:"isAnonymous"`
	AuthorName  string `json:"authorName,omitempty"`
}

// FieldError maps a failed validation to its public error.
func (r *CreateCommentRequest) FieldError(field string) error {
	if field == "Content" {
		return &errors.ErrorWithStatusCode{Message: "Comment cannot be empty", StatusCode: http.StatusBadRequest}
	}
	return nil
}

type CommentResponse struct {
	Id      string    `json:"id"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
}
