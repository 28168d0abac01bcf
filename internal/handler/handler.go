package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/notalone-dev/notalone/internal/errors"
	"github.com/notalone-dev/notalone/internal/service"
	"github.com/notalone-dev/notalone/internal/session"
)

// HealthStorage is the slice of the store the health endpoint needs.
type HealthStorage interface {
	Ping(ctx context.Context) error
	CountStories(ctx context.Context) (int64, error)
}

type Handler struct {
	story    service.StoryService
	comment  service.CommentService
	reaction service.ReactionService
	admin    service.AdminService
	session  session.Service
	health   HealthStorage
}

func New(story service.StoryService, comment service.CommentService, reaction service.ReactionService, admin service.AdminService, session session.Service, health HealthStorage) *Handler {
	return &Handler{story, comment, reaction, admin, session, health}
}

// isAdmin checks the two accepted admin credentials: the shared password
// header, or a session token previously issued by VerifyAdmin.
func (h *Handler) isAdmin(r *http.Request) bool {
	if h.admin.ValidatePassword(r.Header.Get("x-admin-password")) {
		return true
	}
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return h.session.Validate(token)
	}
	return false
}

// parseUUIDParam validates an opaque id path parameter before it reaches the
// store's UUID columns.
func parseUUIDParam(param, paramName string) (string, error) {
	if _, err := uuid.Parse(param); err != nil {
		return "", &errors.ErrorWithStatusCode{Message: fmt.Sprintf("Invalid %s", paramName), StatusCode: http.StatusBadRequest}
	}
	return param, nil
}
