package api

import (
	"net/http"

	"github.com/notalone-dev/notalone/internal/domain"
	"github.com/notalone-dev/notalone/internal/errors"
)

type ToggleReactionRequest struct {
	ReactionType string `json:"reactionType" validate:"required"`
}

// FieldError maps a failed validation to its public error. An absent kind is
// invalid the same way an unrecognized one is.
func (r *ToggleReactionRequest) FieldError(field string) error {
	if field == "ReactionType" {
		return &errors.ErrorWithStatusCode{Message: "Invalid reaction type", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// ReactionsResponse aggregates totals per kind plus the kinds the requesting
// user token has set on this story.
type ReactionsResponse struct {
	Counts        domain.ReactionCounts `json:"counts"`
	UserReactions []domain.ReactionKind `json:"userReactions"`
}

// ToggleReactionResponse reports what the toggle did and returns the user
// token so first-time callers can persist it.
type ToggleReactionResponse struct {
	Action    string                `json:"action"`
	Counts    domain.ReactionCounts `json:"counts"`
	UserToken string                `json:"userToken"`
}
