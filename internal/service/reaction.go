package service

import (
	"context"
	"net/http"

	"github.com/notalone-dev/notalone/internal/domain"
	"github.com/notalone-dev/notalone/internal/errors"
	"github.com/notalone-dev/notalone/internal/utils"
)

type ReactionService interface {
	Get(ctx context.Context, storyId, userToken string) (*domain.ReactionSummary, error)
	Toggle(ctx context.Context, storyId, reactionType, userToken string) (action string, counts domain.ReactionCounts, token string, err error)
}

type ReactionStorage interface {
	ReactionCounts(ctx context.Context, storyId string) (domain.ReactionCounts, error)
	UserReactions(ctx context.Context, storyId, userToken string) ([]domain.ReactionKind, error)
	ToggleReaction(ctx context.Context, storyId string, kind domain.ReactionKind, userToken string) (string, error)
	StoryExists(ctx context.Context, id string) (bool, error)
}

type Reaction struct {
	storage ReactionStorage
}

func NewReaction(storage ReactionStorage) ReactionService {
	return &Reaction{storage}
}

func (r *Reaction) Get(ctx context.Context, storyId, userToken string) (*domain.ReactionSummary, error) {
	counts, err := r.storage.ReactionCounts(ctx, storyId)
	if err != nil {
		return nil, err
	}
	userReactions, err := r.storage.UserReactions(ctx, storyId, userToken)
	if err != nil {
		return nil, err
	}
	return &domain.ReactionSummary{Counts: counts, UserReactions: userReactions}, nil
}

// Toggle flips one reaction kind for a user token. An empty token means a
// first-time caller: a fresh token is generated and returned for the client
// to persist.
func (r *Reaction) Toggle(ctx context.Context, storyId, reactionType, userToken string) (string, domain.ReactionCounts, string, error) {
	if !domain.ValidReactionKind(reactionType) {
		return "", nil, "", &errors.ErrorWithStatusCode{Message: "Invalid reaction type", StatusCode: http.StatusBadRequest}
	}

	if userToken == "" {
		userToken = utils.GenerateToken(utils.TokenBytes)
	}

	exists, err := r.storage.StoryExists(ctx, storyId)
	if err != nil {
		return "", nil, "", err
	}
	if !exists {
		return "", nil, "", &errors.ErrorWithStatusCode{Message: "Story not found", StatusCode: http.StatusNotFound}
	}

	action, err := r.storage.ToggleReaction(ctx, storyId, domain.ReactionKind(reactionType), userToken)
	if err != nil {
		return "", nil, "", err
	}

	counts, err := r.storage.ReactionCounts(ctx, storyId)
	if err != nil {
		return "", nil, "", err
	}

	return action, counts, userToken, nil
}
