package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notalone-dev/notalone/internal/api"
	"github.com/notalone-dev/notalone/internal/domain"
	internal_errors "github.com/notalone-dev/notalone/internal/errors"
)

func TestGetReactionsHandler(t *testing.T) {
	h := &Handler{admin: &MockAdminService{}, session: &MockSession{}}
	router := newTestRouter(h)

	t.Run("returns counts and user reactions", func(t *testing.T) {
		h.reaction = &MockReactionService{
			MockGet: func(ctx context.Context, storyId, userToken string) (*domain.ReactionSummary, error) {
				assert.Equal(t, testStoryId, storyId)
				assert.Equal(t, "tok-123", userToken)
				return &domain.ReactionSummary{
					Counts:        domain.ReactionCounts{domain.ReactionLove: 3, domain.ReactionSupport: 1},
					UserReactions: []domain.ReactionKind{domain.ReactionLove},
				}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/stories/"+testStoryId+"/reactions", nil)
		req.Header.Set("x-user-token", "tok-123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.ReactionsResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(3), resp.Counts[domain.ReactionLove])
		assert.Equal(t, []domain.ReactionKind{domain.ReactionLove}, resp.UserReactions)
	})

	t.Run("missing token falls back to anonymous", func(t *testing.T) {
		var seenToken string
		h.reaction = &MockReactionService{
			MockGet: func(ctx context.Context, storyId, userToken string) (*domain.ReactionSummary, error) {
				seenToken = userToken
				return &domain.ReactionSummary{Counts: domain.ReactionCounts{}, UserReactions: []domain.ReactionKind{}}, nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stories/"+testStoryId+"/reactions", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "anonymous", seenToken)
	})

	t.Run("malformed story id", func(t *testing.T) {
		h.reaction = &MockReactionService{}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stories/not-a-uuid/reactions", nil))

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp api.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.Equal(t, "Invalid story ID", errResp.Error)
	})
}

func TestToggleReactionHandler(t *testing.T) {
	h := &Handler{admin: &MockAdminService{}, session: &MockSession{}}
	router := newTestRouter(h)

	t.Run("adds a reaction and echoes the token", func(t *testing.T) {
		h.reaction = &MockReactionService{
			MockToggle: func(ctx context.Context, storyId, reactionType, userToken string) (string, domain.ReactionCounts, string, error) {
				assert.Equal(t, testStoryId, storyId)
				assert.Equal(t, "love", reactionType)
				assert.Equal(t, "", userToken)
				return "added", domain.ReactionCounts{domain.ReactionLove: 1}, "fresh-token", nil
			},
		}

		body := []byte(`{"reactionType": "love"}`)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/stories/"+testStoryId+"/reactions", bytes.NewBuffer(body)))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.ToggleReactionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "added", resp.Action)
		assert.Equal(t, int64(1), resp.Counts[domain.ReactionLove])
		assert.Equal(t, "fresh-token", resp.UserToken)
	})

	t.Run("forwards the caller's token", func(t *testing.T) {
		h.reaction = &MockReactionService{
			MockToggle: func(ctx context.Context, storyId, reactionType, userToken string) (string, domain.ReactionCounts, string, error) {
				assert.Equal(t, "tok-456", userToken)
				return "removed", domain.ReactionCounts{}, userToken, nil
			},
		}

		body := []byte(`{"reactionType": "support"}`)
		req := httptest.NewRequest(http.MethodPost, "/stories/"+testStoryId+"/reactions", bytes.NewBuffer(body))
		req.Header.Set("x-user-token", "tok-456")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.ToggleReactionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "removed", resp.Action)
		assert.Equal(t, "tok-456", resp.UserToken)
	})

	t.Run("invalid reaction type", func(t *testing.T) {
		h.reaction = &MockReactionService{
			MockToggle: func(ctx context.Context, storyId, reactionType, userToken string) (string, domain.ReactionCounts, string, error) {
				return "", nil, "", &internal_errors.ErrorWithStatusCode{Message: "Invalid reaction type", StatusCode: http.StatusBadRequest}
			},
		}

		body := []byte(`{"reactionType": "like"}`)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/stories/"+testStoryId+"/reactions", bytes.NewBuffer(body)))

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp api.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.Equal(t, "Invalid reaction type", errResp.Error)
	})

	t.Run("missing reaction type rejected before the service", func(t *testing.T) {
		h.reaction = &MockReactionService{
			MockToggle: func(ctx context.Context, storyId, reactionType, userToken string) (string, domain.ReactionCounts, string, error) {
				t.Fatal("service should not be reached")
				return "", nil, "", nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/stories/"+testStoryId+"/reactions", bytes.NewBufferString(`{}`)))

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp api.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.Equal(t, "Invalid reaction type", errResp.Error)
	})

	t.Run("invalid json body", func(t *testing.T) {
		h.reaction = &MockReactionService{}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/stories/"+testStoryId+"/reactions", bytes.NewBufferString("{")))

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp api.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.Equal(t, "Body is invalid json", errResp.Error)
	})

	t.Run("missing story", func(t *testing.T) {
		h.reaction = &MockReactionService{
			MockToggle: func(ctx context.Context, storyId, reactionType, userToken string) (string, domain.ReactionCounts, string, error) {
				return "", nil, "", &internal_errors.ErrorWithStatusCode{Message: "Story not found", StatusCode: http.StatusNotFound}
			},
		}

		body := []byte(`{"reactionType": "relate"}`)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/stories/"+testStoryId+"/reactions", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
