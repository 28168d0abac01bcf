package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notalone-dev/notalone/internal/api"
	"github.com/notalone-dev/notalone/internal/utils"
)

// anonymousToken is the shared user token for readers that never reacted.
const anonymousToken = "anonymous"

func (h *Handler) GetReactions(w http.ResponseWriter, r *http.Request) {
	storyId, err := parseUUIDParam(chi.URLParam(r, "id"), "story ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	userToken := r.Header.Get("x-user-token")
	if userToken == "" {
		userToken = anonymousToken
	}

	summary, err := h.reaction.Get(r.Context(), storyId, userToken)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ReactionsResponse{Counts: summary.Counts, UserReactions: summary.UserReactions})
}

func (h *Handler) ToggleReaction(w http.ResponseWriter, r *http.Request) {
	storyId, err := parseUUIDParam(chi.URLParam(r, "id"), "story ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.ToggleReactionRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	action, counts, userToken, err := h.reaction.Toggle(r.Context(), storyId, body.ReactionType, r.Header.Get("x-user-token"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ToggleReactionResponse{Action: action, Counts: counts, UserToken: userToken})
}
