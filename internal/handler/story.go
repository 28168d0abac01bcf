package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notalone-dev/notalone/internal/api"
	"github.com/notalone-dev/notalone/internal/domain"
	"github.com/notalone-dev/notalone/internal/utils"
)

func storyResponse(story *domain.Story) api.StoryResponse {
	return api.StoryResponse{
		Id:      story.Id,
		Content: story.Content,
		Author:  story.DisplayAuthor(),
		Date:    story.CreatedAt,
	}
}

func (h *Handler) GetStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.story.List(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]api.StoryResponse, 0, len(stories))
	for i := range stories {
		response = append(response, storyResponse(&stories[i]))
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var body api.CreateStoryRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	story, err := h.story.Create(r.Context(), body.Content, body.IsAnonymous, body.AuthorName)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.CreateStoryResponse{
		StoryResponse: storyResponse(story),
		DeletionToken: story.DeletionToken,
	}
	utils.WriteJSON(w, http.StatusCreated, response)
}

func (h *Handler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"), "story ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	deletionToken := r.Header.Get("x-deletion-token")
	isAdmin := h.isAdmin(r)
	if deletionToken == "" && !isAdmin {
		utils.WriteJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Deletion token or admin password required"})
		return
	}

	if err := h.story.Delete(r.Context(), id, deletionToken, isAdmin); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	message := "Story deleted successfully"
	if isAdmin {
		message += " (admin)"
	}
	utils.WriteJSON(w, http.StatusOK, api.DeleteResponse{Message: message, Id: id})
}
