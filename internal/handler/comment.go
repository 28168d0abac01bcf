package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notalone-dev/notalone/internal/api"
	"github.com/notalone-dev/notalone/internal/domain"
	"github.com/notalone-dev/notalone/internal/utils"
)

func commentResponse(comment *domain.Comment) api.CommentResponse {
	return api.CommentResponse{
		Id:      comment.Id,
		Content: comment.Content,
		Author:  comment.DisplayAuthor(),
		Date:    comment.CreatedAt,
	}
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	storyId, err := parseUUIDParam(chi.URLParam(r, "id"), "story ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comments, err := h.comment.List(r.Context(), storyId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]api.CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, commentResponse(&comments[i]))
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	storyId, err := parseUUIDParam(chi.URLParam(r, "id"), "story ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Create(r.Context(), storyId, body.Content, body.IsAnonymous, body.AuthorName)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, commentResponse(comment))
}

// DeleteComment is admin-only.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if !h.isAdmin(r) {
		utils.WriteJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Admin password required"})
		return
	}

	id, err := parseUUIDParam(chi.URLParam(r, "id"), "comment ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comment.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.DeleteResponse{Message: "Comment deleted successfully (admin)", Id: id})
}
