package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/notalone-dev/notalone/internal/api"
	"github.com/notalone-dev/notalone/internal/utils"
)

// Health reports database connectivity together with the story count.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	err := h.health.Ping(ctx)
	var total int64
	if err == nil {
		total, err = h.health.CountStories(ctx)
	}
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, api.HealthResponse{
			Status:    "unhealthy",
			Database:  "PostgreSQL",
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.HealthResponse{
		Status:       "healthy",
		Database:     "PostgreSQL",
		TotalStories: &total,
		Timestamp:    time.Now().UTC(),
	})
}
