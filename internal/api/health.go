package api

import "time"

type HealthResponse struct {
	Status       string    `json:"status"`
	Database     string    `json:"database"`
	TotalStories *int64    `json:"total_stories,omitempty"`
	Error        string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// ErrorResponse is the JSON error body for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
