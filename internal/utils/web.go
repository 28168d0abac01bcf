package utils

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/notalone-dev/notalone/internal/api"
	"github.com/notalone-dev/notalone/internal/errors"
)

// WriteJSON encodes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteErrorAndStatusCode maps a service error to its JSON error body.
// Errors without an attached status code are internal: the message is logged
// server-side and returned only as diagnostic detail.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		WriteJSON(w, e.StatusCode, api.ErrorResponse{Error: e.Message})
		return
	}
	slog.Error("internal error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error", Details: err.Error()})
}

// fieldErrors is implemented by request DTOs that map a failed validation to
// their own public error instead of the generic one.
type fieldErrors interface {
	FieldError(field string) error
}

// DecodeValidate decodes a JSON body and checks validator tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		if invalid, ok := err.(validator.ValidationErrors); ok && len(invalid) > 0 {
			if m, ok := body.(fieldErrors); ok {
				if mapped := m.FieldError(invalid[0].Field()); mapped != nil {
					return mapped
				}
			}
		}
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}
