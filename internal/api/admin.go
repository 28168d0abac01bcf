package api

import (
	"net/http"

	"github.com/notalone-dev/notalone/internal/errors"
)

type VerifyAdminRequest struct {
	Password string `json:"password" validate:"required"`
}

// FieldError maps a failed validation to its public error. A missing password
// is rejected exactly like a wrong one.
func (r *VerifyAdminRequest) FieldError(field string) error {
	if field == "Password" {
		return &errors.ErrorWithStatusCode{Message: "Invalid password", StatusCode: http.StatusUnauthorized}
	}
	return nil
}

// VerifyAdminResponse carries an optional short-lived session token that can
// be presented as "Authorization: Bearer <token>" instead of re-sending the
// password on every request.
type VerifyAdminResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}
