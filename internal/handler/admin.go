package handler

import (
	"log/slog"
	"net/http"

	"github.com/notalone-dev/notalone/internal/api"
	"github.com/notalone-dev/notalone/internal/utils"
)

// VerifyAdmin checks the admin password and, on success, issues a session
// token the client may use instead of re-sending the password.
func (h *Handler) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	var body api.VerifyAdminRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if !h.admin.ValidatePassword(body.Password) {
		utils.WriteJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid password"})
		return
	}

	token, err := h.session.NewToken()
	if err != nil {
		// The password check already succeeded; the session token is a
		// convenience, so a signing failure falls back to password-only.
		slog.Error("failed to issue admin session token", "error", err)
		utils.WriteJSON(w, http.StatusOK, api.VerifyAdminResponse{Success: true})
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.VerifyAdminResponse{Success: true, Token: token})
}
