package handler

import (
	"errors"
	"net/http"

	"github.com/growwitup/backend/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates the submitted email/password pair and returns a
// credential for privileged actions.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"data":    resp,
	})
}

// Logout acknowledges the request. There is no server-side session state to
// invalidate; the client is expected to discard its credential.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Logout successful")
}

// Welcome answers the root path
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "Welcome to backend")
}
