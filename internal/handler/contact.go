package handler

import (
	"net/http"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactUs stores a contact-form submission and notifies the site owner.
// The submission is persisted before the notification goes out, so a mail
// failure still leaves the message on record.
func (h *Handler) ContactUs(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	if err := h.contactSvc.Submit(r.Context(), req.Name, req.Email, req.Message); err != nil {
		h.log.Error().Err(err).Msg("contact submission failed")
		writeError(w, http.StatusInternalServerError, mailErrorMessage(err))
		return
	}

	writeMessage(w, http.StatusOK, "Email sent successfully!")
}

// ListContacted returns all stored contact messages
func (h *Handler) ListContacted(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactSvc.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list contact messages")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeData(w, http.StatusOK, messages)
}
