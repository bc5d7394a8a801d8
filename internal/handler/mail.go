package handler

import (
	"net/http"
)

type sendEmailRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SendEmail broadcasts a message to every subscriber. The auth middleware
// has already validated the bearer credential by the time this runs. The
// response reports how many sends succeeded out of the total, including
// per-recipient failures, so a partially failed broadcast is visible.
func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "Title and description are required")
		return
	}

	result, err := h.broadcastSvc.SendBroadcast(r.Context(), req.Title, req.Description)
	if err != nil {
		h.log.Error().Err(err).Msg("broadcast failed")
		writeError(w, http.StatusInternalServerError, mailErrorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Email sent to all subscribers successfully!",
		"data":    result,
	})
}

type sendDateRequest struct {
	Date  string `json:"date"`
	Email string `json:"email"`
}

// SendDate mails the owner a meeting-date confirmation
func (h *Handler) SendDate(w http.ResponseWriter, r *http.Request) {
	var req sendDateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Date and email are required")
		return
	}

	if err := h.broadcastSvc.SendMeetingConfirmation(r.Context(), req.Date, req.Email); err != nil {
		h.log.Error().Err(err).Msg("meeting confirmation failed")
		writeError(w, http.StatusInternalServerError, mailErrorMessage(err))
		return
	}

	writeMessage(w, http.StatusOK, "We will Contact you soon...")
}
