package handler

import (
	"errors"
	"net/http"

	"github.com/growwitup/backend/internal/service"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe adds an email to the subscriber list
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	err := h.subscriberSvc.Subscribe(r.Context(), req.Email)
	switch {
	case err == nil:
		writeMessage(w, http.StatusCreated, "Subscribed successfully!")
	case errors.Is(err, service.ErrAlreadySubscribed):
		writeError(w, http.StatusBadRequest, "Email already subscribed")
	case errors.Is(err, service.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "Invalid email address")
	default:
		h.log.Error().Err(err).Msg("subscribe failed")
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// Unsubscribe removes an email from the subscriber list
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	err := h.subscriberSvc.Unsubscribe(r.Context(), req.Email)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Unsubscribed successfully")
	case errors.Is(err, service.ErrNotSubscribed):
		writeError(w, http.StatusNotFound, "Email not found")
	case errors.Is(err, service.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "Invalid email address")
	default:
		h.log.Error().Err(err).Msg("unsubscribe failed")
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// ListSubscribers returns all subscribers
func (h *Handler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.subscriberSvc.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list subscribers")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeData(w, http.StatusOK, subscribers)
}

// Count returns the total contact message and subscriber counts
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	contactCount, err := h.contactSvc.Count(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to count contact messages")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	subscriberCount, err := h.subscriberSvc.Count(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to count subscribers")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeData(w, http.StatusOK, map[string]int{
		"totalContactUsCount": contactCount,
		"totalSubscribers":    subscriberCount,
	})
}
