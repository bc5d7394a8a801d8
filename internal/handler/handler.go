package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growwitup/backend/internal/config"
	"github.com/growwitup/backend/internal/database"
	"github.com/growwitup/backend/internal/email"
	"github.com/growwitup/backend/internal/logger"
	"github.com/growwitup/backend/internal/service"
)

// msgInternal is the sanitized message for unexpected failures. Server-side
// detail goes to the log, never to the client.
const msgInternal = "Something went wrong. Please try again later."

// Handler holds all HTTP handlers
type Handler struct {
	db            *database.Postgres
	rdb           *database.Redis
	log           *logger.Logger
	cfg           *config.Config
	authSvc       *service.AuthService
	subscriberSvc *service.SubscriberService
	contactSvc    *service.ContactService
	broadcastSvc  *service.BroadcastService
}

// New creates a new Handler instance
func New(
	db *database.Postgres,
	rdb *database.Redis,
	log *logger.Logger,
	cfg *config.Config,
	authSvc *service.AuthService,
	subscriberSvc *service.SubscriberService,
	contactSvc *service.ContactService,
	broadcastSvc *service.BroadcastService,
) *Handler {
	return &Handler{
		db:            db,
		rdb:           rdb,
		log:           log,
		cfg:           cfg,
		authSvc:       authSvc,
		subscriberSvc: subscriberSvc,
		contactSvc:    contactSvc,
		broadcastSvc:  broadcastSvc,
	}
}

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, map[string]interface{}{"data": data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// mailErrorMessage maps the provider error taxonomy to user-facing
// messages; anything unclassified collapses to the generic message.
func mailErrorMessage(err error) string {
	switch {
	case errors.Is(err, email.ErrAuthFailure):
		return "Invalid authentication credentials. Please check your email configuration."
	case errors.Is(err, email.ErrConnectionFailure):
		return "Connection to email server failed. Please try again later."
	case errors.Is(err, email.ErrInvalidRecipient):
		return "Recipient email address is invalid."
	default:
		return msgInternal
	}
}
