package model

import (
	"time"
)

// ContactMessage is a stored contact-form submission. Messages are
// immutable once created and are never deleted.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
