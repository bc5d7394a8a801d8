package model

import (
	"time"
)

// User represents the admin account used for login.
// Users are seeded out-of-band (cmd/admin create-user) and are never
// created, mutated, or deleted through the HTTP API.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose the stored password
	CreatedAt    time.Time `json:"createdAt"`
}
