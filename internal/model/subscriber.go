package model

import (
	"time"
)

// Subscriber is an email address opted into broadcast mail.
// Email is unique across the collection; SubscribedAt defaults to the
// time the subscribe request was accepted.
type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
