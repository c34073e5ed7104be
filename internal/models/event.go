package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthEventType names an account lifecycle event.
type AuthEventType string

const (
	EventUserRegistered AuthEventType = "user.registered"
	EventUserLoggedIn   AuthEventType = "user.logged_in"
)

// AuthEvent is published after a successful registration or login.
type AuthEvent struct {
	ID         uuid.UUID     `json:"id"`
	Type       AuthEventType `json:"type"`
	UserID     uuid.UUID     `json:"user_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewAuthEvent builds an event of the given type for userID, stamped now in UTC.
func NewAuthEvent(t AuthEventType, userID uuid.UUID) AuthEvent {
	return AuthEvent{
		ID:         uuid.New(),
		Type:       t,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}
