package events

import (
	"time"

	"github.com/repairconnect/api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventUserSuspended   EventType = "user_suspended"
	EventUserBanned      EventType = "user_banned"
	EventUserReactivated EventType = "user_reactivated"
	EventUserDeleted     EventType = "user_deleted"
)

// Event represents an account lifecycle event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Email     string      `json:"email,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// UserSuspendedPayload payload.
type UserSuspendedPayload struct {
	DurationHours  int       `json:"duration_hours"`
	SuspendedUntil time.Time `json:"suspended_until"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Role domain.Role `json:"role"`
}
