package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCredentialRegistered EventType = "credential_registered"
	EventLoginSucceeded       EventType = "login_succeeded"
	EventLoginFailed          EventType = "login_failed"
	EventPasswordChanged      EventType = "password_changed"
)

// Event represents an auth audit event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	DriverID  *int64    `json:"driver_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// CredentialPayload describes the credential an event is about.
type CredentialPayload struct {
	Email string   `json:"email"`
	Roles []string `json:"roles,omitempty"`
}

// LoginFailedPayload payload. Reason is internal and never sent to clients.
type LoginFailedPayload struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}
