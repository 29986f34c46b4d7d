package types

import "fmt"

// SessionStatus represents the lifecycle status of a session.
// A session never transitions back to active.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusEscalated SessionStatus = "escalated"
	SessionStatusCompleted SessionStatus = "completed"
)

// AllSessionStatuses returns all valid session statuses
func AllSessionStatuses() []SessionStatus {
	return []SessionStatus{
		SessionStatusActive,
		SessionStatusEscalated,
		SessionStatusCompleted,
	}
}

// IsValid checks if the session status is valid
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive,
		SessionStatusEscalated,
		SessionStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to next.
// Active may escalate or complete; escalated and completed are terminal
// except that an escalated session may still be completed.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	if next == SessionStatusActive {
		return false
	}
	switch s {
	case SessionStatusActive:
		return true
	case SessionStatusEscalated:
		return next != SessionStatusActive
	case SessionStatusCompleted:
		return next == SessionStatusCompleted
	default:
		return false
	}
}

// String returns the string representation of the session status
func (s SessionStatus) String() string {
	return string(s)
}

// ParseSessionStatus parses a string into a SessionStatus
func ParseSessionStatus(s string) (SessionStatus, error) {
	status := SessionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid session status: %s", s)
	}
	return status, nil
}
