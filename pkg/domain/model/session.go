package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// SessionID identifies one conversation session
type SessionID string

// NewSessionID generates a new UUID v4 SessionID. Used when the
// transport does not supply a session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

// String returns the string representation of SessionID
func (s SessionID) String() string {
	return string(s)
}

// Ring and history capacities. The recent-category ring feeds the
// follow-up heuristics, so its capacity is part of the behavioral
// contract, not a tuning knob.
const (
	RecentCategoryCap        = 5
	RecentAgentCap           = 10
	DefaultMessageHistoryCap = 50
)

// SessionRecord is the per-session state owned by the session store.
// It is created lazily on first reference and destroyed on explicit
// clear or TTL expiry.
type SessionRecord struct {
	ID              SessionID           `json:"id"`
	Status          types.SessionStatus `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	LastActivity    time.Time           `json:"last_activity"`
	Profile         types.Profile       `json:"profile"`
	CurrentCategory types.CategoryID    `json:"current_category,omitempty"`
	MessageCount    int                 `json:"message_count"`
	EscalationCount int                 `json:"escalation_count"`
}

// MessageEntry is one entry of the bounded per-session message history
type MessageEntry struct {
	Role      types.MessageRole `json:"role"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
	Category  types.CategoryID  `json:"category,omitempty"`
	Agent     types.AgentType   `json:"agent,omitempty"`
}
