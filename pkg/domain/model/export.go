package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// SessionExport is the full serializable state of one session. Import
// replays each entry through the normal bounded-append operations, so a
// blob larger than the store's capacities is truncated to the most
// recent entries rather than overflowing them.
type SessionExport struct {
	Session          SessionRecord      `json:"session"`
	Messages         []MessageEntry     `json:"messages"`
	RecentCategories []types.CategoryID `json:"recent_categories"`
	RecentAgents     []types.AgentType  `json:"recent_agents"`
	ContextData      map[string]any     `json:"context_data,omitempty"`
	AccessCount      int                `json:"access_count"`
}

// Validate checks structural integrity of the export blob. A blob that
// fails here must not cause any store mutation.
func (e *SessionExport) Validate() error {
	if e.Session.ID == "" {
		return goerr.New("export has empty session ID")
	}
	if !e.Session.Status.IsValid() {
		return goerr.New("export has invalid session status", goerr.V("status", e.Session.Status))
	}
	if e.Session.MessageCount < 0 || e.Session.EscalationCount < 0 {
		return goerr.New("export has negative counters",
			goerr.V("messages", e.Session.MessageCount),
			goerr.V("escalations", e.Session.EscalationCount))
	}
	if e.AccessCount < 0 {
		return goerr.New("export has negative access count", goerr.V("count", e.AccessCount))
	}
	for i, msg := range e.Messages {
		if !msg.Role.IsValid() {
			return goerr.New("export message has invalid role",
				goerr.V("index", i), goerr.V("role", msg.Role))
		}
	}
	for i, id := range e.RecentCategories {
		if err := id.Validate(); err != nil {
			return goerr.Wrap(err, "export has invalid recent category", goerr.V("index", i))
		}
	}
	for i, agent := range e.RecentAgents {
		if !agent.IsValid() {
			return goerr.New("export has invalid recent agent",
				goerr.V("index", i), goerr.V("agent", agent))
		}
	}
	return nil
}
