package model

import (
	"time"

	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// Result is the classification bundle produced for one message
type Result struct {
	SessionID      SessionID            `json:"session_id"`
	Category       types.CategoryID     `json:"category"`
	Agent          types.AgentType      `json:"agent"`
	Escalate       bool                 `json:"escalate"`
	EscalationType types.EscalationType `json:"escalation_type,omitempty"`
	Priority       types.PriorityTier   `json:"priority"`
	Profile        types.Profile        `json:"profile"`
	Financing      types.FinancingType  `json:"financing_type"`
	ContextData    map[string]any       `json:"context_data,omitempty"`
	ProcessingTime time.Duration        `json:"-"`
}

// FallbackResult returns the safe default bundle used when classification
// fails: general category, general agent, no escalation, low priority.
func FallbackResult(sessionID SessionID) *Result {
	return &Result{
		SessionID: sessionID,
		Category:  types.CategoryGeneral,
		Agent:     types.AgentGeneral,
		Escalate:  false,
		Priority:  types.PriorityLow,
		Profile:   types.ProfileUnknown,
		Financing: types.FinancingUnknown,
	}
}
