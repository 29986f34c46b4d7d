package model

import "github.com/secmon-lab/briareos/pkg/domain/types"

// SessionContext is the read view of a session handed to the detection
// logic: the previous category, the recent category/agent rings and the
// stored context data.
type SessionContext struct {
	Session          SessionRecord
	LastCategory     types.CategoryID // empty for a fresh session
	RecentCategories []types.CategoryID
	LastAgent        types.AgentType
	RecentAgents     []types.AgentType
	ContextData      map[string]any
}

// RecentCategoriesTail returns the last n entries of the recent-category
// ring, oldest first.
func (c *SessionContext) RecentCategoriesTail(n int) []types.CategoryID {
	if n >= len(c.RecentCategories) {
		return c.RecentCategories
	}
	return c.RecentCategories[len(c.RecentCategories)-n:]
}
