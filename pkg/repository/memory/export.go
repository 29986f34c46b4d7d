package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

func (s *Store) Export(ctx context.Context, id model.SessionID) (*model.SessionExport, error) {
	e := s.lookup(id)
	if e == nil {
		return nil, goerr.Wrap(ErrSessionNotFound, "cannot export session", goerr.V("session_id", id))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	blob := &model.SessionExport{
		Session:          e.record,
		Messages:         make([]model.MessageEntry, len(e.messages)),
		RecentCategories: make([]types.CategoryID, len(e.categories)),
		RecentAgents:     make([]types.AgentType, len(e.agents)),
		AccessCount:      e.accessCount,
	}
	copy(blob.Messages, e.messages)
	copy(blob.RecentCategories, e.categories)
	copy(blob.RecentAgents, e.agents)
	if len(e.data) > 0 {
		blob.ContextData = make(map[string]any, len(e.data))
		for k, v := range e.data {
			blob.ContextData[k] = v
		}
	}
	return blob, nil
}

// Import reconstructs a session from an export blob. The blob is
// validated up front and the replacement entry is assembled aside, so a
// malformed blob leaves the store untouched. Histories are replayed
// through the bounded appends: an oversized blob is truncated to the
// most recent entries instead of overflowing the rings.
func (s *Store) Import(ctx context.Context, id model.SessionID, blob *model.SessionExport) error {
	if blob == nil {
		return goerr.New("import blob is nil", goerr.V("session_id", id))
	}
	if err := blob.Validate(); err != nil {
		return goerr.Wrap(err, "invalid import blob", goerr.V("session_id", id))
	}

	now := s.now()
	e := s.newEntry(id, now)
	e.record = blob.Session
	e.record.ID = id
	e.accessCount = blob.AccessCount
	for _, msg := range blob.Messages {
		e.messages = appendBounded(e.messages, msg, s.historyCap)
	}
	for _, cat := range blob.RecentCategories {
		e.categories = appendBounded(e.categories, cat, model.RecentCategoryCap)
	}
	for _, agent := range blob.RecentAgents {
		e.agents = appendBounded(e.agents, agent, model.RecentAgentCap)
	}
	for k, v := range blob.ContextData {
		e.data[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[id]; !exists {
		if len(s.sessions) >= s.maxSessions {
			s.evictOldestLocked()
		}
		s.totalCreated++
	}
	s.sessions[id] = e
	return nil
}
