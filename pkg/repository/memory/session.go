package memory

import (
	"context"
	"time"

	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

func (s *Store) GetOrCreate(ctx context.Context, id model.SessionID) (*model.SessionRecord, error) {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())
	record := e.record
	return &record, nil
}

func (s *Store) Context(ctx context.Context, id model.SessionID) (*model.SessionContext, error) {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())

	sc := &model.SessionContext{
		Session:          e.record,
		RecentCategories: make([]types.CategoryID, len(e.categories)),
		RecentAgents:     make([]types.AgentType, len(e.agents)),
		ContextData:      make(map[string]any, len(e.data)),
	}
	copy(sc.RecentCategories, e.categories)
	copy(sc.RecentAgents, e.agents)
	for k, v := range e.data {
		sc.ContextData[k] = v
	}
	if n := len(e.categories); n > 0 {
		sc.LastCategory = e.categories[n-1]
	}
	if n := len(e.agents); n > 0 {
		sc.LastAgent = e.agents[n-1]
	}
	return sc, nil
}

func (s *Store) AppendMessage(ctx context.Context, id model.SessionID, entry model.MessageEntry) error {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	e.messages = appendBounded(e.messages, entry, s.historyCap)
	e.record.MessageCount++
	return nil
}

func (s *Store) RecordCategory(ctx context.Context, id model.SessionID, category types.CategoryID) error {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())
	e.categories = appendBounded(e.categories, category, model.RecentCategoryCap)
	e.record.CurrentCategory = category
	return nil
}

func (s *Store) RecordAgent(ctx context.Context, id model.SessionID, agent types.AgentType) error {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())
	e.agents = appendBounded(e.agents, agent, model.RecentAgentCap)
	return nil
}

func (s *Store) SetProfile(ctx context.Context, id model.SessionID, profile types.Profile) error {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())
	e.record.Profile = profile
	return nil
}

func (s *Store) SetContextData(ctx context.Context, id model.SessionID, key string, value any) error {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())
	e.data[key] = value
	return nil
}

func (s *Store) GetContextData(ctx context.Context, id model.SessionID, key string) (any, bool, error) {
	e := s.lookup(id)
	if e == nil {
		return nil, false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())
	v, ok := e.data[key]
	return v, ok, nil
}

func (s *Store) MarkEscalated(ctx context.Context, id model.SessionID) error {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())
	if e.record.Status.CanTransitionTo(types.SessionStatusEscalated) {
		e.record.Status = types.SessionStatusEscalated
	}
	if e.record.Status == types.SessionStatusEscalated {
		e.record.EscalationCount++
	}
	return nil
}

func (s *Store) MarkCompleted(ctx context.Context, id model.SessionID) error {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(s.now())
	if e.record.Status.CanTransitionTo(types.SessionStatusCompleted) {
		e.record.Status = types.SessionStatusCompleted
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, id model.SessionID) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	if s.expired(e, now) {
		return ErrSessionNotFound
	}
	s.totalCleared++
	return nil
}

func (s *Store) EvictInactive(ctx context.Context, maxIdle time.Duration) (int, error) {
	now := s.now()

	s.mu.RLock()
	var stale []model.SessionID
	for id, e := range s.sessions {
		if now.Sub(time.Unix(0, e.lastAccess.Load())) > maxIdle {
			stale = append(stale, id)
		}
	}
	s.mu.RUnlock()

	if len(stale) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for _, id := range stale {
		e, ok := s.sessions[id]
		if !ok {
			continue
		}
		// Re-check: the session may have been touched between the
		// scan and the removal.
		if now.Sub(time.Unix(0, e.lastAccess.Load())) > maxIdle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}
