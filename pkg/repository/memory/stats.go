package memory

import (
	"context"
	"time"

	"github.com/secmon-lab/briareos/pkg/domain/model"
)

func (s *Store) Stats(ctx context.Context) (*model.StoreStats, error) {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &model.StoreStats{
		TotalSessions: len(s.sessions),
		TotalCreated:  s.totalCreated,
		TotalCleared:  s.totalCleared,
	}

	maxAccess := 0
	for id, e := range s.sessions {
		if now.Sub(time.Unix(0, e.lastAccess.Load())) <= recentWindow {
			stats.RecentSessions++
		}
		e.mu.Lock()
		stats.TotalMessages += len(e.messages)
		access := e.accessCount
		e.mu.Unlock()
		if access > maxAccess {
			maxAccess = access
			stats.MostAccessedSession = id
		}
	}
	return stats, nil
}
