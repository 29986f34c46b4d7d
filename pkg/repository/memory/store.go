package memory

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/secmon-lab/briareos/pkg/domain/interfaces"
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = time.Hour

	// recentWindow is the activity window counted as "recent" in
	// store statistics.
	recentWindow = 5 * time.Minute
)

// Store is an in-memory session store with a capacity bound and a
// per-session TTL. The index mutex guards the session map; each entry
// carries its own mutex so mutations on one session serialize without
// blocking other sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[model.SessionID]*entry

	maxSessions int
	ttl         time.Duration
	historyCap  int
	now         func() time.Time

	totalCreated int
	totalCleared int
}

var _ interfaces.SessionStore = &Store{}

type entry struct {
	mu         sync.Mutex
	record     model.SessionRecord
	messages   []model.MessageEntry
	categories []types.CategoryID
	agents     []types.AgentType
	data       map[string]any

	accessCount int
	// lastAccess is kept as unix nanos so expiry scans can read it
	// without taking the entry mutex.
	lastAccess atomic.Int64
}

type Option func(*Store)

// WithMaxSessions bounds the number of live sessions. When the bound is
// reached, creating a new session evicts the least recently accessed
// one.
func WithMaxSessions(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithTTL sets the idle duration after which a session expires
func WithTTL(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithHistoryLimit bounds the per-session message history
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.historyCap = n
		}
	}
}

// WithClock replaces the time source. Used by tests to drive expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		sessions:    make(map[model.SessionID]*entry),
		maxSessions: DefaultMaxSessions,
		ttl:         DefaultTTL,
		historyCap:  model.DefaultMessageHistoryCap,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) newEntry(id model.SessionID, now time.Time) *entry {
	e := &entry{
		record: model.SessionRecord{
			ID:           id,
			Status:       types.SessionStatusActive,
			CreatedAt:    now,
			LastActivity: now,
			Profile:      types.ProfileUnknown,
		},
		data: make(map[string]any),
	}
	e.lastAccess.Store(now.UnixNano())
	return e
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return now.Sub(time.Unix(0, e.lastAccess.Load())) > s.ttl
}

// getOrCreate returns the live entry for id, creating it when absent or
// expired. Expired entries are removed and replaced by a fresh session.
func (s *Store) getOrCreate(id model.SessionID) *entry {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if ok && s.expired(e, now) {
		delete(s.sessions, id)
		ok = false
	}
	if !ok {
		if len(s.sessions) >= s.maxSessions {
			s.evictOldestLocked()
		}
		e = s.newEntry(id, now)
		s.sessions[id] = e
		s.totalCreated++
	}
	return e
}

// lookup returns the live entry for id, or nil when the session does
// not exist or has expired. Expired entries are removed.
func (s *Store) lookup(id model.SessionID) *entry {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if s.expired(e, now) {
		delete(s.sessions, id)
		return nil
	}
	return e
}

// evictOldestLocked removes the least recently accessed session.
// Caller holds the index write lock.
func (s *Store) evictOldestLocked() {
	var oldestID model.SessionID
	var oldest int64
	for id, e := range s.sessions {
		at := e.lastAccess.Load()
		if oldestID == "" || at < oldest {
			oldestID = id
			oldest = at
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}

// touch updates the access bookkeeping. Caller holds e.mu.
func (e *entry) touch(now time.Time) {
	e.record.LastActivity = now
	e.accessCount++
	e.lastAccess.Store(now.UnixNano())
}

// appendBounded pushes v and drops the oldest element once the ring
// exceeds limit. Elements are shifted down in place so the backing
// array does not grow without bound.
func appendBounded[T any](ring []T, v T, limit int) []T {
	ring = append(ring, v)
	if len(ring) > limit {
		ring = append(ring[:0], ring[1:]...)
	}
	return ring
}
