package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

// SessionStore defines the bounded, expiring per-session state store.
// Mutations on one session are serialized by the implementation;
// operations on distinct sessions proceed concurrently.
type SessionStore interface {
	// GetOrCreate lazily creates an active session on first reference
	// and touches last-activity on every access.
	GetOrCreate(ctx context.Context, id model.SessionID) (*model.SessionRecord, error)

	// Context returns the read view consumed by detection: previous
	// category, recent rings and context data.
	Context(ctx context.Context, id model.SessionID) (*model.SessionContext, error)

	AppendMessage(ctx context.Context, id model.SessionID, entry model.MessageEntry) error
	RecordCategory(ctx context.Context, id model.SessionID, category types.CategoryID) error
	RecordAgent(ctx context.Context, id model.SessionID, agent types.AgentType) error
	SetProfile(ctx context.Context, id model.SessionID, profile types.Profile) error

	SetContextData(ctx context.Context, id model.SessionID, key string, value any) error
	GetContextData(ctx context.Context, id model.SessionID, key string) (any, bool, error)

	// MarkEscalated and MarkCompleted are one-way status transitions.
	MarkEscalated(ctx context.Context, id model.SessionID) error
	MarkCompleted(ctx context.Context, id model.SessionID) error

	// Clear removes all state of a session atomically. Returns
	// ErrSessionNotFound when the session does not exist.
	Clear(ctx context.Context, id model.SessionID) error

	// EvictInactive removes every session idle longer than maxIdle and
	// returns the removed count. Triggered by an external scheduler.
	EvictInactive(ctx context.Context, maxIdle time.Duration) (int, error)

	// Export returns the full serializable state of a session; Import
	// reconstructs it by replaying entries through the bounded appends.
	Export(ctx context.Context, id model.SessionID) (*model.SessionExport, error)
	Import(ctx context.Context, id model.SessionID, blob *model.SessionExport) error

	Stats(ctx context.Context) (*model.StoreStats, error)
}
