package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/repository/memory"
)

// ClearSession removes all state of a session
func (uc *UseCases) ClearSession(ctx context.Context, id model.SessionID) error {
	if err := uc.store.Clear(ctx, id); err != nil {
		if errors.Is(err, memory.ErrSessionNotFound) {
			return goerr.Wrap(ErrSessionNotFound, "cannot clear session", goerr.V(SessionIDKey, id))
		}
		return goerr.Wrap(err, "failed to clear session", goerr.V(SessionIDKey, id))
	}
	return nil
}

// ExportSession returns the full serializable state of a session
func (uc *UseCases) ExportSession(ctx context.Context, id model.SessionID) (*model.SessionExport, error) {
	blob, err := uc.store.Export(ctx, id)
	if err != nil {
		if errors.Is(err, memory.ErrSessionNotFound) {
			return nil, goerr.Wrap(ErrSessionNotFound, "cannot export session", goerr.V(SessionIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to export session", goerr.V(SessionIDKey, id))
	}
	return blob, nil
}

// ImportSession reconstructs a session from an export blob. The blob is
// validated before any store mutation.
func (uc *UseCases) ImportSession(ctx context.Context, id model.SessionID, blob *model.SessionExport) error {
	if err := uc.store.Import(ctx, id, blob); err != nil {
		return goerr.Wrap(err, "failed to import session", goerr.V(SessionIDKey, id))
	}
	return nil
}

// Stats returns the aggregate view of the session store
func (uc *UseCases) Stats(ctx context.Context) (*model.StoreStats, error) {
	stats, err := uc.store.Stats(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to collect store stats")
	}
	return stats, nil
}

// Sweep evicts sessions idle longer than the configured maximum and
// returns the removed count.
func (uc *UseCases) Sweep(ctx context.Context) (int, error) {
	removed, err := uc.store.EvictInactive(ctx, uc.maxIdle)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to sweep sessions")
	}
	return removed, nil
}
