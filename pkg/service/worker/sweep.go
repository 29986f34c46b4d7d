package worker

import (
	"context"
	"time"

	"github.com/secmon-lab/briareos/pkg/domain/interfaces"
	"github.com/secmon-lab/briareos/pkg/utils/logging"
)

// SweepWorker periodically evicts idle sessions from the store
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type SweepWorker struct {
	store    interfaces.SessionStore
	interval time.Duration
	maxIdle  time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewSweepWorker creates a worker that runs a sweep every interval,
// removing sessions idle longer than maxIdle.
func NewSweepWorker(store interfaces.SessionStore, interval, maxIdle time.Duration) *SweepWorker {
	return &SweepWorker{
		store:    store,
		interval: interval,
		maxIdle:  maxIdle,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop. Does not block server startup.
func (w *SweepWorker) Start(ctx context.Context) error {
	logging.Default().Info("session sweep worker starting",
		"interval", w.interval.String(),
		"max_idle", w.maxIdle.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *SweepWorker) Stop() {
	logging.Default().Info("session sweep worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("session sweep worker stopped")
}

func (w *SweepWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("session sweep failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("session sweep worker context cancelled")
			return
		}
	}
}

func (w *SweepWorker) sweep(ctx context.Context) error {
	startTime := time.Now()

	removed, err := w.store.EvictInactive(ctx, w.maxIdle)
	if err != nil {
		return err
	}

	if removed > 0 {
		logging.Default().Info("session sweep completed",
			"removed", removed,
			"duration", time.Since(startTime).String())
	}
	return nil
}
