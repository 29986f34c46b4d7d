package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareos/pkg/repository/memory"
	"github.com/secmon-lab/briareos/pkg/service/worker"
)

func TestSweepWorker(t *testing.T) {
	ctx := context.Background()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := memory.New(memory.WithClock(func() time.Time { return current }))

	_, err := store.GetOrCreate(ctx, "stale")
	gt.NoError(t, err)
	current = current.Add(30 * time.Minute)
	_, err = store.GetOrCreate(ctx, "fresh")
	gt.NoError(t, err)
	current = current.Add(time.Minute)

	w := worker.NewSweepWorker(store, 10*time.Millisecond, 15*time.Minute)
	gt.NoError(t, w.Start(ctx))

	// Give the worker a few ticks to run
	time.Sleep(50 * time.Millisecond)
	w.Stop()

	stats, err := store.Stats(ctx)
	gt.NoError(t, err)
	gt.Value(t, stats.TotalSessions).Equal(1)
}

func TestSweepWorkerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	store := memory.New()
	w := worker.NewSweepWorker(store, 10*time.Millisecond, time.Hour)
	gt.NoError(t, w.Start(ctx))

	cancel()
	time.Sleep(20 * time.Millisecond)

	// Stop must not hang after the context already ended the loop
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
