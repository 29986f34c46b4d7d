package async

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareos/pkg/utils/logging"
)

// Dispatch runs handler in a detached goroutine. The handler receives a
// fresh background context carrying the caller's logger, so it survives
// cancellation of the originating request. Errors and panics are logged,
// never propagated.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := context.Background()
	if logger := logging.From(ctx); logger != nil {
		bgCtx = logging.With(bgCtx, logger)
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("background task panicked", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("background task failed", "error", goerr.Unwrap(err))
		}
	}()
}
