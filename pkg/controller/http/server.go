package http

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/briareos/pkg/usecase"
	"github.com/secmon-lab/briareos/pkg/utils/async"
	"github.com/secmon-lab/briareos/pkg/utils/logging"
)

// DefaultAutoSweepEvery is how many classify requests pass between
// opportunistic background sweeps. Zero disables auto-sweep.
const DefaultAutoSweepEvery = 100

type Server struct {
	router         *chi.Mux
	uc             *usecase.UseCases
	autoSweepEvery uint64
	requestCount   atomic.Uint64
}

type Options func(*Server)

// WithAutoSweepEvery sets the classify-request interval between
// background sweeps. n <= 0 disables auto-sweep.
func WithAutoSweepEvery(n int) Options {
	return func(s *Server) {
		if n <= 0 {
			s.autoSweepEvery = 0
		} else {
			s.autoSweepEvery = uint64(n)
		}
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:         r,
		uc:             uc,
		autoSweepEvery: DefaultAutoSweepEvery,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/classify", s.handleClassify)

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Post("/clear", s.handleClearSession)
			r.Get("/export", s.handleExportSession)
			r.Post("/import", s.handleImportSession)
		})

		r.Get("/stats", s.handleStats)
		r.Get("/categories", s.handleCategories)
		r.Get("/agents", s.handleAgents)
		r.Post("/sweep", s.handleSweep)
		r.Get("/health", s.handleHealth)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// maybeSweep triggers a background sweep every autoSweepEvery classify
// requests. The sweep runs detached so the triggering request does not
// pay for it.
func (s *Server) maybeSweep(ctx context.Context) {
	if s.autoSweepEvery == 0 {
		return
	}
	if s.requestCount.Add(1)%s.autoSweepEvery != 0 {
		return
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		removed, err := s.uc.Sweep(ctx)
		if err != nil {
			return err
		}
		if removed > 0 {
			logging.From(ctx).Info("auto-sweep removed idle sessions", "removed", removed)
		}
		return nil
	})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
