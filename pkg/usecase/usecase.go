package usecase

import (
	"time"

	"github.com/secmon-lab/briareos/pkg/domain/interfaces"
	"github.com/secmon-lab/briareos/pkg/service/detect"
)

// DefaultMaxIdle is the idle age beyond which Sweep evicts a session
const DefaultMaxIdle = time.Hour

type UseCases struct {
	store   interfaces.SessionStore
	engine  *detect.Engine
	maxIdle time.Duration
}

type Option func(*UseCases)

// WithMaxIdle sets the idle age used by Sweep
func WithMaxIdle(d time.Duration) Option {
	return func(uc *UseCases) {
		if d > 0 {
			uc.maxIdle = d
		}
	}
}

func New(store interfaces.SessionStore, engine *detect.Engine, opts ...Option) *UseCases {
	uc := &UseCases{
		store:   store,
		engine:  engine,
		maxIdle: DefaultMaxIdle,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Engine exposes the classification engine for read-only catalog queries
func (uc *UseCases) Engine() *detect.Engine {
	return uc.engine
}
