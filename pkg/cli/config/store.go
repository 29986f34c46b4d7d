package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/briareos/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

// SessionStore is the session store configuration
type SessionStore struct {
	maxSessions  int
	ttl          time.Duration
	historyLimit int
}

func (x *SessionStore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "max-sessions",
			Usage:       "Maximum number of live sessions before LRU eviction",
			Value:       memory.DefaultMaxSessions,
			Category:    "Session store",
			Sources:     cli.EnvVars("BRIAREOS_MAX_SESSIONS"),
			Destination: &x.maxSessions,
		},
		&cli.DurationFlag{
			Name:        "session-ttl",
			Usage:       "Idle duration after which a session expires",
			Value:       memory.DefaultTTL,
			Category:    "Session store",
			Sources:     cli.EnvVars("BRIAREOS_SESSION_TTL"),
			Destination: &x.ttl,
		},
		&cli.IntFlag{
			Name:        "history-limit",
			Usage:       "Maximum message history kept per session",
			Value:       50,
			Category:    "Session store",
			Sources:     cli.EnvVars("BRIAREOS_HISTORY_LIMIT"),
			Destination: &x.historyLimit,
		},
	}
}

// Configure builds the session store from the flags
func (x *SessionStore) Configure() *memory.Store {
	return memory.New(
		memory.WithMaxSessions(x.maxSessions),
		memory.WithTTL(x.ttl),
		memory.WithHistoryLimit(x.historyLimit),
	)
}

// TTL returns the configured session TTL, used as the sweep idle bound
func (x *SessionStore) TTL() time.Duration {
	return x.ttl
}

// LogValue renders the config for startup logging
func (x SessionStore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("max_sessions", x.maxSessions),
		slog.Duration("ttl", x.ttl),
		slog.Int("history_limit", x.historyLimit),
	)
}
