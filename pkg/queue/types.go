// Package queue turns pending alert sessions into processed ones: a worker
// pool claims sessions from the database, the chain executor runs them
// through their agent chains, and orphan detection reclaims sessions whose
// worker died.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/pkg/config"
)

// Claim loop sentinels. Both mean "nothing to do right now, poll again".
var (
	ErrNoSessionsAvailable = errors.New("no pending sessions available")
	ErrAtCapacity          = errors.New("at max concurrent sessions")
)

// ExecutionResult is the terminal outcome of one session execution.
type ExecutionResult struct {
	Status        alertsession.Status
	FinalAnalysis string
	ErrorMessage  string

	// Chain progress at termination, for the final lifecycle event.
	TotalStages     int
	CompletedStages int

	// Cancelled distinguishes an operator cancellation from an ordinary
	// failure for lifecycle reporting; the session status is failed either way.
	Cancelled bool
}

// SessionExecutor runs one claimed session through its chain.
type SessionExecutor interface {
	Execute(ctx context.Context, session *ent.AlertSession) *ExecutionResult
}

// Options configures the worker pool timing.
type Options struct {
	WorkerCount       int
	PollInterval      time.Duration
	PollJitter        time.Duration
	HeartbeatInterval time.Duration
	OrphanThreshold   time.Duration
	OrphanInterval    time.Duration
}

// DefaultOptions derives pool options from the runtime settings.
func DefaultOptions(settings *config.Settings) Options {
	return Options{
		WorkerCount:       settings.MaxConcurrentAlerts,
		PollInterval:      config.DefaultPollInterval,
		PollJitter:        config.DefaultPollJitter,
		HeartbeatInterval: 30 * time.Second,
		OrphanThreshold:   config.DefaultOrphanThreshold,
		OrphanInterval:    config.DefaultOrphanInterval,
	}
}
