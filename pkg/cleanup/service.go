// Package cleanup enforces the history retention policy in the background.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/tarsy-bot/tarsy/pkg/services"
)

// DefaultInterval is how often retention runs.
const DefaultInterval = 6 * time.Hour

// Service periodically deletes finished sessions older than the retention
// horizon. Deletes are idempotent and safe to run from multiple pods.
type Service struct {
	sessions      *services.SessionService
	retentionDays int
	interval      time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service. A non-positive interval falls back to
// DefaultInterval.
func NewService(sessions *services.SessionService, retentionDays int, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		sessions:      sessions,
		retentionDays: retentionDays,
		interval:      interval,
	}
}

// Start launches the background retention loop. Runs once immediately.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"retention_days", s.retentionDays, "interval", s.interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Service) runOnce(ctx context.Context) {
	n, err := s.sessions.Cleanup(ctx, s.retentionDays)
	if err != nil {
		slog.Error("Session retention cleanup failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Expired sessions deleted", "count", n)
	}
}
