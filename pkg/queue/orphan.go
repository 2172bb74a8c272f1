package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/pkg/services"
)

// runOrphanDetection periodically fails processing sessions whose heartbeat
// went stale. Every pod runs this; finalization is idempotent so concurrent
// recovery attempts are harmless.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.opts.OrphanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverStaleOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

func (p *WorkerPool) recoverStaleOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.opts.OrphanThreshold)

	orphans, err := p.client.AlertSession.Query().
		Where(
			alertsession.StatusEQ(alertsession.StatusProcessing),
			alertsession.LastInteractionAtNotNil(),
			alertsession.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned sessions: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Detected orphaned sessions", "count", len(orphans))
	for _, session := range orphans {
		podID := "unknown"
		if session.PodID != nil {
			podID = *session.PodID
		}
		errMsg := fmt.Sprintf("orphaned: no heartbeat from pod %s since %s",
			podID, session.LastInteractionAt.Format(time.RFC3339))
		if err := p.sessions.Finalize(ctx, session.ID,
			alertsession.StatusFailed, "", errMsg); err != nil {
			slog.Error("Failed to recover orphaned session",
				"session_id", session.ID, "error", err)
			continue
		}
		slog.Warn("Orphaned session marked failed", "session_id", session.ID, "old_pod_id", podID)
	}
	return nil
}

// RecoverStartupOrphans fails sessions this pod left processing when it last
// crashed. Called once at startup, before workers begin claiming.
func RecoverStartupOrphans(ctx context.Context, client *ent.Client, sessions *services.SessionService, podID string) error {
	orphans, err := client.AlertSession.Query().
		Where(
			alertsession.StatusEQ(alertsession.StatusProcessing),
			alertsession.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run", "pod_id", podID, "count", len(orphans))
	for _, session := range orphans {
		errMsg := fmt.Sprintf("orphaned: pod %s restarted while session was processing", podID)
		if err := sessions.Finalize(ctx, session.ID,
			alertsession.StatusFailed, "", errMsg); err != nil {
			slog.Error("Failed to recover startup orphan",
				"session_id", session.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "session_id", session.ID)
	}
	return nil
}
