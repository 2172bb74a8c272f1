package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/services"
)

// SessionRegistry is the slice of WorkerPool a Worker needs for cancel
// registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// Worker polls for pending sessions, claims them, and hands them to the
// executor. One session at a time per worker.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	sessions *services.SessionService
	bus      *hooks.Bus
	opts     Options
	executor SessionExecutor
	pool     SessionRegistry

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorker creates a worker.
func NewWorker(id, podID string, client *ent.Client, sessions *services.SessionService, bus *hooks.Bus, opts Options, executor SessionExecutor, pool SessionRegistry) *Worker {
	return &Worker{
		id:       id,
		podID:    podID,
		client:   client,
		sessions: sessions,
		bus:      bus,
		opts:     opts,
		executor: executor,
		pool:     pool,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker and waits for its current session to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Session processing error", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next pending session and runs it to a terminal
// state. Terminal writes use a background context so a cancelled or expired
// session context can never lose the final record.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	session, err := w.claimNextSession(ctx)
	if err != nil {
		return err
	}

	log := slog.With("session_id", session.ID, "worker_id", w.id)
	log.Info("Session claimed")
	w.bus.PublishSessionLifecycle(hooks.SessionLifecycleEvent{
		SessionID: session.ID,
		Type:      hooks.LifecycleSessionStarted,
		ChainID:   session.ChainID,
	})

	sessionCtx, cancelSession := context.WithCancel(ctx)
	defer cancelSession()

	w.pool.RegisterSession(session.ID, cancelSession)
	defer w.pool.UnregisterSession(session.ID)

	heartbeatCtx, stopHeartbeat := context.WithCancel(context.Background())
	defer stopHeartbeat()
	go w.runHeartbeat(heartbeatCtx, session.ID)

	result := w.executor.Execute(sessionCtx, session)
	if result == nil {
		result = &ExecutionResult{
			Status:       alertsession.StatusFailed,
			ErrorMessage: "executor returned no result",
		}
	}
	stopHeartbeat()

	// Audit writes for this session must land before finalization releases
	// the session clock.
	w.bus.Flush()

	if err := w.sessions.Finalize(context.Background(), session.ID,
		result.Status, result.FinalAnalysis, result.ErrorMessage); err != nil {
		log.Error("Failed to finalize session", "error", err)
		return err
	}
	w.bus.PublishSessionLifecycle(hooks.SessionLifecycleEvent{
		SessionID:       session.ID,
		Type:            lifecycleForResult(result),
		ChainID:         session.ChainID,
		TotalStages:     result.TotalStages,
		CompletedStages: result.CompletedStages,
		Detail:          result.ErrorMessage,
	})

	log.Info("Session processing complete", "status", result.Status)
	return nil
}

// claimNextSession atomically claims the oldest pending session using
// FOR UPDATE SKIP LOCKED, so concurrent workers never double-claim.
func (w *Worker) claimNextSession(ctx context.Context) (*ent.AlertSession, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	session, err := tx.AlertSession.Query().
		Where(alertsession.StatusEQ(alertsession.StatusPending)).
		Order(ent.Asc(alertsession.FieldStartedAtUs)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoSessionsAvailable
		}
		return nil, fmt.Errorf("failed to query pending sessions: %w", err)
	}

	session, err = session.Update().
		SetStatus(alertsession.StatusProcessing).
		SetPodID(w.podID).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return session, nil
}

// runHeartbeat refreshes last_interaction_at so orphan detection on other
// pods leaves this session alone.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(w.opts.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.sessions.Heartbeat(ctx, sessionID); err != nil {
				slog.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

func lifecycleForResult(result *ExecutionResult) hooks.LifecycleType {
	switch {
	case result.Cancelled:
		return hooks.LifecycleCancelled
	case result.Status == alertsession.StatusCompleted:
		return hooks.LifecycleCompleted
	case result.Status == alertsession.StatusPartial:
		return hooks.LifecyclePartial
	default:
		return hooks.LifecycleFailed
	}
}

// pollInterval returns the poll duration with jitter, spreading concurrent
// workers' queries apart.
func (w *Worker) pollInterval() time.Duration {
	base, jitter := w.opts.PollInterval, w.opts.PollJitter
	if jitter <= 0 {
		return base
	}
	return base - jitter + time.Duration(rand.Int64N(int64(2*jitter)))
}
