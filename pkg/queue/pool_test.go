package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/models"
	"github.com/tarsy-bot/tarsy/pkg/services"
	"github.com/tarsy-bot/tarsy/test/util"
)

// fakeExecutor records claim order and returns scripted results.
type fakeExecutor struct {
	mu        sync.Mutex
	order     []string
	results   map[string]*ExecutionResult
	returnNil bool
	block     chan struct{} // when non-nil, Execute waits for release or cancellation
}

func (f *fakeExecutor) Execute(ctx context.Context, session *ent.AlertSession) *ExecutionResult {
	f.mu.Lock()
	f.order = append(f.order, session.ID)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-ctx.Done():
			return &ExecutionResult{
				Status:       alertsession.StatusFailed,
				ErrorMessage: "cancelled",
				Cancelled:    true,
			}
		case <-f.block:
		}
	}
	if f.returnNil {
		return nil
	}
	if r, ok := f.results[session.ID]; ok {
		return r
	}
	return &ExecutionResult{Status: alertsession.StatusCompleted, FinalAnalysis: "ok"}
}

func (f *fakeExecutor) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.order...)
}

type poolEnv struct {
	client   *ent.Client
	sessions *services.SessionService
	bus      *hooks.Bus
}

func newPoolEnv(t *testing.T) *poolEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	bus := hooks.NewBus()
	t.Cleanup(bus.Close)
	return &poolEnv{
		client:   client,
		sessions: services.NewSessionService(client, services.NewClocks()),
		bus:      bus,
	}
}

func (e *poolEnv) createPending(t *testing.T, id string) {
	t.Helper()
	_, err := e.sessions.CreateSession(context.Background(), models.CreateSessionInput{
		SessionID: id,
		AlertID:   "alert-" + id,
		AlertType: "kubernetes",
		ChainID:   "test-chain",
		ChainDefinition: map[string]any{
			"stages": []any{map[string]any{"name": "triage", "agent": "TriageAgent"}},
		},
	})
	require.NoError(t, err)
}

func (e *poolEnv) startPool(t *testing.T, executor SessionExecutor) *WorkerPool {
	t.Helper()
	opts := Options{
		WorkerCount:       1,
		PollInterval:      20 * time.Millisecond,
		HeartbeatInterval: time.Minute,
		OrphanThreshold:   time.Hour,
		OrphanInterval:    time.Hour,
	}
	pool := NewWorkerPool("test-pod", e.client, e.sessions, e.bus, opts, executor)
	pool.Start(context.Background())
	t.Cleanup(pool.Stop)
	return pool
}

func (e *poolEnv) waitForStatus(t *testing.T, sessionID string, want alertsession.Status) *ent.AlertSession {
	t.Helper()
	var got *ent.AlertSession
	require.Eventually(t, func() bool {
		session, err := e.client.AlertSession.Get(context.Background(), sessionID)
		if err != nil {
			return false
		}
		got = session
		return session.Status == want
	}, 5*time.Second, 10*time.Millisecond, "session %s never reached %s", sessionID, want)
	return got
}

func TestWorkerPoolProcessesOldestFirst(t *testing.T) {
	env := newPoolEnv(t)
	recorder := &lifecycleRecorder{}
	env.bus.Subscribe(recorder)

	for _, id := range []string{"s1", "s2", "s3"} {
		env.createPending(t, id)
	}

	executor := &fakeExecutor{}
	env.startPool(t, executor)

	for _, id := range []string{"s1", "s2", "s3"} {
		got := env.waitForStatus(t, id, alertsession.StatusCompleted)
		require.NotNil(t, got.FinalAnalysis)
		assert.Equal(t, "ok", *got.FinalAnalysis)
		require.NotNil(t, got.PodID)
		assert.Equal(t, "test-pod", *got.PodID)
	}

	// One worker drains the queue strictly oldest-first.
	assert.Equal(t, []string{"s1", "s2", "s3"}, executor.seen())

	env.bus.Flush()
	assert.Len(t, recorder.byType(hooks.LifecycleSessionStarted), 3)
	assert.Len(t, recorder.byType(hooks.LifecycleCompleted), 3)
}

func TestWorkerPoolRecordsFailedResult(t *testing.T) {
	env := newPoolEnv(t)
	recorder := &lifecycleRecorder{}
	env.bus.Subscribe(recorder)

	env.createPending(t, "s1")
	env.startPool(t, &fakeExecutor{results: map[string]*ExecutionResult{
		"s1": {Status: alertsession.StatusFailed, ErrorMessage: "all stages failed"},
	}})

	got := env.waitForStatus(t, "s1", alertsession.StatusFailed)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "all stages failed", *got.ErrorMessage)

	env.bus.Flush()
	failed := recorder.byType(hooks.LifecycleFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, "all stages failed", failed[0].Detail)
}

func TestWorkerPoolToleratesNilResult(t *testing.T) {
	env := newPoolEnv(t)
	env.createPending(t, "s1")
	env.startPool(t, &fakeExecutor{returnNil: true})

	got := env.waitForStatus(t, "s1", alertsession.StatusFailed)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "executor returned no result", *got.ErrorMessage)
}

func TestCancelSession(t *testing.T) {
	env := newPoolEnv(t)
	recorder := &lifecycleRecorder{}
	env.bus.Subscribe(recorder)

	env.createPending(t, "s1")
	executor := &fakeExecutor{block: make(chan struct{})}
	pool := env.startPool(t, executor)

	// The cancel function registers once the worker claims the session.
	require.Eventually(t, func() bool {
		return pool.CancelSession("s1")
	}, 5*time.Second, 10*time.Millisecond)

	got := env.waitForStatus(t, "s1", alertsession.StatusFailed)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "cancelled", *got.ErrorMessage)

	env.bus.Flush()
	assert.Len(t, recorder.byType(hooks.LifecycleCancelled), 1)

	// The cancel registration is dropped once processing ends.
	require.Eventually(t, func() bool {
		return !pool.CancelSession("s1")
	}, 5*time.Second, 10*time.Millisecond)
	assert.False(t, pool.CancelSession("no-such-session"))
}
