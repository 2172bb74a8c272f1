package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
)

func markProcessing(t *testing.T, client *ent.Client, sessionID, podID string, lastInteraction time.Time) {
	t.Helper()
	_, err := client.AlertSession.UpdateOneID(sessionID).
		SetStatus(alertsession.StatusProcessing).
		SetPodID(podID).
		SetLastInteractionAt(lastInteraction).
		Save(context.Background())
	require.NoError(t, err)
}

func TestRecoverStartupOrphans(t *testing.T) {
	env := newPoolEnv(t)
	ctx := context.Background()

	env.createPending(t, "mine")
	env.createPending(t, "theirs")
	env.createPending(t, "untouched")
	markProcessing(t, env.client, "mine", "pod-a", time.Now())
	markProcessing(t, env.client, "theirs", "pod-b", time.Now())

	require.NoError(t, RecoverStartupOrphans(ctx, env.client, env.sessions, "pod-a"))

	got, err := env.client.AlertSession.Get(ctx, "mine")
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "orphaned: pod pod-a restarted")

	// Sessions owned by other pods and pending sessions are left alone.
	got, err = env.client.AlertSession.Get(ctx, "theirs")
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusProcessing, got.Status)

	got, err = env.client.AlertSession.Get(ctx, "untouched")
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusPending, got.Status)

	// A second run finds nothing to recover.
	require.NoError(t, RecoverStartupOrphans(ctx, env.client, env.sessions, "pod-a"))
}

func TestRecoverStaleOrphans(t *testing.T) {
	env := newPoolEnv(t)
	ctx := context.Background()

	env.createPending(t, "stale")
	env.createPending(t, "healthy")
	markProcessing(t, env.client, "stale", "pod-dead", time.Now().Add(-time.Hour))
	markProcessing(t, env.client, "healthy", "pod-live", time.Now())

	opts := Options{WorkerCount: 1, OrphanThreshold: 10 * time.Minute}
	pool := NewWorkerPool("test-pod", env.client, env.sessions, env.bus, opts, &fakeExecutor{})

	require.NoError(t, pool.recoverStaleOrphans(ctx))

	got, err := env.client.AlertSession.Get(ctx, "stale")
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "orphaned: no heartbeat from pod pod-dead")

	// A session with a fresh heartbeat keeps processing.
	got, err = env.client.AlertSession.Get(ctx, "healthy")
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusProcessing, got.Status)
}
