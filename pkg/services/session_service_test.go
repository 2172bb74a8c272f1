package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/pkg/models"
	"github.com/tarsy-bot/tarsy/test/util"
)

func newTestServices(t *testing.T) (*ent.Client, *Clocks, *SessionService) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	clocks := NewClocks()
	return client, clocks, NewSessionService(client, clocks)
}

func createTestSession(t *testing.T, sessions *SessionService, sessionID string) *ent.AlertSession {
	t.Helper()
	session, err := sessions.CreateSession(context.Background(), models.CreateSessionInput{
		SessionID: sessionID,
		AlertID:   "alert-" + sessionID,
		AlertType: "kubernetes",
		AlertData: map[string]any{"namespace": "prod"},
		ChainID:   "kubernetes-agent-chain",
		ChainDefinition: map[string]any{
			"alert_types": []any{"kubernetes"},
			"stages": []any{
				map[string]any{"name": "analysis", "agent": "KubernetesAgent"},
			},
		},
	})
	require.NoError(t, err)
	return session
}

func TestCreateSession(t *testing.T) {
	_, _, sessions := newTestServices(t)

	session := createTestSession(t, sessions, "s1")
	assert.Equal(t, alertsession.StatusPending, session.Status)
	assert.Positive(t, session.StartedAtUs)
	assert.Equal(t, "prod", session.AlertData["namespace"])

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := sessions.CreateSession(context.Background(), models.CreateSessionInput{
			SessionID: "s1",
			AlertID:   "a",
			AlertType: "kubernetes",
			ChainID:   "kubernetes-agent-chain",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := sessions.CreateSession(context.Background(), models.CreateSessionInput{
			SessionID: "s2",
			ChainID:   "kubernetes-agent-chain",
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})
}

func TestFinalizeIdempotent(t *testing.T) {
	_, clocks, sessions := newTestServices(t)
	ctx := context.Background()

	createTestSession(t, sessions, "s1")

	require.NoError(t, sessions.Finalize(ctx, "s1", alertsession.StatusCompleted, "root cause found", ""))

	got, err := sessions.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusCompleted, got.Status)
	require.NotNil(t, got.FinalAnalysis)
	assert.Equal(t, "root cause found", *got.FinalAnalysis)
	require.NotNil(t, got.CompletedAtUs)
	assert.Greater(t, *got.CompletedAtUs, got.StartedAtUs)

	// A second terminal write is a no-op, not an error.
	require.NoError(t, sessions.Finalize(ctx, "s1", alertsession.StatusFailed, "", "late failure"))
	got, err = sessions.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusCompleted, got.Status)
	assert.Nil(t, got.ErrorMessage)

	// Finalize on an unknown session is also a no-op.
	assert.NoError(t, sessions.Finalize(ctx, "no-such-session", alertsession.StatusFailed, "", "x"))

	// The clock was released with the terminal write.
	fresh := clocks.For("s1")
	assert.NotNil(t, fresh)
}

func TestHeartbeat(t *testing.T) {
	client, _, sessions := newTestServices(t)
	ctx := context.Background()

	createTestSession(t, sessions, "s1")
	require.NoError(t, sessions.Heartbeat(ctx, "s1"))

	got, err := client.AlertSession.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got.LastInteractionAt)
	assert.WithinDuration(t, time.Now(), *got.LastInteractionAt, time.Minute)
}

func TestListSessions(t *testing.T) {
	_, _, sessions := newTestServices(t)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		createTestSession(t, sessions, id)
	}
	require.NoError(t, sessions.Finalize(ctx, "s2", alertsession.StatusFailed, "", "boom"))

	t.Run("newest first", func(t *testing.T) {
		list, total, err := sessions.ListSessions(ctx, models.SessionFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, list, 3)
		assert.Equal(t, "s3", list[0].ID)
		assert.Equal(t, "s1", list[2].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		list, total, err := sessions.ListSessions(ctx, models.SessionFilter{Status: "failed"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, "s2", list[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		list, total, err := sessions.ListSessions(ctx, models.SessionFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, list, 1)
		assert.Equal(t, "s1", list[0].ID)
	})
}

func TestGetSessionDetailTimeline(t *testing.T) {
	client, clocks, sessions := newTestServices(t)
	ctx := context.Background()

	createTestSession(t, sessions, "s1")

	stages := NewStageService(client, clocks)
	_, err := stages.CreateStage(ctx, CreateStageInput{
		ExecutionID:       "exec-1",
		SessionID:         "s1",
		StageID:           "0-analysis",
		StageName:         "analysis",
		Agent:             "KubernetesAgent",
		StageIndex:        0,
		IterationStrategy: "react",
	})
	require.NoError(t, err)
	require.NoError(t, stages.StartStage(ctx, "exec-1", "s1"))

	interactions := NewInteractionService(client, clocks)
	_, err = interactions.RecordLLM(ctx, LLMInteractionRecord{
		SessionID:        "s1",
		StageExecutionID: "exec-1",
		ModelName:        "claude-sonnet-4-5",
		Conversation:     []map[string]any{{"role": "user", "content": "investigate"}},
		Success:          true,
	})
	require.NoError(t, err)
	_, err = interactions.RecordMCP(ctx, MCPInteractionRecord{
		SessionID:        "s1",
		StageExecutionID: "exec-1",
		ServerName:       "kubernetes-server",
		ToolName:         "pods_list",
		ToolResult:       map[string]any{"result": "3 pods"},
		Success:          true,
	})
	require.NoError(t, err)
	_, err = interactions.RecordLLM(ctx, LLMInteractionRecord{
		SessionID:    "s1",
		ModelName:    "claude-sonnet-4-5",
		Success:      false,
		ErrorMessage: "timeout",
	})
	require.NoError(t, err)
	_, err = interactions.RecordLifecycle(ctx, LifecycleRecord{
		SessionID:        "s1",
		StageExecutionID: "exec-1",
		EventType:        "stage.failed",
		StageName:        "analysis",
		Detail:           "timeout",
	})
	require.NoError(t, err)

	detail, err := sessions.GetSessionDetail(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, detail.Stages, 1)
	assert.Equal(t, "analysis", detail.Stages[0].StageName)

	require.Len(t, detail.Timeline, 4)
	assert.Equal(t, "llm", detail.Timeline[0].Type)
	assert.Equal(t, "mcp", detail.Timeline[1].Type)
	assert.Equal(t, "llm", detail.Timeline[2].Type)
	assert.Equal(t, "timeout", detail.Timeline[2].ErrorMessage)
	assert.Equal(t, "lifecycle", detail.Timeline[3].Type)
	assert.Equal(t, "stage.failed", detail.Timeline[3].Details["event_type"])
	assert.Equal(t, "analysis", detail.Timeline[3].Details["stage_name"])
	assert.Equal(t, "timeout", detail.Timeline[3].Details["detail"])
	for i := 1; i < len(detail.Timeline); i++ {
		assert.Greater(t, detail.Timeline[i].TimestampUs, detail.Timeline[i-1].TimestampUs)
	}

	t.Run("unknown session", func(t *testing.T) {
		_, err := sessions.GetSessionDetail(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSetCurrentStage(t *testing.T) {
	_, _, sessions := newTestServices(t)
	ctx := context.Background()

	createTestSession(t, sessions, "s1")
	require.NoError(t, sessions.SetCurrentStage(ctx, "s1", 2, "exec-3"))

	got, err := sessions.GetSession(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got.CurrentStageIndex)
	assert.Equal(t, 2, *got.CurrentStageIndex)
	require.NotNil(t, got.CurrentStageID)
	assert.Equal(t, "exec-3", *got.CurrentStageID)
}

func TestCreateFailedSession(t *testing.T) {
	_, _, sessions := newTestServices(t)
	ctx := context.Background()

	session, err := sessions.CreateFailedSession(ctx, models.CreateSessionInput{
		SessionID: "s1",
		AlertID:   "alert-s1",
		AlertType: "DiskPressure",
		AlertData: map[string]any{"node": "worker-3"},
	}, `no chain handles alert type "DiskPressure" (known types: kubernetes)`)
	require.NoError(t, err)

	assert.Equal(t, alertsession.StatusFailed, session.Status)
	require.NotNil(t, session.CompletedAtUs)
	require.NotNil(t, session.ErrorMessage)
	assert.Contains(t, *session.ErrorMessage, "known types")

	// Terminal from the start: the claim query never sees it.
	list, total, err := sessions.ListSessions(ctx, models.SessionFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestCleanup(t *testing.T) {
	client, _, sessions := newTestServices(t)
	ctx := context.Background()

	createTestSession(t, sessions, "old")
	createTestSession(t, sessions, "recent")
	createTestSession(t, sessions, "running")

	require.NoError(t, sessions.Finalize(ctx, "old", alertsession.StatusCompleted, "done", ""))
	require.NoError(t, sessions.Finalize(ctx, "recent", alertsession.StatusCompleted, "done", ""))

	// Age the first session past the retention horizon.
	oldUs := time.Now().AddDate(0, 0, -10).UnixMicro()
	_, err := client.AlertSession.UpdateOneID("old").SetCompletedAtUs(oldUs).Save(ctx)
	require.NoError(t, err)

	n, err := sessions.Cleanup(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = sessions.GetSession(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = sessions.GetSession(ctx, "recent")
	assert.NoError(t, err)
	_, err = sessions.GetSession(ctx, "running")
	assert.NoError(t, err)
}
