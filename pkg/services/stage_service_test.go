package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/ent/stageexecution"
)

func TestStageLifecycle(t *testing.T) {
	client, clocks, sessions := newTestServices(t)
	stages := NewStageService(client, clocks)
	ctx := context.Background()

	createTestSession(t, sessions, "s1")

	stage, err := stages.CreateStage(ctx, CreateStageInput{
		ExecutionID:       "exec-1",
		SessionID:         "s1",
		StageID:           "0-analysis",
		StageName:         "analysis",
		Agent:             "KubernetesAgent",
		StageIndex:        0,
		IterationStrategy: "react",
	})
	require.NoError(t, err)
	assert.Equal(t, stageexecution.StatusPending, stage.Status)
	assert.Nil(t, stage.StartedAtUs)

	require.NoError(t, stages.StartStage(ctx, "exec-1", "s1"))

	require.NoError(t, stages.CompleteStage(ctx, "exec-1", "s1", map[string]any{
		"status":     "completed",
		"iterations": 3,
	}))

	got, err := client.StageExecution.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, stageexecution.StatusCompleted, got.Status)
	require.NotNil(t, got.StartedAtUs)
	require.NotNil(t, got.CompletedAtUs)
	assert.Greater(t, *got.CompletedAtUs, *got.StartedAtUs)
	require.NotNil(t, got.DurationMs)
	assert.Equal(t, "completed", got.StageOutput["status"])
	assert.Nil(t, got.ErrorMessage)
}

func TestFailStage(t *testing.T) {
	client, clocks, sessions := newTestServices(t)
	stages := NewStageService(client, clocks)
	ctx := context.Background()

	createTestSession(t, sessions, "s1")

	_, err := stages.CreateStage(ctx, CreateStageInput{
		ExecutionID: "exec-1",
		SessionID:   "s1",
		StageID:     "0-analysis",
		StageName:   "analysis",
		Agent:       "KubernetesAgent",
	})
	require.NoError(t, err)
	require.NoError(t, stages.StartStage(ctx, "exec-1", "s1"))
	require.NoError(t, stages.FailStage(ctx, "exec-1", "s1", "cancelled"))

	got, err := client.StageExecution.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, stageexecution.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "cancelled", *got.ErrorMessage)
	// Output and error are mutually exclusive.
	assert.Empty(t, got.StageOutput)

	// Finishing an already-terminal stage is a no-op.
	require.NoError(t, stages.CompleteStage(ctx, "exec-1", "s1", map[string]any{"status": "completed"}))
	got, err = client.StageExecution.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, stageexecution.StatusFailed, got.Status)
}

func TestStageValidation(t *testing.T) {
	client, clocks, _ := newTestServices(t)
	stages := NewStageService(client, clocks)
	ctx := context.Background()

	_, err := stages.CreateStage(ctx, CreateStageInput{SessionID: "s1"})
	var validErr *ValidationError
	assert.ErrorAs(t, err, &validErr)

	assert.ErrorIs(t, stages.StartStage(ctx, "no-such-exec", "s1"), ErrNotFound)
	assert.ErrorIs(t, stages.FailStage(ctx, "no-such-exec", "s1", "x"), ErrNotFound)
}

func TestListStagesOrder(t *testing.T) {
	client, clocks, sessions := newTestServices(t)
	stages := NewStageService(client, clocks)
	ctx := context.Background()

	createTestSession(t, sessions, "s1")

	for i, name := range []string{"collect", "enrich", "analyze"} {
		_, err := stages.CreateStage(ctx, CreateStageInput{
			ExecutionID: name + "-exec",
			SessionID:   "s1",
			StageID:     name,
			StageName:   name,
			Agent:       "KubernetesAgent",
			StageIndex:  i,
		})
		require.NoError(t, err)
	}

	list, err := stages.ListStages(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "collect", list[0].StageName)
	assert.Equal(t, "analyze", list[2].StageName)
}
