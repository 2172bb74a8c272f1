package hooks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedBroadcast struct {
	sessionID string
	payload   map[string]any
}

type fakeBroadcaster struct {
	sent []capturedBroadcast
}

func (f *fakeBroadcaster) BroadcastToSession(sessionID string, payload map[string]any) {
	f.sent = append(f.sent, capturedBroadcast{sessionID: sessionID, payload: payload})
}

func TestDashboardSubscriberTrimsInteractionPayloads(t *testing.T) {
	b := &fakeBroadcaster{}
	sub := NewDashboardSubscriber(b)

	sub.OnLLMInteraction(context.Background(), LLMInteractionEvent{
		SessionID:    "s1",
		ModelName:    "claude-sonnet-4-5",
		Conversation: []map[string]any{{"role": "user", "content": "huge prompt"}},
		Duration:     1500 * time.Millisecond,
		Success:      true,
	})

	require.Len(t, b.sent, 1)
	assert.Equal(t, "s1", b.sent[0].sessionID)
	payload := b.sent[0].payload
	assert.Equal(t, "llm_interaction", payload["type"])
	assert.Equal(t, int64(1500), payload["duration_ms"])
	// Full conversations stay in the audit store.
	assert.NotContains(t, payload, "conversation")
}

func TestDashboardSubscriberLifecyclePayload(t *testing.T) {
	b := &fakeBroadcaster{}
	sub := NewDashboardSubscriber(b)

	sub.OnSessionLifecycle(context.Background(), SessionLifecycleEvent{
		SessionID:       "s1",
		Type:            LifecycleStageStarted,
		ChainID:         "kubernetes-agent-chain",
		StageName:       "analysis",
		StageIndex:      2,
		TotalStages:     3,
		CompletedStages: 2,
	})

	require.Len(t, b.sent, 1)
	payload := b.sent[0].payload
	assert.Equal(t, "stage.started", payload["type"])
	assert.Equal(t, "kubernetes-agent-chain", payload["chain_id"])
	assert.Equal(t, "analysis", payload["stage_name"])
	assert.Equal(t, 2, payload["stage_index"])
	assert.Equal(t, 3, payload["total_stages"])
	assert.Equal(t, 2, payload["completed_stages"])
}

func TestDashboardSubscriberMCPPayload(t *testing.T) {
	b := &fakeBroadcaster{}
	sub := NewDashboardSubscriber(b)

	sub.OnMCPInteraction(context.Background(), MCPInteractionEvent{
		SessionID:         "s1",
		ServerName:        "kubernetes-server",
		ToolName:          "pods_list",
		CommunicationType: "tool_call",
		Success:           true,
	})

	require.Len(t, b.sent, 1)
	payload := b.sent[0].payload
	assert.Equal(t, "mcp_interaction", payload["type"])
	assert.Equal(t, "pods_list", payload["tool_name"])
	assert.NotContains(t, payload, "tool_result")
}
