package hooks

import (
	"context"
	"time"
)

// SessionBroadcaster pushes a payload to dashboard clients watching a
// session. Implemented by events.ConnectionManager.
type SessionBroadcaster interface {
	BroadcastToSession(sessionID string, payload map[string]any)
}

// DashboardSubscriber forwards pipeline events to the WebSocket layer as
// compact progress summaries. Interaction payloads are trimmed: the full
// conversation and tool results live in the audit store, the dashboard only
// needs to show that work is happening.
type DashboardSubscriber struct {
	broadcaster SessionBroadcaster
}

// NewDashboardSubscriber creates the dashboard subscriber.
func NewDashboardSubscriber(b SessionBroadcaster) *DashboardSubscriber {
	return &DashboardSubscriber{broadcaster: b}
}

// Name implements Subscriber.
func (d *DashboardSubscriber) Name() string { return "dashboard" }

// OnLLMInteraction implements Subscriber.
func (d *DashboardSubscriber) OnLLMInteraction(_ context.Context, event LLMInteractionEvent) {
	d.broadcaster.BroadcastToSession(event.SessionID, map[string]any{
		"type":               "llm_interaction",
		"session_id":         event.SessionID,
		"stage_execution_id": event.StageExecutionID,
		"model_name":         event.ModelName,
		"duration_ms":        event.Duration.Milliseconds(),
		"success":            event.Success,
		"timestamp":          time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// OnMCPInteraction implements Subscriber.
func (d *DashboardSubscriber) OnMCPInteraction(_ context.Context, event MCPInteractionEvent) {
	d.broadcaster.BroadcastToSession(event.SessionID, map[string]any{
		"type":               "mcp_interaction",
		"session_id":         event.SessionID,
		"stage_execution_id": event.StageExecutionID,
		"server_name":        event.ServerName,
		"tool_name":          event.ToolName,
		"communication_type": event.CommunicationType,
		"duration_ms":        event.Duration.Milliseconds(),
		"success":            event.Success,
		"timestamp":          time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// OnSessionLifecycle implements Subscriber.
func (d *DashboardSubscriber) OnSessionLifecycle(_ context.Context, event SessionLifecycleEvent) {
	d.broadcaster.BroadcastToSession(event.SessionID, map[string]any{
		"type":             string(event.Type),
		"session_id":       event.SessionID,
		"chain_id":         event.ChainID,
		"stage_name":       event.StageName,
		"stage_index":      event.StageIndex,
		"total_stages":     event.TotalStages,
		"completed_stages": event.CompletedStages,
		"detail":           event.Detail,
		"timestamp":        time.Now().UTC().Format(time.RFC3339Nano),
	})
}
