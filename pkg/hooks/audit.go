package hooks

import (
	"context"
	"log/slog"

	"github.com/tarsy-bot/tarsy/pkg/services"
)

// AuditSubscriber persists interaction events through the audit store. The
// bus delivers events to it sequentially, which serializes writes per
// session and keeps the monotonic timestamps in publish order.
type AuditSubscriber struct {
	interactions *services.InteractionService
	logger       *slog.Logger
}

// NewAuditSubscriber creates the audit subscriber.
func NewAuditSubscriber(interactions *services.InteractionService) *AuditSubscriber {
	return &AuditSubscriber{
		interactions: interactions,
		logger:       slog.With("component", "audit_subscriber"),
	}
}

// Name implements Subscriber.
func (a *AuditSubscriber) Name() string { return "audit" }

// OnLLMInteraction appends the LLM audit record. A write failure is logged
// and swallowed: audit loss must never fail the pipeline.
func (a *AuditSubscriber) OnLLMInteraction(ctx context.Context, event LLMInteractionEvent) {
	_, err := a.interactions.RecordLLM(ctx, services.LLMInteractionRecord{
		SessionID:        event.SessionID,
		StageExecutionID: event.StageExecutionID,
		ModelName:        event.ModelName,
		Conversation:     event.Conversation,
		Duration:         event.Duration,
		Success:          event.Success,
		ErrorMessage:     event.ErrorMessage,
	})
	if err != nil {
		a.logger.Error("Failed to audit LLM interaction",
			"session_id", event.SessionID, "error", err)
	}
}

// OnMCPInteraction appends the MCP audit record.
func (a *AuditSubscriber) OnMCPInteraction(ctx context.Context, event MCPInteractionEvent) {
	_, err := a.interactions.RecordMCP(ctx, services.MCPInteractionRecord{
		SessionID:         event.SessionID,
		StageExecutionID:  event.StageExecutionID,
		ServerName:        event.ServerName,
		ToolName:          event.ToolName,
		ToolArguments:     event.ToolArguments,
		ToolResult:        event.ToolResult,
		CommunicationType: event.CommunicationType,
		Duration:          event.Duration,
		Success:           event.Success,
		ErrorMessage:      event.ErrorMessage,
	})
	if err != nil {
		a.logger.Error("Failed to audit MCP interaction",
			"session_id", event.SessionID, "error", err)
	}
}

// OnSessionLifecycle appends the lifecycle audit record. The session and
// stage rows carry the current state; these events are the history.
func (a *AuditSubscriber) OnSessionLifecycle(ctx context.Context, event SessionLifecycleEvent) {
	_, err := a.interactions.RecordLifecycle(ctx, services.LifecycleRecord{
		SessionID:        event.SessionID,
		StageExecutionID: event.StageExecutionID,
		EventType:        string(event.Type),
		StageName:        event.StageName,
		StageIndex:       event.StageIndex,
		Detail:           event.Detail,
	})
	if err != nil {
		a.logger.Error("Failed to audit lifecycle event",
			"session_id", event.SessionID, "event_type", event.Type, "error", err)
	}
}
