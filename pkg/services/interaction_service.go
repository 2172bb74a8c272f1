package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/llminteraction"
	"github.com/tarsy-bot/tarsy/ent/mcpinteraction"
)

// LLMInteractionRecord is the input for one audited LLM call.
type LLMInteractionRecord struct {
	SessionID        string
	StageExecutionID string
	ModelName        string
	Conversation     []map[string]any
	Duration         time.Duration
	Success          bool
	ErrorMessage     string
}

// MCPInteractionRecord is the input for one audited MCP call or listing.
type MCPInteractionRecord struct {
	SessionID         string
	StageExecutionID  string
	ServerName        string
	ToolName          string
	ToolArguments     map[string]any
	ToolResult        map[string]any
	CommunicationType string
	Duration          time.Duration
	Success           bool
	ErrorMessage      string
}

// LifecycleRecord is the input for one audited session or stage transition.
type LifecycleRecord struct {
	SessionID        string
	StageExecutionID string
	EventType        string
	StageName        string
	StageIndex       int
	Detail           string
}

// InteractionService appends audit records. Records are never updated or
// deleted; timestamps come from the per-session monotonic clock, so the
// caller must serialize writes of one session (the hook bus does).
type InteractionService struct {
	client *ent.Client
	clocks *Clocks
}

// NewInteractionService creates an InteractionService.
func NewInteractionService(client *ent.Client, clocks *Clocks) *InteractionService {
	return &InteractionService{client: client, clocks: clocks}
}

// RecordLLM appends one LLM interaction.
func (s *InteractionService) RecordLLM(_ context.Context, rec LLMInteractionRecord) (*ent.LLMInteraction, error) {
	if rec.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	create := s.client.LLMInteraction.Create().
		SetID(uuid.New().String()).
		SetSessionID(rec.SessionID).
		SetTimestampUs(s.clocks.For(rec.SessionID).Now()).
		SetModelName(rec.ModelName).
		SetConversation(rec.Conversation).
		SetDurationMs(rec.Duration.Milliseconds()).
		SetSuccess(rec.Success)
	if rec.StageExecutionID != "" {
		create.SetStageExecutionID(rec.StageExecutionID)
	}
	if rec.ErrorMessage != "" {
		create.SetErrorMessage(rec.ErrorMessage)
	}

	in, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record llm interaction: %w", err)
	}
	return in, nil
}

// RecordMCP appends one MCP interaction.
func (s *InteractionService) RecordMCP(_ context.Context, rec MCPInteractionRecord) (*ent.MCPInteraction, error) {
	if rec.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if rec.CommunicationType == "" {
		rec.CommunicationType = "tool_call"
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	create := s.client.MCPInteraction.Create().
		SetID(uuid.New().String()).
		SetSessionID(rec.SessionID).
		SetTimestampUs(s.clocks.For(rec.SessionID).Now()).
		SetServerName(rec.ServerName).
		SetToolName(rec.ToolName).
		SetCommunicationType(mcpinteraction.CommunicationType(rec.CommunicationType)).
		SetDurationMs(rec.Duration.Milliseconds()).
		SetSuccess(rec.Success)
	if rec.StageExecutionID != "" {
		create.SetStageExecutionID(rec.StageExecutionID)
	}
	if rec.ToolArguments != nil {
		create.SetToolArguments(rec.ToolArguments)
	}
	if rec.ToolResult != nil {
		create.SetToolResult(rec.ToolResult)
	}
	if rec.ErrorMessage != "" {
		create.SetErrorMessage(rec.ErrorMessage)
	}

	in, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record mcp interaction: %w", err)
	}
	return in, nil
}

// RecordLifecycle appends one lifecycle event. Every session and stage
// transition lands here so the timeline shows errors that never produced an
// interaction, runbook fetch failures in particular.
func (s *InteractionService) RecordLifecycle(_ context.Context, rec LifecycleRecord) (*ent.LifecycleEvent, error) {
	if rec.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if rec.EventType == "" {
		return nil, NewValidationError("event_type", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	create := s.client.LifecycleEvent.Create().
		SetID(uuid.New().String()).
		SetSessionID(rec.SessionID).
		SetTimestampUs(s.clocks.For(rec.SessionID).Now()).
		SetEventType(rec.EventType)
	if rec.StageExecutionID != "" {
		create.SetStageExecutionID(rec.StageExecutionID)
		create.SetStageIndex(rec.StageIndex)
	}
	if rec.StageName != "" {
		create.SetStageName(rec.StageName)
	}
	if rec.Detail != "" {
		create.SetDetail(rec.Detail)
	}

	ev, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record lifecycle event: %w", err)
	}
	return ev, nil
}

// CountInteractions returns how many audit records a session has, for list
// summaries.
func (s *InteractionService) CountInteractions(ctx context.Context, sessionID string) (llm int, mcp int, err error) {
	llm, err = s.client.LLMInteraction.Query().
		Where(llminteraction.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count llm interactions: %w", err)
	}
	mcp, err = s.client.MCPInteraction.Query().
		Where(mcpinteraction.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count mcp interactions: %w", err)
	}
	return llm, mcp, nil
}
