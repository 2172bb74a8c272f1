// Package services implements the audit store on top of the Ent client:
// session lifecycle, stage executions, and the append-only interaction log.
// All timestamps come from per-session monotonic clocks.
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/ent/lifecycleevent"
	"github.com/tarsy-bot/tarsy/ent/llminteraction"
	"github.com/tarsy-bot/tarsy/ent/mcpinteraction"
	"github.com/tarsy-bot/tarsy/ent/stageexecution"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// writeTimeout bounds critical audit writes. Writes use a fresh background
// context so a cancelled session context cannot lose the terminal record.
const writeTimeout = 10 * time.Second

// SessionService manages alert session rows.
type SessionService struct {
	client *ent.Client
	clocks *Clocks
}

// NewSessionService creates a SessionService.
func NewSessionService(client *ent.Client, clocks *Clocks) *SessionService {
	return &SessionService{client: client, clocks: clocks}
}

// Clocks exposes the per-session clock registry shared with the other
// services.
func (s *SessionService) Clocks() *Clocks { return s.clocks }

// CreateSession persists a new session in pending status.
func (s *SessionService) CreateSession(_ context.Context, in models.CreateSessionInput) (*ent.AlertSession, error) {
	if in.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if in.AlertType == "" {
		return nil, NewValidationError("alert_type", "required")
	}
	if in.ChainID == "" {
		return nil, NewValidationError("chain_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	session, err := s.client.AlertSession.Create().
		SetID(in.SessionID).
		SetAlertID(in.AlertID).
		SetAlertType(in.AlertType).
		SetAlertData(in.AlertData).
		SetChainID(in.ChainID).
		SetChainDefinition(in.ChainDefinition).
		SetStatus(alertsession.StatusPending).
		SetStartedAtUs(s.clocks.For(in.SessionID).Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// CreateFailedSession persists a session rejected at submission, e.g. an
// alert type no chain handles. The row is terminal from the start and never
// enters the queue, but the rejection stays auditable.
func (s *SessionService) CreateFailedSession(_ context.Context, in models.CreateSessionInput, errorMessage string) (*ent.AlertSession, error) {
	if in.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if in.AlertType == "" {
		return nil, NewValidationError("alert_type", "required")
	}
	if in.ChainDefinition == nil {
		in.ChainDefinition = map[string]any{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	clock := s.clocks.For(in.SessionID)
	session, err := s.client.AlertSession.Create().
		SetID(in.SessionID).
		SetAlertID(in.AlertID).
		SetAlertType(in.AlertType).
		SetAlertData(in.AlertData).
		SetChainID(in.ChainID).
		SetChainDefinition(in.ChainDefinition).
		SetStatus(alertsession.StatusFailed).
		SetStartedAtUs(clock.Now()).
		SetCompletedAtUs(clock.Now()).
		SetErrorMessage(errorMessage).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create failed session: %w", err)
	}
	s.clocks.Release(in.SessionID)
	return session, nil
}

// Heartbeat refreshes the orphan-detection timestamp.
func (s *SessionService) Heartbeat(ctx context.Context, sessionID string) error {
	_, err := s.client.AlertSession.Update().
		Where(alertsession.IDEQ(sessionID)).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	return err
}

// Finalize records the terminal status of a session. Idempotent: only a
// pending or processing session transitions; repeated calls are no-ops.
func (s *SessionService) Finalize(_ context.Context, sessionID string, status alertsession.Status, finalAnalysis, errorMessage string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	upd := s.client.AlertSession.Update().
		Where(
			alertsession.IDEQ(sessionID),
			alertsession.StatusIn(alertsession.StatusPending, alertsession.StatusProcessing),
		).
		SetStatus(status).
		SetCompletedAtUs(s.clocks.For(sessionID).Now())
	if finalAnalysis != "" {
		upd.SetFinalAnalysis(finalAnalysis)
	}
	if errorMessage != "" {
		upd.SetErrorMessage(errorMessage)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize session: %w", err)
	}
	if n == 0 {
		// Already terminal. Idempotent by design.
		return nil
	}
	s.clocks.Release(sessionID)
	return nil
}

// SetCurrentStage points the session at the stage execution that just
// started, so observers see progress without walking the stage table.
func (s *SessionService) SetCurrentStage(_ context.Context, sessionID string, stageIndex int, stageExecutionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	_, err := s.client.AlertSession.Update().
		Where(alertsession.IDEQ(sessionID)).
		SetCurrentStageIndex(stageIndex).
		SetCurrentStageID(stageExecutionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update current stage: %w", err)
	}
	return nil
}

// GetSession returns a session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.AlertSession, error) {
	session, err := s.client.AlertSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions returns sessions matching the filter, newest first, plus the
// total match count for pagination.
func (s *SessionService) ListSessions(ctx context.Context, filter models.SessionFilter) ([]*ent.AlertSession, int, error) {
	query := s.client.AlertSession.Query()
	if filter.Status != "" {
		query = query.Where(alertsession.StatusEQ(alertsession.Status(filter.Status)))
	}
	if filter.AlertType != "" {
		query = query.Where(alertsession.AlertTypeEQ(filter.AlertType))
	}
	if filter.ChainID != "" {
		query = query.Where(alertsession.ChainIDEQ(filter.ChainID))
	}
	if filter.SinceUs > 0 {
		query = query.Where(alertsession.StartedAtUsGTE(filter.SinceUs))
	}
	if filter.UntilUs > 0 {
		query = query.Where(alertsession.StartedAtUsLTE(filter.UntilUs))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	sessions, err := query.
		Order(ent.Desc(alertsession.FieldStartedAtUs)).
		Offset(filter.Offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, total, nil
}

// SessionDetail is a session with its stages and merged audit timeline.
type SessionDetail struct {
	Session  *ent.AlertSession
	Stages   []*ent.StageExecution
	Timeline []models.TimelineEntry
}

// GetSessionDetail loads a session, its stages in execution order, and the
// chronologically merged timeline of LLM interactions, MCP interactions, and
// lifecycle events.
func (s *SessionService) GetSessionDetail(ctx context.Context, sessionID string) (*SessionDetail, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stages, err := s.client.StageExecution.Query().
		Where(stageexecution.SessionIDEQ(sessionID)).
		Order(ent.Asc(stageexecution.FieldStageIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stages: %w", err)
	}

	llms, err := s.client.LLMInteraction.Query().
		Where(llminteraction.SessionIDEQ(sessionID)).
		Order(ent.Asc(llminteraction.FieldTimestampUs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load llm interactions: %w", err)
	}

	mcps, err := s.client.MCPInteraction.Query().
		Where(mcpinteraction.SessionIDEQ(sessionID)).
		Order(ent.Asc(mcpinteraction.FieldTimestampUs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mcp interactions: %w", err)
	}

	events, err := s.client.LifecycleEvent.Query().
		Where(lifecycleevent.SessionIDEQ(sessionID)).
		Order(ent.Asc(lifecycleevent.FieldTimestampUs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lifecycle events: %w", err)
	}

	return &SessionDetail{
		Session:  session,
		Stages:   stages,
		Timeline: mergeTimeline(llms, mcps, events),
	}, nil
}

// mergeTimeline interleaves the three audit streams by timestamp. The
// session clock guarantees distinct timestamps within a session, and the
// stable sort preserves append order for any equal ones.
func mergeTimeline(llms []*ent.LLMInteraction, mcps []*ent.MCPInteraction, events []*ent.LifecycleEvent) []models.TimelineEntry {
	timeline := make([]models.TimelineEntry, 0, len(llms)+len(mcps)+len(events))
	for _, in := range llms {
		timeline = append(timeline, llmTimelineEntry(in))
	}
	for _, in := range mcps {
		timeline = append(timeline, mcpTimelineEntry(in))
	}
	for _, ev := range events {
		timeline = append(timeline, lifecycleTimelineEntry(ev))
	}
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].TimestampUs < timeline[j].TimestampUs
	})
	return timeline
}

func lifecycleTimelineEntry(ev *ent.LifecycleEvent) models.TimelineEntry {
	entry := models.TimelineEntry{
		Type:          "lifecycle",
		InteractionID: ev.ID,
		TimestampUs:   ev.TimestampUs,
		Success:       true,
		Details: map[string]any{
			"event_type": ev.EventType,
		},
	}
	if ev.StageExecutionID != nil {
		entry.StageExecutionID = *ev.StageExecutionID
	}
	if ev.StageName != nil {
		entry.Details["stage_name"] = *ev.StageName
	}
	if ev.StageIndex != nil {
		entry.Details["stage_index"] = *ev.StageIndex
	}
	if ev.Detail != nil {
		entry.Details["detail"] = *ev.Detail
	}
	return entry
}

func llmTimelineEntry(in *ent.LLMInteraction) models.TimelineEntry {
	entry := models.TimelineEntry{
		Type:          "llm",
		InteractionID: in.ID,
		TimestampUs:   in.TimestampUs,
		DurationMs:    in.DurationMs,
		Success:       in.Success,
		Details: map[string]any{
			"model_name":   in.ModelName,
			"conversation": in.Conversation,
		},
	}
	if in.StageExecutionID != nil {
		entry.StageExecutionID = *in.StageExecutionID
	}
	if in.ErrorMessage != nil {
		entry.ErrorMessage = *in.ErrorMessage
	}
	return entry
}

func mcpTimelineEntry(in *ent.MCPInteraction) models.TimelineEntry {
	entry := models.TimelineEntry{
		Type:          "mcp",
		InteractionID: in.ID,
		TimestampUs:   in.TimestampUs,
		DurationMs:    in.DurationMs,
		Success:       in.Success,
		Details: map[string]any{
			"server_name":        in.ServerName,
			"tool_name":          in.ToolName,
			"tool_arguments":     in.ToolArguments,
			"tool_result":        in.ToolResult,
			"communication_type": in.CommunicationType,
		},
	}
	if in.StageExecutionID != nil {
		entry.StageExecutionID = *in.StageExecutionID
	}
	if in.ErrorMessage != nil {
		entry.ErrorMessage = *in.ErrorMessage
	}
	return entry
}

// Cleanup deletes sessions whose processing finished before the retention
// horizon. Interactions and stages cascade.
func (s *SessionService) Cleanup(ctx context.Context, retentionDays int) (int, error) {
	horizon := time.Now().AddDate(0, 0, -retentionDays).UnixMicro()
	n, err := s.client.AlertSession.Delete().
		Where(
			alertsession.StatusIn(
				alertsession.StatusCompleted,
				alertsession.StatusPartial,
				alertsession.StatusFailed,
			),
			alertsession.CompletedAtUsLT(horizon),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up sessions: %w", err)
	}
	return n, nil
}
