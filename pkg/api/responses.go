package api

import (
	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/pkg/models"
	"github.com/tarsy-bot/tarsy/pkg/services"
)

// SubmitAlertResponse acknowledges a submitted alert. Status is "accepted"
// for queued sessions; a rejected alert type still yields a session_id, with
// status "failed" and the rejection reason in error.
type SubmitAlertResponse struct {
	AlertID   string `json:"alert_id"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// SessionSummary is one row in the session list.
type SessionSummary struct {
	SessionID         string  `json:"session_id"`
	AlertID           string  `json:"alert_id"`
	AlertType         string  `json:"alert_type"`
	ChainID           string  `json:"chain_id"`
	Status            string  `json:"status"`
	StartedAtUs       int64   `json:"started_at_us"`
	CompletedAtUs     *int64  `json:"completed_at_us,omitempty"`
	CurrentStageIndex *int    `json:"current_stage_index,omitempty"`
	CurrentStageID    *string `json:"current_stage_id,omitempty"`
	ErrorMessage      string  `json:"error_message,omitempty"`
}

// SessionListResponse is the body of GET /api/v1/sessions.
type SessionListResponse struct {
	Sessions []SessionSummary `json:"sessions"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// StageView is one stage execution in a session detail.
type StageView struct {
	ExecutionID       string         `json:"execution_id"`
	StageID           string         `json:"stage_id"`
	StageName         string         `json:"stage_name"`
	Agent             string         `json:"agent"`
	StageIndex        int            `json:"stage_index"`
	Status            string         `json:"status"`
	IterationStrategy string         `json:"iteration_strategy"`
	StartedAtUs       *int64         `json:"started_at_us,omitempty"`
	CompletedAtUs     *int64         `json:"completed_at_us,omitempty"`
	DurationMs        *int64         `json:"duration_ms,omitempty"`
	StageOutput       map[string]any `json:"stage_output,omitempty"`
	ErrorMessage      string         `json:"error_message,omitempty"`
}

// SessionDetailResponse is the body of GET /api/v1/sessions/:id.
type SessionDetailResponse struct {
	SessionSummary
	AlertData       map[string]any         `json:"alert_data"`
	ChainDefinition map[string]any         `json:"chain_definition"`
	FinalAnalysis   string                 `json:"final_analysis,omitempty"`
	Stages          []StageView            `json:"stages"`
	Timeline        []models.TimelineEntry `json:"timeline"`
}

// CancelResponse is the body of POST /api/v1/sessions/:id/cancel.
type CancelResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// AlertTypesResponse lists the alert types the configured chains handle.
type AlertTypesResponse struct {
	AlertTypes []string `json:"alert_types"`
}

func sessionSummary(session *ent.AlertSession) SessionSummary {
	out := SessionSummary{
		SessionID:         session.ID,
		AlertID:           session.AlertID,
		AlertType:         session.AlertType,
		ChainID:           session.ChainID,
		Status:            string(session.Status),
		StartedAtUs:       session.StartedAtUs,
		CompletedAtUs:     session.CompletedAtUs,
		CurrentStageIndex: session.CurrentStageIndex,
		CurrentStageID:    session.CurrentStageID,
	}
	if session.ErrorMessage != nil {
		out.ErrorMessage = *session.ErrorMessage
	}
	return out
}

func sessionDetail(detail *services.SessionDetail) *SessionDetailResponse {
	out := &SessionDetailResponse{
		SessionSummary:  sessionSummary(detail.Session),
		AlertData:       detail.Session.AlertData,
		ChainDefinition: detail.Session.ChainDefinition,
		Stages:          make([]StageView, 0, len(detail.Stages)),
		Timeline:        detail.Timeline,
	}
	if detail.Session.FinalAnalysis != nil {
		out.FinalAnalysis = *detail.Session.FinalAnalysis
	}
	for _, stage := range detail.Stages {
		out.Stages = append(out.Stages, stageView(stage))
	}
	return out
}

func stageView(stage *ent.StageExecution) StageView {
	out := StageView{
		ExecutionID:       stage.ID,
		StageID:           stage.StageID,
		StageName:         stage.StageName,
		Agent:             stage.Agent,
		StageIndex:        stage.StageIndex,
		Status:            string(stage.Status),
		IterationStrategy: stage.IterationStrategy,
		StartedAtUs:       stage.StartedAtUs,
		CompletedAtUs:     stage.CompletedAtUs,
		DurationMs:        stage.DurationMs,
		StageOutput:       stage.StageOutput,
	}
	if stage.ErrorMessage != nil {
		out.ErrorMessage = *stage.ErrorMessage
	}
	return out
}
