// Package hooks is the in-process observation bus for alert processing.
// Producers (LLM client, MCP executor, chain executor) publish typed events;
// subscribers (audit writer, dashboard broadcaster) consume them without ever
// being able to fail or stall the pipeline.
package hooks

import "time"

// LifecycleType enumerates session lifecycle transitions.
type LifecycleType string

const (
	LifecycleSessionCreated LifecycleType = "session.created"
	LifecycleSessionStarted LifecycleType = "session.started"
	LifecycleStageStarted   LifecycleType = "stage.started"
	LifecycleStageCompleted LifecycleType = "stage.completed"
	LifecycleStageFailed    LifecycleType = "stage.failed"
	LifecycleRunbookFailed  LifecycleType = "runbook.failed"
	LifecycleCompleted      LifecycleType = "session.completed"
	LifecyclePartial        LifecycleType = "session.partial"
	LifecycleFailed         LifecycleType = "session.failed"
	LifecycleCancelled      LifecycleType = "session.cancelled"
)

// LLMInteractionEvent records one LLM completion attempt.
type LLMInteractionEvent struct {
	SessionID        string
	StageExecutionID string // empty when no stage was active
	ModelName        string
	Conversation     []map[string]any // messages sent plus the response
	Duration         time.Duration
	Success          bool
	ErrorMessage     string
}

// MCPInteractionEvent records one MCP tool call or tool listing.
type MCPInteractionEvent struct {
	SessionID         string
	StageExecutionID  string
	ServerName        string
	ToolName          string // empty for tool_list
	ToolArguments     map[string]any
	ToolResult        map[string]any
	CommunicationType string // "tool_call" or "tool_list"
	Duration          time.Duration
	Success           bool
	ErrorMessage      string
}

// SessionLifecycleEvent records a session or stage transition. The chain
// progress fields let dashboard clients render an overall progress bar
// without fetching the session.
type SessionLifecycleEvent struct {
	SessionID        string
	Type             LifecycleType
	ChainID          string
	StageExecutionID string
	StageName        string
	StageIndex       int
	TotalStages      int
	CompletedStages  int
	Detail           string
}
