package models

// CreateSessionInput is what the alert service needs to persist a new
// session before it is queued for processing.
type CreateSessionInput struct {
	SessionID       string
	AlertID         string
	AlertType       string
	AlertData       map[string]any
	ChainID         string
	ChainDefinition map[string]any // snapshot of the chain at submission time
}

// SessionFilter narrows session list queries. Zero values mean "any".
type SessionFilter struct {
	Status    string
	AlertType string
	ChainID   string
	SinceUs   int64
	UntilUs   int64
	Limit     int
	Offset    int
}

// TimelineEntry is one merged audit record in a session's detail view,
// ordered by TimestampUs.
type TimelineEntry struct {
	Type             string         `json:"type"` // "llm", "mcp", or "lifecycle"
	InteractionID    string         `json:"interaction_id"`
	StageExecutionID string         `json:"stage_execution_id,omitempty"`
	TimestampUs      int64          `json:"timestamp_us"`
	DurationMs       int64          `json:"duration_ms"`
	Success          bool           `json:"success"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	Details          map[string]any `json:"details"`
}
