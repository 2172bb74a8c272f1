// Package apperrors defines the pipeline's error taxonomy. Every failure a
// stage or session can surface carries a Kind and a recoverability
// classification: recoverable errors are worth retrying on a future alert,
// unrecoverable ones indicate configuration or logic problems.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline error.
type Kind string

const (
	KindUnknownAlertType         Kind = "unknown_alert_type"
	KindConfiguration            Kind = "configuration_error"
	KindRunbookFetch             Kind = "runbook_fetch_error"
	KindLLM                      Kind = "llm_error"
	KindLLMTimeout               Kind = "llm_timeout"
	KindToolNotAvailable         Kind = "tool_not_available"
	KindMCPTool                  Kind = "mcp_tool_error"
	KindIterationBudgetExhausted Kind = "iteration_budget_exhausted"
	KindUnparseableResponse      Kind = "unparseable_response"
	KindStageAgent               Kind = "stage_agent_error"
	KindCancelled                Kind = "cancelled"
)

// Error is a classified pipeline error.
type Error struct {
	Kind        Kind
	Message     string
	Err         error
	Recoverable bool
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err (or anything it wraps) is a pipeline error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}

// Recoverable reports the classification of err; non-pipeline errors are
// treated as unrecoverable.
func Recoverable(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Recoverable
	}
	return false
}

// UnknownAlertType wraps a routing miss; the underlying config error lists
// the known types.
func UnknownAlertType(err error) *Error {
	return &Error{Kind: KindUnknownAlertType, Message: "no chain for alert type", Err: err, Recoverable: false}
}

// Configuration reports invalid or missing configuration.
func Configuration(msg string, err error) *Error {
	return &Error{Kind: KindConfiguration, Message: msg, Err: err, Recoverable: false}
}

// RunbookFetch reports a failed runbook download. Recoverable: the runbook
// host may be back for the next alert.
func RunbookFetch(url string, err error) *Error {
	return &Error{Kind: KindRunbookFetch, Message: fmt.Sprintf("failed to fetch runbook %s", url), Err: err, Recoverable: true}
}

// LLM reports a provider API failure.
func LLM(err error) *Error {
	return &Error{Kind: KindLLM, Message: "llm completion failed", Err: err, Recoverable: true}
}

// LLMTimeout reports a completion exceeding its deadline.
func LLMTimeout(err error) *Error {
	return &Error{Kind: KindLLMTimeout, Message: "llm completion timed out", Err: err, Recoverable: true}
}

// ToolNotAvailable reports a request for a tool no configured server
// provides. Surfaced to the agent as an observation, not a stage failure.
func ToolNotAvailable(tool string) *Error {
	return &Error{Kind: KindToolNotAvailable, Message: fmt.Sprintf("tool %q is not available", tool), Recoverable: false}
}

// MCPTool reports a tool call that reached the server but failed.
func MCPTool(server, tool string, err error) *Error {
	return &Error{Kind: KindMCPTool, Message: fmt.Sprintf("tool %s.%s failed", server, tool), Err: err, Recoverable: true}
}

// IterationBudgetExhausted reports an agent loop that hit its iteration cap
// without concluding.
func IterationBudgetExhausted(iterations int) *Error {
	return &Error{Kind: KindIterationBudgetExhausted, Message: fmt.Sprintf("no conclusion after %d iterations", iterations), Recoverable: false}
}

// UnparseableResponse reports a model that kept producing responses with no
// recognizable Action or Final Answer despite format feedback.
func UnparseableResponse(attempts int) *Error {
	return &Error{Kind: KindUnparseableResponse, Message: fmt.Sprintf("unparseable response after %d format retries", attempts), Recoverable: false}
}

// StageAgent wraps any error that failed a stage, preserving the cause's
// classification.
func StageAgent(stageName string, err error) *Error {
	return &Error{Kind: KindStageAgent, Message: fmt.Sprintf("stage %q failed", stageName), Err: err, Recoverable: Recoverable(err)}
}

// Cancelled reports processing interrupted by shutdown or explicit
// cancellation.
func Cancelled(msg string) *Error {
	return &Error{Kind: KindCancelled, Message: msg, Recoverable: false}
}
