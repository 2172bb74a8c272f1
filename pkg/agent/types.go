// Package agent hosts the agent runtime: the types controllers operate on,
// the per-stage execution context, and the entry point that turns one chain
// stage into a StageResult.
package agent

import (
	"context"
	"fmt"
)

// ToolCall is an agent's request to run one tool. Name uses the
// "server.tool" form produced by ToolExecutor.ListTools.
type ToolCall struct {
	Name      string
	Arguments map[string]any
}

// ToolResult is the outcome of one tool call. Tool-level failures come back
// as content with IsError set, never as a Go error, so the loop can show
// them to the model as observations.
type ToolResult struct {
	Name    string
	Server  string
	Tool    string
	Content string
	IsError bool
}

// ToolDefinition describes one available tool for prompt construction.
type ToolDefinition struct {
	Name        string // server.tool
	Description string
	InputSchema string // JSON Schema
}

// ToolExecutor abstracts MCP execution for iteration controllers.
type ToolExecutor interface {
	// ListTools returns the tools the current stage may call.
	ListTools(ctx context.Context) ([]ToolDefinition, error)

	// Execute runs a single tool call.
	Execute(ctx context.Context, call ToolCall) (*ToolResult, error)

	// Close releases transports and subprocesses.
	Close() error
}

// StubToolExecutor returns canned responses. Tests wire it instead of real
// MCP servers.
type StubToolExecutor struct {
	Tools     []ToolDefinition
	Responses map[string]string // tool name → content
}

// ListTools implements ToolExecutor.
func (s *StubToolExecutor) ListTools(context.Context) ([]ToolDefinition, error) {
	return s.Tools, nil
}

// Execute implements ToolExecutor.
func (s *StubToolExecutor) Execute(_ context.Context, call ToolCall) (*ToolResult, error) {
	if content, ok := s.Responses[call.Name]; ok {
		return &ToolResult{Name: call.Name, Content: content}, nil
	}
	return &ToolResult{
		Name:    call.Name,
		Content: fmt.Sprintf("tool %q is not available", call.Name),
		IsError: true,
	}, nil
}

// Close implements ToolExecutor.
func (s *StubToolExecutor) Close() error { return nil }
