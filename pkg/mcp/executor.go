package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/masking"
)

// Compile-time check that ToolExecutor implements agent.ToolExecutor.
var _ agent.ToolExecutor = (*ToolExecutor)(nil)

// ToolExecutor implements agent.ToolExecutor backed by real MCP servers.
// One instance per stage execution; every listing and call is published on
// the hook bus tagged with the owning session and stage.
type ToolExecutor struct {
	client    *Client
	registry  *config.MCPServerRegistry
	serverIDs []string
	masker    *masking.Service

	bus              *hooks.Bus
	sessionID        string
	stageExecutionID string
}

// NewToolExecutor creates an executor scoped to the given servers, session,
// and stage. masker may be nil (masking disabled).
func NewToolExecutor(client *Client, registry *config.MCPServerRegistry, serverIDs []string, masker *masking.Service, bus *hooks.Bus, sessionID, stageExecutionID string) *ToolExecutor {
	return &ToolExecutor{
		client:           client,
		registry:         registry,
		serverIDs:        serverIDs,
		masker:           masker,
		bus:              bus,
		sessionID:        sessionID,
		stageExecutionID: stageExecutionID,
	}
}

// ListTools returns all tools from this stage's servers with server-prefixed
// names ("kubernetes-server.pods_list"). A server that fails to list yields
// a warning-level audit record; partial tools beat none.
func (e *ToolExecutor) ListTools(ctx context.Context) ([]agent.ToolDefinition, error) {
	var all []agent.ToolDefinition
	for _, serverID := range e.serverIDs {
		start := time.Now()
		tools, err := e.client.ListTools(ctx, serverID)
		e.publishList(serverID, tools, time.Since(start), err)
		if err != nil {
			continue
		}
		for _, tool := range tools {
			def := agent.ToolDefinition{
				Name:        fmt.Sprintf("%s.%s", serverID, tool.Name),
				Description: tool.Description,
			}
			if tool.InputSchema != nil {
				if schema, err := json.Marshal(tool.InputSchema); err == nil {
					def.InputSchema = string(schema)
				}
			}
			all = append(all, def)
		}
	}
	return all, nil
}

// Execute runs one tool call. Routing failures, unknown tools, and
// tool-level errors come back as observation content with IsError set, per
// MCP convention; only context cancellation surfaces as a Go error.
func (e *ToolExecutor) Execute(ctx context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	serverID, toolName, err := e.resolveToolCall(call.Name)
	if err != nil {
		return &agent.ToolResult{
			Name:    call.Name,
			Content: err.Error(),
			IsError: true,
		}, nil
	}

	start := time.Now()
	result, err := e.client.CallTool(ctx, serverID, toolName, call.Arguments)
	duration := time.Since(start)

	if err != nil {
		e.publishCall(serverID, toolName, call.Arguments, nil, duration, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &agent.ToolResult{
			Name:    call.Name,
			Server:  serverID,
			Tool:    toolName,
			Content: fmt.Sprintf("MCP tool execution failed: %s", err),
			IsError: true,
		}, nil
	}

	content := extractTextContent(result)
	if e.masker != nil {
		content = e.masker.MaskToolResult(content, serverID)
	}
	e.publishCall(serverID, toolName, call.Arguments, map[string]any{
		"content":  content,
		"is_error": result.IsError,
	}, duration, nil)

	return &agent.ToolResult{
		Name:    call.Name,
		Server:  serverID,
		Tool:    toolName,
		Content: content,
		IsError: result.IsError,
	}, nil
}

// Close is a no-op: the session-scoped Client owns the transports and is
// closed by the chain executor.
func (e *ToolExecutor) Close() error { return nil }

// resolveToolCall splits "server.tool" and checks the server belongs to this
// stage's agent.
func (e *ToolExecutor) resolveToolCall(name string) (serverID, toolName string, err error) {
	idx := strings.Index(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return "", "", fmt.Errorf("tool %q is not available: expected server.tool format", name)
	}
	serverID, toolName = name[:idx], name[idx+1:]

	for _, allowed := range e.serverIDs {
		if allowed == serverID {
			return serverID, toolName, nil
		}
	}
	return "", "", fmt.Errorf("tool %q is not available: server %q is not assigned to this agent", name, serverID)
}

func (e *ToolExecutor) publishList(serverID string, tools []*mcpsdk.Tool, duration time.Duration, err error) {
	event := hooks.MCPInteractionEvent{
		SessionID:         e.sessionID,
		StageExecutionID:  e.stageExecutionID,
		ServerName:        serverID,
		CommunicationType: "tool_list",
		Duration:          duration,
		Success:           err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	} else {
		names := make([]any, 0, len(tools))
		for _, t := range tools {
			names = append(names, t.Name)
		}
		event.ToolResult = map[string]any{"tools": names}
	}
	e.bus.PublishMCPInteraction(event)
}

func (e *ToolExecutor) publishCall(serverID, toolName string, args, result map[string]any, duration time.Duration, err error) {
	event := hooks.MCPInteractionEvent{
		SessionID:         e.sessionID,
		StageExecutionID:  e.stageExecutionID,
		ServerName:        serverID,
		ToolName:          toolName,
		ToolArguments:     args,
		ToolResult:        result,
		CommunicationType: "tool_call",
		Duration:          duration,
		Success:           err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	e.bus.PublishMCPInteraction(event)
}

func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
