// Package mcp provides MCP (Model Context Protocol) client infrastructure:
// connecting to configured servers and executing tools on behalf of agents.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/version"
)

// MCPInitTimeout bounds the connect+initialize handshake per server.
const MCPInitTimeout = 30 * time.Second


// Client manages MCP SDK sessions for multiple servers. Each Client instance
// is scoped to one processing session or health probe, so the tool cache is
// naturally fresh and never invalidated.
type Client struct {
	registry  *config.MCPServerRegistry
	opTimeout time.Duration

	mu            sync.RWMutex
	sessions      map[string]*mcpsdk.ClientSession // serverID → session
	failedServers map[string]string                // serverID → error message

	toolCacheMu sync.RWMutex
	toolCache   map[string][]*mcpsdk.Tool

	logger *slog.Logger
}

// NewClient creates a Client for the given registry. opTimeout bounds each
// tool call and listing.
func NewClient(registry *config.MCPServerRegistry, opTimeout time.Duration) *Client {
	if opTimeout <= 0 {
		opTimeout = config.DefaultMCPTimeout
	}
	return &Client{
		registry:      registry,
		opTimeout:     opTimeout,
		sessions:      make(map[string]*mcpsdk.ClientSession),
		failedServers: make(map[string]string),
		toolCache:     make(map[string][]*mcpsdk.Tool),
		logger:        slog.With("component", "mcp_client"),
	}
}

// Initialize connects to the given servers. Connection failures are recorded
// rather than returned: the caller decides whether partial availability is
// acceptable (it is for a session; it is not for the startup probe).
func (c *Client) Initialize(ctx context.Context, serverIDs []string) {
	for _, serverID := range serverIDs {
		if err := c.initializeServer(ctx, serverID); err != nil {
			c.mu.Lock()
			c.failedServers[serverID] = err.Error()
			c.mu.Unlock()
			c.logger.Warn("MCP server failed to initialize",
				"server", serverID, "error", err)
		}
	}
}

func (c *Client) initializeServer(ctx context.Context, serverID string) error {
	c.mu.RLock()
	_, exists := c.sessions[serverID]
	c.mu.RUnlock()
	if exists {
		return nil
	}

	serverCfg, err := c.registry.Get(serverID)
	if err != nil {
		return fmt.Errorf("server %q not found in registry: %w", serverID, err)
	}

	transport, err := newTransport(serverCfg.Transport)
	if err != nil {
		return fmt.Errorf("failed to create transport for %q: %w", serverID, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, MCPInitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)
	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %q: %w", serverID, err)
	}

	c.mu.Lock()
	c.sessions[serverID] = session
	c.mu.Unlock()

	c.logger.Info("MCP server connected", "server", serverID)
	return nil
}

// ListTools returns the tools advertised by one server, cached after the
// first call.
func (c *Client) ListTools(ctx context.Context, serverID string) ([]*mcpsdk.Tool, error) {
	c.toolCacheMu.RLock()
	if cached, ok := c.toolCache[serverID]; ok {
		c.toolCacheMu.RUnlock()
		return cached, nil
	}
	c.toolCacheMu.RUnlock()

	session, err := c.session(serverID)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %q: %w", serverID, err)
	}

	tools := result.Tools
	if tools == nil {
		tools = []*mcpsdk.Tool{}
	}
	c.toolCacheMu.Lock()
	c.toolCache[serverID] = tools
	c.toolCacheMu.Unlock()

	return tools, nil
}

// CallTool executes one tool on one server with the operation timeout.
func (c *Client) CallTool(ctx context.Context, serverID, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	session, err := c.session(serverID)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	result, err := session.CallTool(opCtx, &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		return nil, fmt.Errorf("call %q.%s: %w", serverID, toolName, err)
	}
	return result, nil
}

func (c *Client) session(serverID string) (*mcpsdk.ClientSession, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	session, exists := c.sessions[serverID]
	if !exists {
		if msg, failed := c.failedServers[serverID]; failed {
			return nil, fmt.Errorf("server %q unavailable: %s", serverID, msg)
		}
		return nil, fmt.Errorf("no session for server %q", serverID)
	}
	return session, nil
}

// HasSession reports whether the server connected successfully.
func (c *Client) HasSession(serverID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.sessions[serverID]
	return ok
}

// FailedServers returns a copy of the connection failures so far.
func (c *Client) FailedServers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.failedServers))
	for k, v := range c.failedServers {
		out[k] = v
	}
	return out
}

// Close shuts down all server sessions.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var firstErr error
	for serverID, session := range c.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close %q: %w", serverID, err)
		}
		delete(c.sessions, serverID)
	}
	return firstErr
}
