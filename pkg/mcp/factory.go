package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/tarsy-bot/tarsy/pkg/config"
)

// ClientFactory creates session-scoped MCP clients from the server registry.
type ClientFactory struct {
	registry  *config.MCPServerRegistry
	opTimeout time.Duration
}

// NewClientFactory creates the factory.
func NewClientFactory(registry *config.MCPServerRegistry, opTimeout time.Duration) *ClientFactory {
	return &ClientFactory{registry: registry, opTimeout: opTimeout}
}

// NewSessionClient connects a fresh client to the given servers for one
// processing session. Partial availability is acceptable here; unreachable
// servers surface as tool errors during the session.
func (f *ClientFactory) NewSessionClient(ctx context.Context, serverIDs []string) *Client {
	client := NewClient(f.registry, f.opTimeout)
	client.Initialize(ctx, serverIDs)
	return client
}

// ValidateServers eagerly connects to every enabled server and fails if any
// is unreachable. Run once at startup so misconfigured transports are caught
// before the first alert arrives.
func (f *ClientFactory) ValidateServers(ctx context.Context) error {
	serverIDs := f.registry.EnabledIDs()
	if len(serverIDs) == 0 {
		return nil
	}
	client := NewClient(f.registry, f.opTimeout)
	defer func() { _ = client.Close() }()

	client.Initialize(ctx, serverIDs)
	if failed := client.FailedServers(); len(failed) > 0 {
		for serverID, msg := range failed {
			return fmt.Errorf("mcp server %q failed validation: %s", serverID, msg)
		}
	}
	return nil
}
