package config

import (
	"fmt"
	"sort"
)

// MCPServerRegistry holds MCP server definitions by id. Read-only after
// construction.
type MCPServerRegistry struct {
	servers map[string]*MCPServerConfig
}

// NewMCPServerRegistry builds the registry from merged server definitions.
func NewMCPServerRegistry(servers map[string]MCPServerConfig) *MCPServerRegistry {
	r := &MCPServerRegistry{servers: make(map[string]*MCPServerConfig, len(servers))}
	for id, server := range servers {
		s := server
		r.servers[id] = &s
	}
	return r
}

// Get returns the server definition for the given id.
func (r *MCPServerRegistry) Get(serverID string) (*MCPServerConfig, error) {
	server, ok := r.servers[serverID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMCPServerNotFound, serverID)
	}
	return server, nil
}

// Has reports whether a server with the given id exists.
func (r *MCPServerRegistry) Has(serverID string) bool {
	_, ok := r.servers[serverID]
	return ok
}

// EnabledIDs returns the ids of all enabled servers, sorted.
func (r *MCPServerRegistry) EnabledIDs() []string {
	ids := make([]string, 0, len(r.servers))
	for id, server := range r.servers {
		if server.IsEnabled() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of servers.
func (r *MCPServerRegistry) Len() int { return len(r.servers) }
