package config

import (
	"fmt"
	"sort"
)

// AgentRegistry holds agent definitions by id. Read-only after construction.
type AgentRegistry struct {
	agents map[string]*AgentConfig
}

// NewAgentRegistry builds the registry from merged agent definitions.
func NewAgentRegistry(agents map[string]AgentConfig) *AgentRegistry {
	r := &AgentRegistry{agents: make(map[string]*AgentConfig, len(agents))}
	for id, agent := range agents {
		a := agent
		r.agents[id] = &a
	}
	return r
}

// Get returns the agent definition for the given id.
func (r *AgentRegistry) Get(agentID string) (*AgentConfig, error) {
	agent, ok := r.agents[agentID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAgentNotFound, agentID)
	}
	return agent, nil
}

// Has reports whether an agent with the given id exists.
func (r *AgentRegistry) Has(agentID string) bool {
	_, ok := r.agents[agentID]
	return ok
}

// IDs returns all agent ids, sorted.
func (r *AgentRegistry) IDs() []string {
	ids := make([]string, 0, len(r.agents))
	for id := range r.agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of agents.
func (r *AgentRegistry) Len() int { return len(r.agents) }
