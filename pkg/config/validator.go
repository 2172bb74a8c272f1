package config

import "fmt"

// validate cross-checks the merged configuration: every stage's agent must
// exist, every agent's MCP servers must exist and be enabled, and all enum
// values must be known.
func validate(cfg *Config) error {
	for _, agentID := range cfg.AgentRegistry.IDs() {
		agent, _ := cfg.AgentRegistry.Get(agentID)
		if len(agent.MCPServers) == 0 {
			return NewValidationError(
				fmt.Sprintf("agents.%s.mcp_servers", agentID), "at least one server required")
		}
		if err := agent.IterationStrategy.Validate(); err != nil {
			return NewValidationError(
				fmt.Sprintf("agents.%s.iteration_strategy", agentID), err.Error())
		}
		for _, serverID := range agent.MCPServers {
			server, err := cfg.MCPServerRegistry.Get(serverID)
			if err != nil {
				return NewValidationError(
					fmt.Sprintf("agents.%s.mcp_servers", agentID),
					fmt.Sprintf("unknown server %q", serverID))
			}
			if !server.IsEnabled() {
				return NewValidationError(
					fmt.Sprintf("agents.%s.mcp_servers", agentID),
					fmt.Sprintf("server %q is disabled", serverID))
			}
		}
	}

	for _, serverID := range cfg.MCPServerRegistry.EnabledIDs() {
		server, _ := cfg.MCPServerRegistry.Get(serverID)
		if err := server.Transport.Type.Validate(); err != nil {
			return NewValidationError(
				fmt.Sprintf("mcp_servers.%s.transport.type", serverID), err.Error())
		}
		switch server.Transport.Type {
		case TransportTypeStdio:
			if server.Transport.Command == "" {
				return NewValidationError(
					fmt.Sprintf("mcp_servers.%s.transport.command", serverID), "required for stdio")
			}
		case TransportTypeHTTP:
			if server.Transport.URL == "" {
				return NewValidationError(
					fmt.Sprintf("mcp_servers.%s.transport.url", serverID), "required for http")
			}
		}
	}

	for _, chainID := range cfg.ChainRegistry.ChainIDs() {
		chain, _ := cfg.ChainRegistry.Get(chainID)
		if len(chain.AlertTypes) == 0 {
			return NewValidationError(
				fmt.Sprintf("agent_chains.%s.alert_types", chainID), "at least one alert type required")
		}
		if len(chain.Stages) == 0 {
			return NewValidationError(
				fmt.Sprintf("agent_chains.%s.stages", chainID), "at least one stage required")
		}
		seenNames := make(map[string]int, len(chain.Stages))
		for i, stage := range chain.Stages {
			if stage.Name == "" {
				return NewValidationError(
					fmt.Sprintf("agent_chains.%s.stages[%d].name", chainID, i), "required")
			}
			if prev, dup := seenNames[stage.Name]; dup {
				return NewValidationError(
					fmt.Sprintf("agent_chains.%s.stages[%d].name", chainID, i),
					fmt.Sprintf("duplicate stage name %q (already used by stages[%d])", stage.Name, prev))
			}
			seenNames[stage.Name] = i
			if !cfg.AgentRegistry.Has(stage.Agent) {
				return NewValidationError(
					fmt.Sprintf("agent_chains.%s.stages[%d].agent", chainID, i),
					fmt.Sprintf("unknown agent %q", stage.Agent))
			}
			if err := stage.IterationStrategy.Validate(); err != nil {
				return NewValidationError(
					fmt.Sprintf("agent_chains.%s.stages[%d].iteration_strategy", chainID, i), err.Error())
			}
		}
	}

	return nil
}
