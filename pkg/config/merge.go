package config

// Merge policy: user definitions add to built-ins. A user definition reusing
// a built-in id is a configuration error, not an override; silently replacing
// a built-in chain would change routing for alert types the user never
// mentioned.

func mergeAgents(builtin, user map[string]AgentConfig) (map[string]AgentConfig, error) {
	merged := make(map[string]AgentConfig, len(builtin)+len(user))
	for id, a := range builtin {
		merged[id] = a
	}
	for id, a := range user {
		if _, exists := merged[id]; exists {
			return nil, NewValidationError("agents."+id, "redefines a built-in agent")
		}
		merged[id] = a
	}
	return merged, nil
}

func mergeMCPServers(builtin, user map[string]MCPServerConfig) (map[string]MCPServerConfig, error) {
	merged := make(map[string]MCPServerConfig, len(builtin)+len(user))
	for id, s := range builtin {
		merged[id] = s
	}
	for id, s := range user {
		if _, exists := merged[id]; exists {
			return nil, NewValidationError("mcp_servers."+id, "redefines a built-in server")
		}
		merged[id] = s
	}
	return merged, nil
}

func mergeChains(builtin, user map[string]ChainConfig) (map[string]ChainConfig, error) {
	merged := make(map[string]ChainConfig, len(builtin)+len(user))
	for id, c := range builtin {
		merged[id] = c
	}
	for id, c := range user {
		if _, exists := merged[id]; exists {
			return nil, &DuplicateChainIDError{ChainID: id}
		}
		merged[id] = c
	}
	return merged, nil
}
