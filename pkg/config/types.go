package config

// TransportConfig describes how to reach an MCP server.
type TransportConfig struct {
	Type    TransportType     `yaml:"type"`
	Command string            `yaml:"command,omitempty"` // stdio
	Args    []string          `yaml:"args,omitempty"`    // stdio
	Env     map[string]string `yaml:"env,omitempty"`     // stdio
	URL     string            `yaml:"url,omitempty"`     // http
}

// MCPServerConfig describes a single MCP server an agent may use.
type MCPServerConfig struct {
	Transport    TransportConfig `yaml:"transport"`
	Enabled      *bool           `yaml:"enabled,omitempty"` // nil = enabled
	Instructions string          `yaml:"instructions,omitempty"`
	DataMasking  *MaskingConfig  `yaml:"data_masking,omitempty"`
}

// IsEnabled reports whether the server may be assigned to agents.
func (c *MCPServerConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// MaskingConfig selects masking patterns applied to this server's tool
// results before they are audited or shown to the LLM.
type MaskingConfig struct {
	Enabled       bool     `yaml:"enabled"`
	PatternGroups []string `yaml:"pattern_groups,omitempty"`
	Patterns      []string `yaml:"patterns,omitempty"`
}

// AgentConfig describes an agent available for chain stages.
type AgentConfig struct {
	MCPServers         []string          `yaml:"mcp_servers"`
	CustomInstructions string            `yaml:"custom_instructions,omitempty"`
	IterationStrategy  IterationStrategy `yaml:"iteration_strategy,omitempty"`
	Description        string            `yaml:"description,omitempty"`
}

// StageConfig is one step of a chain.
type StageConfig struct {
	Name              string            `yaml:"name" json:"name"`
	Agent             string            `yaml:"agent" json:"agent"`
	IterationStrategy IterationStrategy `yaml:"iteration_strategy,omitempty" json:"iteration_strategy,omitempty"`
}

// ChainConfig routes one or more alert types through a sequence of stages.
type ChainConfig struct {
	AlertTypes  []string      `yaml:"alert_types" json:"alert_types"`
	Stages      []StageConfig `yaml:"stages" json:"stages"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
}

// ResolveStrategy returns the effective strategy for a stage:
// stage override, then agent default, then the system default.
func ResolveStrategy(stage StageConfig, agent *AgentConfig) IterationStrategy {
	if stage.IterationStrategy != "" {
		return stage.IterationStrategy
	}
	if agent != nil && agent.IterationStrategy != "" {
		return agent.IterationStrategy
	}
	return DefaultIterationStrategy
}
