// Package config loads and validates tarsy configuration: YAML-defined MCP
// servers, agents, and alert chains, plus environment-driven runtime
// settings. Registries are immutable after Initialize.
package config

import "context"

// Config is the fully loaded, validated configuration.
type Config struct {
	Settings *Settings

	AgentRegistry     *AgentRegistry
	MCPServerRegistry *MCPServerRegistry
	ChainRegistry     *ChainRegistry

	// MaskingPatterns and PatternGroups feed pkg/masking.
	MaskingPatterns map[string]string
	PatternGroups   map[string][]string
}

// Stats summarizes registry sizes for startup logging.
type Stats struct {
	Agents     int
	Chains     int
	MCPServers int
}

// Stats returns registry sizes.
func (c *Config) Stats() Stats {
	return Stats{
		Agents:     c.AgentRegistry.Len(),
		Chains:     c.ChainRegistry.Len(),
		MCPServers: c.MCPServerRegistry.Len(),
	}
}

// Initialize loads, merges, and validates the full configuration.
// configPath points at tarsy.yaml; an empty path uses built-ins only.
func Initialize(ctx context.Context, configPath string) (*Config, error) {
	return initialize(ctx, configPath)
}
