package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// TarsyYAMLConfig is the tarsy.yaml file structure. Unknown keys anywhere in
// the document are rejected.
type TarsyYAMLConfig struct {
	MCPServers  map[string]MCPServerConfig `yaml:"mcp_servers"`
	Agents      map[string]AgentConfig     `yaml:"agents"`
	AgentChains map[string]ChainConfig     `yaml:"agent_chains"`
}

func initialize(_ context.Context, configPath string) (*Config, error) {
	log := slog.With("config_path", configPath)
	log.Info("Initializing configuration")

	settings, err := LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	userCfg, err := loadTarsyYAML(configPath)
	if err != nil {
		return nil, NewLoadError(configPath, err)
	}

	builtin := GetBuiltinConfig()

	agents, err := mergeAgents(builtin.Agents, userCfg.Agents)
	if err != nil {
		return nil, err
	}
	mcpServers, err := mergeMCPServers(builtin.MCPServers, userCfg.MCPServers)
	if err != nil {
		return nil, err
	}
	chains, err := mergeChains(builtin.Chains, userCfg.AgentChains)
	if err != nil {
		return nil, err
	}

	agentRegistry := NewAgentRegistry(agents)
	mcpServerRegistry := NewMCPServerRegistry(mcpServers)
	chainRegistry, err := NewChainRegistry(chains)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Settings:          settings,
		AgentRegistry:     agentRegistry,
		MCPServerRegistry: mcpServerRegistry,
		ChainRegistry:     chainRegistry,
		MaskingPatterns:   builtin.MaskingPatterns,
		PatternGroups:     builtin.PatternGroups,
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"agents", stats.Agents,
		"chains", stats.Chains,
		"mcp_servers", stats.MCPServers)

	return cfg, nil
}

// loadTarsyYAML reads and parses tarsy.yaml after environment expansion.
// A missing file is not an error: built-ins alone are a valid deployment.
func loadTarsyYAML(path string) (*TarsyYAMLConfig, error) {
	cfg := &TarsyYAMLConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("No configuration file found, using built-ins", "path", path)
			return cfg, nil
		}
		return nil, err
	}

	expanded := ExpandEnv(data)

	dec := yaml.NewDecoder(bytes.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}
	return cfg, nil
}
