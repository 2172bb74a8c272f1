package config

import "sync"

// BuiltinConfig provides default agents, MCP servers, chains, and masking
// patterns so a bare deployment can process kubernetes alerts out of the box.
// User YAML adds to these; id collisions are rejected at merge time.
type BuiltinConfig struct {
	Agents          map[string]AgentConfig
	MCPServers      map[string]MCPServerConfig
	Chains          map[string]ChainConfig
	MaskingPatterns map[string]string
	PatternGroups   map[string][]string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration.
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(func() {
		builtinConfig = &BuiltinConfig{
			Agents:          builtinAgents(),
			MCPServers:      builtinMCPServers(),
			Chains:          builtinChains(),
			MaskingPatterns: builtinMaskingPatterns(),
			PatternGroups:   builtinPatternGroups(),
		}
	})
	return builtinConfig
}

func builtinAgents() map[string]AgentConfig {
	return map[string]AgentConfig{
		"KubernetesAgent": {
			Description:       "Kubernetes-specialized investigation agent",
			IterationStrategy: IterationStrategyReact,
			MCPServers:        []string{"kubernetes-server"},
		},
	}
}

func builtinMCPServers() map[string]MCPServerConfig {
	return map[string]MCPServerConfig{
		"kubernetes-server": {
			Transport: TransportConfig{
				Type:    TransportTypeStdio,
				Command: "npx",
				Args:    []string{"-y", "kubernetes-mcp-server@latest"},
			},
			Instructions: "Read-only Kubernetes cluster inspection. Prefer namespaced queries; never mutate cluster state during investigations.",
			DataMasking: &MaskingConfig{
				Enabled:       true,
				PatternGroups: []string{"kubernetes"},
			},
		},
	}
}

func builtinChains() map[string]ChainConfig {
	return map[string]ChainConfig{
		"kubernetes-agent-chain": {
			AlertTypes:  []string{"kubernetes", "NamespaceTerminating"},
			Description: "Single-stage kubernetes investigation",
			Stages: []StageConfig{
				{Name: "analysis", Agent: "KubernetesAgent"},
			},
		},
	}
}

func builtinMaskingPatterns() map[string]string {
	return map[string]string{
		"api_key":          `(?i)(api[_-]?key\s*[:=]\s*)\S+`,
		"password":         `(?i)(password\s*[:=]\s*)\S+`,
		"token":            `(?i)((?:bearer|auth)[_-]?token\s*[:=]\s*)\S+`,
		"certificate":      `-----BEGIN [A-Z ]+-----[\s\S]*?-----END [A-Z ]+-----`,
		"kubernetes_token": `(eyJhbGciOi[A-Za-z0-9_\-]+\.)[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]+`,
	}
}

func builtinPatternGroups() map[string][]string {
	return map[string][]string{
		"basic":      {"api_key", "password"},
		"secrets":    {"api_key", "password", "token"},
		"security":   {"api_key", "password", "token", "certificate"},
		"kubernetes": {"api_key", "password", "token", "certificate", "kubernetes_token"},
	}
}
