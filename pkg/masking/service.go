// Package masking redacts secrets from MCP tool results before they reach
// the audit store or the LLM.
package masking

import (
	"log/slog"
	"regexp"

	"github.com/tarsy-bot/tarsy/pkg/config"
)

const maskReplacement = "***MASKED***"

// Service applies per-server masking configuration. Created once at startup;
// stateless aside from compiled patterns, so safe for concurrent sessions.
type Service struct {
	registry *config.MCPServerRegistry
	patterns map[string]*regexp.Regexp // pattern name → compiled regex
	groups   map[string][]string       // group name → pattern names
}

// NewService compiles the built-in patterns eagerly. Invalid patterns are
// logged and skipped rather than failing startup.
func NewService(registry *config.MCPServerRegistry, patterns map[string]string, groups map[string][]string) *Service {
	s := &Service{
		registry: registry,
		patterns: make(map[string]*regexp.Regexp, len(patterns)),
		groups:   groups,
	}
	for name, expr := range patterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			slog.Warn("Skipping invalid masking pattern", "pattern", name, "error", err)
			continue
		}
		s.patterns[name] = re
	}
	slog.Info("Masking service initialized", "patterns", len(s.patterns))
	return s
}

// MaskToolResult applies the server's masking configuration to tool result
// content. Servers without masking config pass content through unchanged.
func (s *Service) MaskToolResult(content, serverID string) string {
	server, err := s.registry.Get(serverID)
	if err != nil || server.DataMasking == nil || !server.DataMasking.Enabled {
		return content
	}

	for _, group := range server.DataMasking.PatternGroups {
		for _, name := range s.groups[group] {
			content = s.apply(name, content)
		}
	}
	for _, name := range server.DataMasking.Patterns {
		content = s.apply(name, content)
	}
	return content
}

func (s *Service) apply(patternName, content string) string {
	re, ok := s.patterns[patternName]
	if !ok {
		return content
	}
	return re.ReplaceAllStringFunc(content, func(match string) string {
		// Preserve a leading capture (key name and separator) when the
		// pattern defines one, masking only the value.
		if sub := re.FindStringSubmatch(match); len(sub) > 1 && sub[1] != "" {
			return sub[1] + maskReplacement
		}
		return maskReplacement
	})
}
