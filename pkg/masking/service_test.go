package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarsy-bot/tarsy/pkg/config"
)

func newTestService(serverCfg config.MCPServerConfig) *Service {
	registry := config.NewMCPServerRegistry(map[string]config.MCPServerConfig{
		"test-server": serverCfg,
	})
	patterns := map[string]string{
		"api_key":  `(?i)(api[_-]?key\s*[:=]\s*)\S+`,
		"password": `(?i)(password\s*[:=]\s*)\S+`,
		"token":    `secret-token-\S+`,
		"broken":   `([unclosed`,
	}
	groups := map[string][]string{
		"credentials": {"api_key", "password"},
	}
	return NewService(registry, patterns, groups)
}

func TestMaskToolResultPatternGroup(t *testing.T) {
	s := newTestService(config.MCPServerConfig{
		DataMasking: &config.MaskingConfig{
			Enabled:       true,
			PatternGroups: []string{"credentials"},
		},
	})

	in := "api_key: sk-12345\nstatus: healthy\npassword=hunter2"
	out := s.MaskToolResult(in, "test-server")

	assert.Contains(t, out, "api_key: ***MASKED***")
	assert.Contains(t, out, "password=***MASKED***")
	assert.Contains(t, out, "status: healthy")
	assert.NotContains(t, out, "sk-12345")
	assert.NotContains(t, out, "hunter2")
}

func TestMaskToolResultIndividualPattern(t *testing.T) {
	s := newTestService(config.MCPServerConfig{
		DataMasking: &config.MaskingConfig{
			Enabled:  true,
			Patterns: []string{"token"},
		},
	})

	out := s.MaskToolResult("auth with secret-token-abc123 done", "test-server")
	assert.Equal(t, "auth with ***MASKED*** done", out)
}

func TestMaskToolResultPassthrough(t *testing.T) {
	secret := "api_key: sk-12345"

	t.Run("masking disabled", func(t *testing.T) {
		s := newTestService(config.MCPServerConfig{
			DataMasking: &config.MaskingConfig{Enabled: false, PatternGroups: []string{"credentials"}},
		})
		assert.Equal(t, secret, s.MaskToolResult(secret, "test-server"))
	})

	t.Run("no masking config", func(t *testing.T) {
		s := newTestService(config.MCPServerConfig{})
		assert.Equal(t, secret, s.MaskToolResult(secret, "test-server"))
	})

	t.Run("unknown server", func(t *testing.T) {
		s := newTestService(config.MCPServerConfig{})
		assert.Equal(t, secret, s.MaskToolResult(secret, "other-server"))
	})
}

func TestMaskToolResultSkipsInvalidAndUnknownPatterns(t *testing.T) {
	s := newTestService(config.MCPServerConfig{
		DataMasking: &config.MaskingConfig{
			Enabled:  true,
			Patterns: []string{"broken", "no-such-pattern", "token"},
		},
	})

	out := s.MaskToolResult("secret-token-xyz", "test-server")
	assert.Equal(t, "***MASKED***", out)
}
