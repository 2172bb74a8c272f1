package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings holds environment-driven runtime configuration, as opposed to the
// YAML-driven chain/agent/server definitions.
type Settings struct {
	DatabaseURL          string
	ListenAddr           string
	DefaultLLMProvider   LLMProvider
	AnthropicAPIKey      string
	OpenAIAPIKey         string
	AnthropicModel       string
	OpenAIModel          string
	MaxConcurrentAlerts  int
	HistoryRetentionDays int
	CORSOrigins          []string
	LLMTimeout           time.Duration
	MCPTimeout           time.Duration
	RunbookTimeout       time.Duration
	StageTimeout         time.Duration
}

// LoadSettings reads runtime settings from the environment. Call after
// godotenv has populated the process environment.
func LoadSettings() (*Settings, error) {
	s := &Settings{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		ListenAddr:           envOr("LISTEN_ADDR", ":8000"),
		DefaultLLMProvider:   LLMProvider(envOr("DEFAULT_LLM_PROVIDER", string(LLMProviderAnthropic))),
		AnthropicAPIKey:      os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		AnthropicModel:       envOr("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		OpenAIModel:          envOr("OPENAI_MODEL", "gpt-4o"),
		MaxConcurrentAlerts:  DefaultMaxConcurrentAlerts,
		HistoryRetentionDays: DefaultHistoryRetentionDays,
		LLMTimeout:           DefaultLLMTimeout,
		MCPTimeout:           DefaultMCPTimeout,
		RunbookTimeout:       DefaultRunbookTimeout,
		StageTimeout:         DefaultStageTimeout,
	}

	var err error
	if s.MaxConcurrentAlerts, err = envInt("MAX_CONCURRENT_ALERTS", s.MaxConcurrentAlerts); err != nil {
		return nil, err
	}
	if s.MaxConcurrentAlerts < 1 {
		return nil, NewValidationError("MAX_CONCURRENT_ALERTS", "must be at least 1")
	}
	if s.HistoryRetentionDays, err = envInt("HISTORY_RETENTION_DAYS", s.HistoryRetentionDays); err != nil {
		return nil, err
	}
	if s.HistoryRetentionDays < 1 {
		return nil, NewValidationError("HISTORY_RETENTION_DAYS", "must be at least 1")
	}
	if s.LLMTimeout, err = envDuration("LLM_TIMEOUT", s.LLMTimeout); err != nil {
		return nil, err
	}
	if s.MCPTimeout, err = envDuration("MCP_TIMEOUT", s.MCPTimeout); err != nil {
		return nil, err
	}
	if s.RunbookTimeout, err = envDuration("RUNBOOK_TIMEOUT", s.RunbookTimeout); err != nil {
		return nil, err
	}
	if s.StageTimeout, err = envDuration("STAGE_TIMEOUT", s.StageTimeout); err != nil {
		return nil, err
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				s.CORSOrigins = append(s.CORSOrigins, o)
			}
		}
	}

	if err := s.DefaultLLMProvider.Validate(); err != nil {
		return nil, NewValidationError("DEFAULT_LLM_PROVIDER", err.Error())
	}
	if s.DatabaseURL == "" {
		return nil, NewValidationError("DATABASE_URL", "required")
	}
	switch s.DefaultLLMProvider {
	case LLMProviderAnthropic:
		if s.AnthropicAPIKey == "" {
			return nil, NewValidationError("ANTHROPIC_API_KEY", "required for anthropic provider")
		}
	case LLMProviderOpenAI:
		if s.OpenAIAPIKey == "" {
			return nil, NewValidationError("OPENAI_API_KEY", "required for openai provider")
		}
	}

	return s, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, NewValidationError(key, fmt.Sprintf("not an integer: %q", v))
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, NewValidationError(key, fmt.Sprintf("not a duration: %q", v))
	}
	return d, nil
}
