// Package llm provides the unified LLM client interface and its provider
// adapters. Controllers speak plain role/content messages; adapters translate
// to the provider SDKs.
package llm

import (
	"context"

	"github.com/tarsy-bot/tarsy/pkg/config"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SystemMessage builds a system turn.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant turn.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Client is the provider-independent completion interface. Complete returns
// the assistant's text for the given conversation. Implementations apply the
// configured per-call timeout and classify failures via pkg/apperrors.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
	ModelName() string
}

// NewFromSettings builds the provider adapter selected by
// DEFAULT_LLM_PROVIDER.
func NewFromSettings(settings *config.Settings) (Client, error) {
	switch settings.DefaultLLMProvider {
	case config.LLMProviderOpenAI:
		return NewOpenAIClient(settings.OpenAIAPIKey, settings.OpenAIModel, settings.LLMTimeout)
	default:
		return NewAnthropicClient(settings.AnthropicAPIKey, settings.AnthropicModel, settings.LLMTimeout)
	}
}
