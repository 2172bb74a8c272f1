package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/tarsy-bot/tarsy/pkg/apperrors"
	"github.com/tarsy-bot/tarsy/pkg/config"
)

// maxCompletionTokens caps a single completion. Investigations are text-heavy
// but bounded; runaway generations only burn budget.
const maxCompletionTokens = 8192

// AnthropicClient implements Client on the Anthropic Messages API.
type AnthropicClient struct {
	messages *sdk.MessageService
	model    string
	timeout  time.Duration
}

// NewAnthropicClient builds the Anthropic adapter.
func NewAnthropicClient(apiKey, model string, timeout time.Duration) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, apperrors.Configuration("anthropic api key is required", nil)
	}
	if model == "" {
		return nil, apperrors.Configuration("anthropic model is required", nil)
	}
	if timeout <= 0 {
		timeout = config.DefaultLLMTimeout
	}
	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		messages: &client.Messages,
		model:    model,
		timeout:  timeout,
	}, nil
}

// ModelName implements Client.
func (c *AnthropicClient) ModelName() string { return c.model }

// Complete implements Client. System messages become system blocks; the rest
// map to user/assistant turns.
func (c *AnthropicClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", apperrors.LLM(errors.New("messages are required"))
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: maxCompletionTokens,
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.System = append(params.System, sdk.TextBlockParam{Text: m.Content})
		case RoleAssistant:
			params.Messages = append(params.Messages, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			params.Messages = append(params.Messages, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.messages.New(callCtx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded {
			return "", apperrors.LLMTimeout(err)
		}
		return "", apperrors.LLM(fmt.Errorf("anthropic messages.new: %w", err))
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
