package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/tarsy-bot/tarsy/pkg/apperrors"
	"github.com/tarsy-bot/tarsy/pkg/config"
)

// OpenAIClient implements Client on the OpenAI Chat Completions API.
type OpenAIClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient builds the OpenAI adapter.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, apperrors.Configuration("openai api key is required", nil)
	}
	if model == "" {
		return nil, apperrors.Configuration("openai model is required", nil)
	}
	if timeout <= 0 {
		timeout = config.DefaultLLMTimeout
	}
	return &OpenAIClient{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: timeout,
	}, nil
}

// ModelName implements Client.
func (c *OpenAIClient) ModelName() string { return c.model }

// Complete implements Client.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", apperrors.LLM(errors.New("messages are required"))
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	completion, err := c.client.Chat.Completions.New(callCtx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded {
			return "", apperrors.LLMTimeout(err)
		}
		return "", apperrors.LLM(fmt.Errorf("openai chat.completions.new: %w", err))
	}
	if len(completion.Choices) == 0 {
		return "", apperrors.LLM(errors.New("openai returned no choices"))
	}
	return completion.Choices[0].Message.Content, nil
}
