package llm

import (
	"context"
	"time"

	"github.com/tarsy-bot/tarsy/pkg/hooks"
)

// InstrumentedClient wraps a Client and publishes every completion attempt
// on the hook bus, tagged with the owning session and stage. One instance is
// created per stage execution.
type InstrumentedClient struct {
	inner            Client
	bus              *hooks.Bus
	sessionID        string
	stageExecutionID string
}

// NewInstrumentedClient scopes a client to a session and stage.
func NewInstrumentedClient(inner Client, bus *hooks.Bus, sessionID, stageExecutionID string) *InstrumentedClient {
	return &InstrumentedClient{
		inner:            inner,
		bus:              bus,
		sessionID:        sessionID,
		stageExecutionID: stageExecutionID,
	}
}

// ModelName implements Client.
func (c *InstrumentedClient) ModelName() string { return c.inner.ModelName() }

// Complete implements Client. The published conversation contains the full
// request plus the response turn (or the error).
func (c *InstrumentedClient) Complete(ctx context.Context, messages []Message) (string, error) {
	start := time.Now()
	text, err := c.inner.Complete(ctx, messages)
	duration := time.Since(start)

	conversation := make([]map[string]any, 0, len(messages)+1)
	for _, m := range messages {
		conversation = append(conversation, map[string]any{"role": m.Role, "content": m.Content})
	}
	event := hooks.LLMInteractionEvent{
		SessionID:        c.sessionID,
		StageExecutionID: c.stageExecutionID,
		ModelName:        c.inner.ModelName(),
		Conversation:     conversation,
		Duration:         duration,
		Success:          err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	} else {
		event.Conversation = append(event.Conversation,
			map[string]any{"role": RoleAssistant, "content": text})
	}
	c.bus.PublishLLMInteraction(event)

	return text, err
}
