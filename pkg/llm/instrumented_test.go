package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/pkg/hooks"
)

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) Complete(context.Context, []Message) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) ModelName() string { return "fake-model" }

type llmRecorder struct {
	mu     sync.Mutex
	events []hooks.LLMInteractionEvent
}

func (r *llmRecorder) Name() string { return "llm-recorder" }

func (r *llmRecorder) OnLLMInteraction(_ context.Context, event hooks.LLMInteractionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *llmRecorder) OnMCPInteraction(context.Context, hooks.MCPInteractionEvent) {}

func (r *llmRecorder) OnSessionLifecycle(context.Context, hooks.SessionLifecycleEvent) {}

func (r *llmRecorder) all() []hooks.LLMInteractionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]hooks.LLMInteractionEvent(nil), r.events...)
}

func TestInstrumentedClientPublishesSuccess(t *testing.T) {
	bus := hooks.NewBus()
	defer bus.Close()
	recorder := &llmRecorder{}
	bus.Subscribe(recorder)

	client := NewInstrumentedClient(&fakeClient{response: "the analysis"}, bus, "s1", "exec-1")

	text, err := client.Complete(context.Background(), []Message{
		SystemMessage("be helpful"),
		UserMessage("investigate"),
	})
	require.NoError(t, err)
	assert.Equal(t, "the analysis", text)
	assert.Equal(t, "fake-model", client.ModelName())

	bus.Flush()
	events := recorder.all()
	require.Len(t, events, 1)
	event := events[0]
	assert.Equal(t, "s1", event.SessionID)
	assert.Equal(t, "exec-1", event.StageExecutionID)
	assert.Equal(t, "fake-model", event.ModelName)
	assert.True(t, event.Success)

	// Conversation carries the request turns plus the response.
	require.Len(t, event.Conversation, 3)
	assert.Equal(t, RoleSystem, event.Conversation[0]["role"])
	assert.Equal(t, RoleAssistant, event.Conversation[2]["role"])
	assert.Equal(t, "the analysis", event.Conversation[2]["content"])
}

func TestInstrumentedClientPublishesFailure(t *testing.T) {
	bus := hooks.NewBus()
	defer bus.Close()
	recorder := &llmRecorder{}
	bus.Subscribe(recorder)

	client := NewInstrumentedClient(&fakeClient{err: errors.New("rate limited")}, bus, "s1", "exec-1")

	_, err := client.Complete(context.Background(), []Message{UserMessage("investigate")})
	require.Error(t, err)

	bus.Flush()
	events := recorder.all()
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	// No assistant turn on failure.
	require.Len(t, events[0].Conversation, 1)
	assert.Equal(t, RoleUser, events[0].Conversation[0]["role"])
}
