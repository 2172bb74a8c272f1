package hooks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSubscriber collects events, optionally blocking or panicking on
// delivery.
type recordingSubscriber struct {
	name    string
	mu      sync.Mutex
	llm     []LLMInteractionEvent
	mcp     []MCPInteractionEvent
	life    []SessionLifecycleEvent
	block   chan struct{} // when non-nil, deliveries wait here
	panicky bool
}

func (s *recordingSubscriber) Name() string { return s.name }

func (s *recordingSubscriber) OnLLMInteraction(_ context.Context, e LLMInteractionEvent) {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.llm = append(s.llm, e)
}

func (s *recordingSubscriber) OnMCPInteraction(_ context.Context, e MCPInteractionEvent) {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mcp = append(s.mcp, e)
}

func (s *recordingSubscriber) OnSessionLifecycle(_ context.Context, e SessionLifecycleEvent) {
	if s.panicky {
		panic("subscriber exploded")
	}
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.life = append(s.life, e)
}

func (s *recordingSubscriber) wait() {
	if s.block != nil {
		<-s.block
	}
}

func (s *recordingSubscriber) lifecycleTypes() []LifecycleType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LifecycleType, len(s.life))
	for i, e := range s.life {
		out[i] = e.Type
	}
	return out
}

func TestBusDeliversInPublishOrder(t *testing.T) {
	bus := NewBus()
	sub := &recordingSubscriber{name: "recorder"}
	bus.Subscribe(sub)

	bus.PublishSessionLifecycle(SessionLifecycleEvent{SessionID: "s1", Type: LifecycleSessionCreated})
	bus.PublishSessionLifecycle(SessionLifecycleEvent{SessionID: "s1", Type: LifecycleSessionStarted})
	bus.PublishSessionLifecycle(SessionLifecycleEvent{SessionID: "s1", Type: LifecycleCompleted})
	bus.Flush()

	assert.Equal(t, []LifecycleType{
		LifecycleSessionCreated,
		LifecycleSessionStarted,
		LifecycleCompleted,
	}, sub.lifecycleTypes())
}

func TestBusPublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	blocked := &recordingSubscriber{name: "slow", block: make(chan struct{})}
	bus.Subscribe(blocked)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.PublishLLMInteraction(LLMInteractionEvent{SessionID: "s1", ModelName: "m"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	close(blocked.block)
	bus.Flush()
	blocked.mu.Lock()
	defer blocked.mu.Unlock()
	assert.Len(t, blocked.llm, 100)
}

func TestBusIsolatesPanickingSubscriber(t *testing.T) {
	bus := NewBus()
	bad := &recordingSubscriber{name: "bad", panicky: true}
	good := &recordingSubscriber{name: "good"}
	bus.Subscribe(bad)
	bus.Subscribe(good)

	bus.PublishSessionLifecycle(SessionLifecycleEvent{SessionID: "s1", Type: LifecycleFailed})
	bus.PublishMCPInteraction(MCPInteractionEvent{SessionID: "s1", ServerName: "srv"})
	bus.Flush()

	assert.Equal(t, []LifecycleType{LifecycleFailed}, good.lifecycleTypes())
	good.mu.Lock()
	defer good.mu.Unlock()
	require.Len(t, good.mcp, 1)
	assert.Equal(t, "srv", good.mcp[0].ServerName)
}

func TestBusCloseDropsLaterEvents(t *testing.T) {
	bus := NewBus()
	sub := &recordingSubscriber{name: "recorder"}
	bus.Subscribe(sub)

	bus.PublishSessionLifecycle(SessionLifecycleEvent{SessionID: "s1", Type: LifecycleSessionCreated})
	bus.Close()
	bus.PublishSessionLifecycle(SessionLifecycleEvent{SessionID: "s1", Type: LifecycleCompleted})

	assert.Equal(t, []LifecycleType{LifecycleSessionCreated}, sub.lifecycleTypes())
}

func TestBusFlushWithNoSubscribers(t *testing.T) {
	bus := NewBus()
	bus.PublishSessionLifecycle(SessionLifecycleEvent{SessionID: "s1", Type: LifecycleSessionCreated})
	bus.Flush() // must not hang or panic
}
