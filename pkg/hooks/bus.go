package hooks

import (
	"context"
	"log/slog"
	"sync"
)

// Subscriber receives pipeline events. Implementations must tolerate
// concurrent sessions; calls for one subscriber are delivered sequentially
// in publish order.
type Subscriber interface {
	Name() string
	OnLLMInteraction(ctx context.Context, event LLMInteractionEvent)
	OnMCPInteraction(ctx context.Context, event MCPInteractionEvent)
	OnSessionLifecycle(ctx context.Context, event SessionLifecycleEvent)
}

// Bus fans events out to subscribers. Publishing never blocks and never
// returns an error: a slow or panicking subscriber affects neither the
// pipeline nor the other subscribers. With no subscribers, events are
// dropped silently.
type Bus struct {
	mu      sync.Mutex
	workers []*subscriberWorker
	closed  bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe attaches a subscriber and starts its delivery worker. Must not
// be called after Close.
func (b *Bus) Subscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	w := newSubscriberWorker(s)
	b.workers = append(b.workers, w)
}

// PublishLLMInteraction delivers an LLM interaction event to all subscribers.
func (b *Bus) PublishLLMInteraction(event LLMInteractionEvent) {
	b.publish(func(ctx context.Context, s Subscriber) {
		s.OnLLMInteraction(ctx, event)
	})
}

// PublishMCPInteraction delivers an MCP interaction event to all subscribers.
func (b *Bus) PublishMCPInteraction(event MCPInteractionEvent) {
	b.publish(func(ctx context.Context, s Subscriber) {
		s.OnMCPInteraction(ctx, event)
	})
}

// PublishSessionLifecycle delivers a lifecycle event to all subscribers.
func (b *Bus) PublishSessionLifecycle(event SessionLifecycleEvent) {
	b.publish(func(ctx context.Context, s Subscriber) {
		s.OnSessionLifecycle(ctx, event)
	})
}

func (b *Bus) publish(deliver func(context.Context, Subscriber)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, w := range b.workers {
		w.enqueue(deliver)
	}
}

// Flush blocks until every subscriber has processed all events published
// before the call. Intended for graceful shutdown and tests.
func (b *Bus) Flush() {
	b.mu.Lock()
	workers := make([]*subscriberWorker, len(b.workers))
	copy(workers, b.workers)
	b.mu.Unlock()

	for _, w := range workers {
		w.flush()
	}
}

// Close flushes and stops all delivery workers. The bus drops all events
// published afterwards.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	workers := b.workers
	b.mu.Unlock()

	for _, w := range workers {
		w.stop()
	}
}

// subscriberWorker serializes deliveries to one subscriber through an
// unbounded FIFO, so publishing never blocks even when the subscriber is
// slow.
type subscriberWorker struct {
	sub  Subscriber
	mu   sync.Mutex
	cond *sync.Cond
	// queue holds pending deliveries; pending counts queued plus in-flight.
	queue   []func(context.Context, Subscriber)
	pending int
	stopped bool
}

func newSubscriberWorker(s Subscriber) *subscriberWorker {
	w := &subscriberWorker{sub: s}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

func (w *subscriberWorker) enqueue(deliver func(context.Context, Subscriber)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.queue = append(w.queue, deliver)
	w.pending++
	w.cond.Broadcast()
}

func (w *subscriberWorker) run() {
	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.stopped {
			w.cond.Wait()
		}
		if w.stopped && len(w.queue) == 0 {
			w.mu.Unlock()
			return
		}
		deliver := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		w.deliverSafely(deliver)

		w.mu.Lock()
		w.pending--
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}

func (w *subscriberWorker) deliverSafely(deliver func(context.Context, Subscriber)) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Hook subscriber panicked",
				"subscriber", w.sub.Name(), "panic", r)
		}
	}()
	deliver(context.Background(), w.sub)
}

func (w *subscriberWorker) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.pending > 0 {
		w.cond.Wait()
	}
}

func (w *subscriberWorker) stop() {
	w.mu.Lock()
	for w.pending > 0 && !w.stopped {
		w.cond.Wait()
	}
	w.stopped = true
	w.cond.Broadcast()
	w.mu.Unlock()
}
