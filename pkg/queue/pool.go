package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/services"
)

// WorkerPool owns the queue workers and the session cancel registry.
// WorkerCount doubles as the concurrency cap: each worker processes at most
// one session at a time.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	sessions *services.SessionService
	bus      *hooks.Bus
	opts     Options
	executor SessionExecutor

	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// active maps session_id to its cancel function for operator cancellation.
	mu      sync.RWMutex
	active  map[string]context.CancelFunc
	started bool
}

// NewWorkerPool creates a pool; Start spawns the workers.
func NewWorkerPool(podID string, client *ent.Client, sessions *services.SessionService, bus *hooks.Bus, opts Options, executor SessionExecutor) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		sessions: sessions,
		bus:      bus,
		opts:     opts,
		executor: executor,
		workers:  make([]*Worker, 0, opts.WorkerCount),
		stopCh:   make(chan struct{}),
		active:   make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines and the orphan detection loop. Safe to
// call more than once; repeat calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start", "pod_id", p.podID)
		return
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.opts.WorkerCount)
	for i := 0; i < p.opts.WorkerCount; i++ {
		worker := NewWorker(fmt.Sprintf("%s-worker-%d", p.podID, i), p.podID,
			p.client, p.sessions, p.bus, p.opts, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()
}

// Stop signals workers to stop and waits for them. Workers finish their
// current session before exiting.
func (p *WorkerPool) Stop() {
	if active := p.activeSessionIDs(); len(active) > 0 {
		slog.Info("Waiting for active sessions to finish",
			"count", len(active), "session_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Worker pool stopped")
}

// RegisterSession stores the cancel function for a session being processed
// on this pod.
func (p *WorkerPool) RegisterSession(sessionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[sessionID] = cancel
}

// UnregisterSession drops the cancel function when processing ends.
func (p *WorkerPool) UnregisterSession(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, sessionID)
}

// CancelSession cancels a session running on this pod. Returns false when
// the session is not active here.
func (p *WorkerPool) CancelSession(sessionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.active[sessionID]; ok {
		cancel()
		return true
	}
	return false
}

func (p *WorkerPool) activeSessionIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	return ids
}
