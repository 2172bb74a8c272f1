package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/ent/stageexecution"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/llm"
	"github.com/tarsy-bot/tarsy/pkg/mcp"
	"github.com/tarsy-bot/tarsy/pkg/models"
	"github.com/tarsy-bot/tarsy/pkg/runbook"
	"github.com/tarsy-bot/tarsy/pkg/services"
	"github.com/tarsy-bot/tarsy/test/util"
)

// seqLLM replays canned completions in order. An error entry fails that call.
type seqLLM struct {
	responses []string
	errs      map[int]error
	calls     int
}

func (s *seqLLM) Complete(_ context.Context, _ []llm.Message) (string, error) {
	idx := s.calls
	s.calls++
	if err, ok := s.errs[idx]; ok {
		return "", err
	}
	if idx >= len(s.responses) {
		return "", fmt.Errorf("seq llm exhausted after %d calls", idx)
	}
	return s.responses[idx], nil
}

func (s *seqLLM) ModelName() string { return "seq" }

// cancellingLLM cancels the session on its first call, simulating an
// operator cancellation landing mid-stage.
type cancellingLLM struct {
	cancel context.CancelFunc
}

func (c *cancellingLLM) Complete(ctx context.Context, _ []llm.Message) (string, error) {
	c.cancel()
	return "", ctx.Err()
}

func (c *cancellingLLM) ModelName() string { return "cancelling" }

// lifecycleRecorder collects lifecycle events for assertions.
type lifecycleRecorder struct {
	mu     sync.Mutex
	events []hooks.SessionLifecycleEvent
}

func (r *lifecycleRecorder) Name() string { return "lifecycle-recorder" }

func (r *lifecycleRecorder) OnLLMInteraction(context.Context, hooks.LLMInteractionEvent) {}

func (r *lifecycleRecorder) OnMCPInteraction(context.Context, hooks.MCPInteractionEvent) {}

func (r *lifecycleRecorder) OnSessionLifecycle(_ context.Context, event hooks.SessionLifecycleEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *lifecycleRecorder) byType(t hooks.LifecycleType) []hooks.SessionLifecycleEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []hooks.SessionLifecycleEvent
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type executorEnv struct {
	client   *ent.Client
	clocks   *services.Clocks
	sessions *services.SessionService
	stages   *services.StageService
	bus      *hooks.Bus
	cfg      *config.Config
}

func newExecutorEnv(t *testing.T) *executorEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	clocks := services.NewClocks()
	bus := hooks.NewBus()
	t.Cleanup(bus.Close)

	cfg := &config.Config{
		Settings: &config.Settings{StageTimeout: time.Minute},
		AgentRegistry: config.NewAgentRegistry(map[string]config.AgentConfig{
			"TriageAgent":    {IterationStrategy: config.IterationStrategyRegular},
			"SynthesisAgent": {IterationStrategy: config.IterationStrategyReactFinalAnalysis},
			"CollectorAgent": {IterationStrategy: config.IterationStrategyReactTools},
		}),
		MCPServerRegistry: config.NewMCPServerRegistry(map[string]config.MCPServerConfig{}),
	}

	return &executorEnv{
		client:   client,
		clocks:   clocks,
		sessions: services.NewSessionService(client, clocks),
		stages:   services.NewStageService(client, clocks),
		bus:      bus,
		cfg:      cfg,
	}
}

func (e *executorEnv) executor(client llm.Client) *ChainExecutor {
	factory := mcp.NewClientFactory(e.cfg.MCPServerRegistry, time.Second)
	return NewChainExecutor(e.cfg, e.sessions, e.stages, client, factory, nil, runbook.NewService(5*time.Second), e.bus)
}

func (e *executorEnv) createSession(t *testing.T, id string, alertData map[string]any, stages []map[string]any) *ent.AlertSession {
	t.Helper()
	session, err := e.sessions.CreateSession(context.Background(), models.CreateSessionInput{
		SessionID: id,
		AlertID:   "alert-" + id,
		AlertType: "kubernetes",
		AlertData: alertData,
		ChainID:   "test-chain",
		ChainDefinition: map[string]any{
			"alert_types": []any{"kubernetes"},
			"stages":      anySlice(stages),
		},
	})
	require.NoError(t, err)
	return session
}

func anySlice(stages []map[string]any) []any {
	out := make([]any, len(stages))
	for i, s := range stages {
		out[i] = s
	}
	return out
}

func TestChainExecutorAllStagesSucceed(t *testing.T) {
	env := newExecutorEnv(t)
	session := env.createSession(t, "s1", map[string]any{"namespace": "prod"}, []map[string]any{
		{"name": "triage", "agent": "TriageAgent"},
		{"name": "synthesize", "agent": "SynthesisAgent"},
	})

	client := &seqLLM{responses: []string{
		"Final Answer: pods in prod are crash-looping.",
		"Root cause: payment-api is OOMKilled.",
	}}

	result := env.executor(client).Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, alertsession.StatusCompleted, result.Status)
	assert.Equal(t, "Root cause: payment-api is OOMKilled.", result.FinalAnalysis)
	assert.Empty(t, result.ErrorMessage)
	assert.False(t, result.Cancelled)
	assert.Equal(t, 2, result.TotalStages)
	assert.Equal(t, 2, result.CompletedStages)

	stages, err := env.stages.ListStages(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, stages, 2)
	for _, s := range stages {
		assert.Equal(t, stageexecution.StatusCompleted, s.Status)
		require.NotNil(t, s.CompletedAtUs)
	}
	assert.Equal(t, "triage", stages[0].StageName)
	assert.Equal(t, "Root cause: payment-api is OOMKilled.", stages[1].StageOutput["final_analysis"])

	// The session points at the last stage that ran.
	reloaded, err := env.sessions.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, reloaded.CurrentStageIndex)
	assert.Equal(t, 1, *reloaded.CurrentStageIndex)
	require.NotNil(t, reloaded.CurrentStageID)
	assert.Equal(t, stages[1].ID, *reloaded.CurrentStageID)
}

func TestChainExecutorPartialOutcome(t *testing.T) {
	env := newExecutorEnv(t)
	session := env.createSession(t, "s1", nil, []map[string]any{
		{"name": "triage", "agent": "TriageAgent"},
		{"name": "enrich", "agent": "TriageAgent"},
		{"name": "synthesize", "agent": "SynthesisAgent"},
	})

	// The enrich stage's provider fails twice in a row, exhausting the
	// transient-failure retry and failing that stage alone.
	client := &seqLLM{
		responses: []string{
			"Final Answer: Triage analysis.",
			"", "",
			"Final analysis despite the enrich failure.",
		},
		errs: map[int]error{
			1: fmt.Errorf("provider overloaded"),
			2: fmt.Errorf("provider overloaded"),
		},
	}

	result := env.executor(client).Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, alertsession.StatusPartial, result.Status)
	assert.Equal(t, "1 of 3 stages failed", result.ErrorMessage)
	// Later stages still ran after the failure.
	assert.Equal(t, "Final analysis despite the enrich failure.", result.FinalAnalysis)

	stages, err := env.stages.ListStages(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, stageexecution.StatusCompleted, stages[0].Status)
	assert.Equal(t, stageexecution.StatusFailed, stages[1].Status)
	require.NotNil(t, stages[1].ErrorMessage)
	assert.Contains(t, *stages[1].ErrorMessage, "provider overloaded")
	assert.Equal(t, stageexecution.StatusCompleted, stages[2].Status)
}

func TestChainExecutorAllStagesFail(t *testing.T) {
	env := newExecutorEnv(t)
	session := env.createSession(t, "s1", nil, []map[string]any{
		{"name": "triage", "agent": "TriageAgent"},
	})

	client := &seqLLM{errs: map[int]error{
		0: fmt.Errorf("provider unavailable"),
		1: fmt.Errorf("provider unavailable"),
	}}

	result := env.executor(client).Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, alertsession.StatusFailed, result.Status)
	assert.Equal(t, "all stages failed", result.ErrorMessage)
	assert.Empty(t, result.FinalAnalysis)
}

func TestChainExecutorInvalidSnapshot(t *testing.T) {
	env := newExecutorEnv(t)
	ctx := context.Background()

	session, err := env.sessions.CreateSession(ctx, models.CreateSessionInput{
		SessionID:       "s1",
		AlertID:         "alert-s1",
		AlertType:       "kubernetes",
		ChainID:         "test-chain",
		ChainDefinition: map[string]any{"stages": "not-a-list"},
	})
	require.NoError(t, err)

	result := env.executor(&seqLLM{}).Execute(ctx, session)
	require.NotNil(t, result)
	assert.Equal(t, alertsession.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "invalid chain definition")

	t.Run("empty stage list", func(t *testing.T) {
		session, err := env.sessions.CreateSession(ctx, models.CreateSessionInput{
			SessionID:       "s2",
			AlertID:         "alert-s2",
			AlertType:       "kubernetes",
			ChainID:         "test-chain",
			ChainDefinition: map[string]any{"stages": []any{}},
		})
		require.NoError(t, err)

		result := env.executor(&seqLLM{}).Execute(ctx, session)
		assert.Equal(t, alertsession.StatusFailed, result.Status)
		assert.Contains(t, result.ErrorMessage, "has no stages")
	})

	t.Run("duplicate stage names", func(t *testing.T) {
		session, err := env.sessions.CreateSession(ctx, models.CreateSessionInput{
			SessionID: "s3",
			AlertID:   "alert-s3",
			AlertType: "kubernetes",
			ChainID:   "test-chain",
			ChainDefinition: map[string]any{
				"stages": []any{
					map[string]any{"name": "triage", "agent": "TriageAgent"},
					map[string]any{"name": "triage", "agent": "SynthesisAgent"},
				},
			},
		})
		require.NoError(t, err)

		result := env.executor(&seqLLM{}).Execute(ctx, session)
		assert.Equal(t, alertsession.StatusFailed, result.Status)
		assert.Contains(t, result.ErrorMessage, `duplicate stage name "triage"`)

		// No stage rows: the chain never started.
		stages, err := env.stages.ListStages(ctx, "s3")
		require.NoError(t, err)
		assert.Empty(t, stages)
	})
}

func TestChainExecutorUnknownAgentContinuesChain(t *testing.T) {
	env := newExecutorEnv(t)
	session := env.createSession(t, "s1", nil, []map[string]any{
		{"name": "triage", "agent": "GhostAgent"},
		{"name": "synthesize", "agent": "SynthesisAgent"},
	})

	client := &seqLLM{responses: []string{"Synthesis without triage."}}

	result := env.executor(client).Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, alertsession.StatusPartial, result.Status)
	assert.Equal(t, "1 of 2 stages failed", result.ErrorMessage)

	stages, err := env.stages.ListStages(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, stages, 2)
	assert.Equal(t, stageexecution.StatusFailed, stages[0].Status)
	require.NotNil(t, stages[0].ErrorMessage)
	assert.Contains(t, *stages[0].ErrorMessage, `agent "GhostAgent" not found`)
	assert.Equal(t, stageexecution.StatusCompleted, stages[1].Status)
}

func TestChainExecutorCancellation(t *testing.T) {
	env := newExecutorEnv(t)
	session := env.createSession(t, "s1", nil, []map[string]any{
		{"name": "triage", "agent": "TriageAgent"},
		{"name": "synthesize", "agent": "SynthesisAgent"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result := env.executor(&cancellingLLM{cancel: cancel}).Execute(ctx, session)
	require.NotNil(t, result)
	assert.Equal(t, alertsession.StatusFailed, result.Status)
	assert.Equal(t, "cancelled", result.ErrorMessage)
	assert.True(t, result.Cancelled)

	// The interrupted stage is failed as cancelled; later stages never get rows.
	stages, err := env.stages.ListStages(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, stages, 1)
	assert.Equal(t, stageexecution.StatusFailed, stages[0].Status)
	require.NotNil(t, stages[0].ErrorMessage)
	assert.Equal(t, "cancelled", *stages[0].ErrorMessage)
}

func TestChainExecutorRunbookFailureIsNonFatal(t *testing.T) {
	env := newExecutorEnv(t)
	recorder := &lifecycleRecorder{}
	env.bus.Subscribe(recorder)
	env.bus.Subscribe(hooks.NewAuditSubscriber(services.NewInteractionService(env.client, env.clocks)))

	session := env.createSession(t, "s1",
		map[string]any{"runbook": "http://127.0.0.1:1/runbook.md"},
		[]map[string]any{{"name": "triage", "agent": "TriageAgent"}})

	client := &seqLLM{responses: []string{"Final Answer: Analysis without runbook."}}

	result := env.executor(client).Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, alertsession.StatusCompleted, result.Status)

	env.bus.Flush()
	failures := recorder.byType(hooks.LifecycleRunbookFailed)
	require.Len(t, failures, 1)
	assert.Equal(t, "s1", failures[0].SessionID)
	assert.Equal(t, "test-chain", failures[0].ChainID)
	assert.NotEmpty(t, failures[0].Detail)

	// The failure is part of the persisted timeline, not just the live stream.
	detail, err := env.sessions.GetSessionDetail(context.Background(), "s1")
	require.NoError(t, err)
	var fetchFailures []map[string]any
	for _, entry := range detail.Timeline {
		if entry.Type == "lifecycle" && entry.Details["event_type"] == string(hooks.LifecycleRunbookFailed) {
			fetchFailures = append(fetchFailures, entry.Details)
		}
	}
	require.Len(t, fetchFailures, 1)
	assert.NotEmpty(t, fetchFailures[0]["detail"])
}

func TestChainExecutorStageLifecycleEvents(t *testing.T) {
	env := newExecutorEnv(t)
	recorder := &lifecycleRecorder{}
	env.bus.Subscribe(recorder)

	session := env.createSession(t, "s1", nil, []map[string]any{
		{"name": "triage", "agent": "TriageAgent"},
	})

	result := env.executor(&seqLLM{responses: []string{"Final Answer: done"}}).Execute(context.Background(), session)
	require.Equal(t, alertsession.StatusCompleted, result.Status)

	env.bus.Flush()
	started := recorder.byType(hooks.LifecycleStageStarted)
	completed := recorder.byType(hooks.LifecycleStageCompleted)
	require.Len(t, started, 1)
	require.Len(t, completed, 1)
	assert.Equal(t, "triage", started[0].StageName)
	assert.Equal(t, started[0].StageExecutionID, completed[0].StageExecutionID)

	// Chain progress travels with every stage event.
	assert.Equal(t, "test-chain", started[0].ChainID)
	assert.Equal(t, 1, started[0].TotalStages)
	assert.Equal(t, 0, started[0].CompletedStages)
	assert.Equal(t, 1, completed[0].TotalStages)
	assert.Equal(t, 1, completed[0].CompletedStages)
}

func TestChainExecutorSummaryFallback(t *testing.T) {
	env := newExecutorEnv(t)
	// A collection-only chain produces no analysis; the session still needs
	// one for the operator.
	session := env.createSession(t, "s1", nil, []map[string]any{
		{"name": "collect", "agent": "CollectorAgent"},
	})

	client := &seqLLM{responses: []string{"Final Answer: collection finished."}}

	result := env.executor(client).Execute(context.Background(), session)
	require.NotNil(t, result)
	assert.Equal(t, alertsession.StatusCompleted, result.Status)
	assert.Contains(t, result.FinalAnalysis, "No analysis was produced")
	assert.Contains(t, result.FinalAnalysis, "collect")
}

func TestFinalAnalysisFrom(t *testing.T) {
	results := []*models.StageResult{
		{StageName: "a", Status: models.StageCompleted, FinalAnalysis: "early analysis"},
		{StageName: "b", Status: models.StageCompleted},
		{StageName: "c", Status: models.StageFailed, FinalAnalysis: "failed analysis"},
	}
	// Most recent analysis from a successful stage wins; failed stages are
	// skipped.
	assert.Equal(t, "early analysis", finalAnalysisFrom(results))
	assert.Empty(t, finalAnalysisFrom(nil))
}

func TestStageOutputMap(t *testing.T) {
	out := stageOutputMap(&models.StageResult{
		Status:        models.StageCompleted,
		FinalAnalysis: "done",
		Iterations:    4,
		MCPResults: []models.MCPResult{
			{Server: "k8s", Tool: "pods_list", Params: map[string]any{"namespace": "prod"}, Result: "3 pods"},
			{Server: "k8s", Tool: "events_list", Result: "", Failed: true},
			{Server: "prom", Tool: "query", Result: "up"},
		},
	})
	assert.Equal(t, "completed", out["status"])
	assert.Equal(t, 4, out["iterations"])
	assert.Equal(t, 3, out["tool_calls"])
	assert.Equal(t, "done", out["final_analysis"])

	// Tool invocations are grouped per server with their params and results.
	grouped, ok := out["mcp_results"].(map[string][]map[string]any)
	require.True(t, ok)
	require.Len(t, grouped["k8s"], 2)
	assert.Equal(t, "pods_list", grouped["k8s"][0]["tool"])
	assert.Equal(t, map[string]any{"namespace": "prod"}, grouped["k8s"][0]["params"])
	assert.Equal(t, "3 pods", grouped["k8s"][0]["result"])
	assert.Equal(t, true, grouped["k8s"][1]["failed"])
	require.Len(t, grouped["prom"], 1)

	// No analysis or tool keys when the stage produced none.
	out = stageOutputMap(&models.StageResult{Status: models.StageCompleted})
	_, ok = out["final_analysis"]
	assert.False(t, ok)
	_, ok = out["mcp_results"]
	assert.False(t, ok)
}

func TestChainServerIDs(t *testing.T) {
	agents := config.NewAgentRegistry(map[string]config.AgentConfig{
		"A": {MCPServers: []string{"k8s", "prom"}},
		"B": {MCPServers: []string{"prom", "logs"}},
	})
	chain := &config.ChainConfig{Stages: []config.StageConfig{
		{Name: "one", Agent: "A"},
		{Name: "two", Agent: "B"},
		{Name: "three", Agent: "Missing"},
	}}

	ids := chainServerIDs(chain, agents)
	assert.Equal(t, []string{"k8s", "prom", "logs"}, ids)
}
