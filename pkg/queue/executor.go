package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tarsy-bot/tarsy/ent"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/agent/controller"
	"github.com/tarsy-bot/tarsy/pkg/agent/prompt"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/llm"
	"github.com/tarsy-bot/tarsy/pkg/masking"
	"github.com/tarsy-bot/tarsy/pkg/mcp"
	"github.com/tarsy-bot/tarsy/pkg/models"
	"github.com/tarsy-bot/tarsy/pkg/runbook"
	"github.com/tarsy-bot/tarsy/pkg/services"
)

// ChainExecutor implements SessionExecutor: it runs a claimed session
// through every stage of its chain snapshot, sequentially and without
// short-circuiting. A failed stage is recorded and the chain moves on, so
// later stages still see whatever earlier stages managed to collect.
type ChainExecutor struct {
	cfg        *config.Config
	sessions   *services.SessionService
	stages     *services.StageService
	llmClient  llm.Client
	mcpFactory *mcp.ClientFactory
	masker     *masking.Service
	runbooks   *runbook.Service
	bus        *hooks.Bus
}

// NewChainExecutor creates the executor. masker may be nil.
func NewChainExecutor(cfg *config.Config, sessions *services.SessionService, stages *services.StageService, llmClient llm.Client, mcpFactory *mcp.ClientFactory, masker *masking.Service, runbooks *runbook.Service, bus *hooks.Bus) *ChainExecutor {
	return &ChainExecutor{
		cfg:        cfg,
		sessions:   sessions,
		stages:     stages,
		llmClient:  llmClient,
		mcpFactory: mcpFactory,
		masker:     masker,
		runbooks:   runbooks,
		bus:        bus,
	}
}

// Execute runs the session through its chain snapshot and returns the
// terminal outcome. The caller persists it.
func (e *ChainExecutor) Execute(ctx context.Context, session *ent.AlertSession) *ExecutionResult {
	logger := slog.With(
		"session_id", session.ID,
		"chain_id", session.ChainID,
		"alert_type", session.AlertType,
	)
	logger.Info("Chain executor: starting")

	// The chain definition was snapshotted at submission time. Config changes
	// after submission never affect an already-accepted session.
	chain, err := chainFromSnapshot(session.ChainDefinition)
	if err != nil {
		logger.Error("Invalid chain snapshot", "error", err)
		return &ExecutionResult{
			Status:       alertsession.StatusFailed,
			ErrorMessage: fmt.Sprintf("invalid chain definition: %v", err),
		}
	}
	if len(chain.Stages) == 0 {
		return &ExecutionResult{
			Status:       alertsession.StatusFailed,
			ErrorMessage: fmt.Sprintf("chain %q has no stages", session.ChainID),
		}
	}

	data := models.NewAlertProcessingData(session.AlertType, session.AlertData)
	data.ChainID = session.ChainID
	data.RunbookContent = e.fetchRunbook(ctx, session, logger)

	// One MCP client per session; its transports outlive individual stages.
	mcpClient := e.mcpFactory.NewSessionClient(ctx, chainServerIDs(chain, e.cfg.AgentRegistry))
	defer func() { _ = mcpClient.Close() }()

	cancelled := false
	for i, stageCfg := range chain.Stages {
		if ctx.Err() != nil {
			// Stage rows for never-started stages are not created.
			cancelled = true
			break
		}
		if e.runStage(ctx, session, data, mcpClient, stageCfg, i, len(chain.Stages)) {
			cancelled = true
			break
		}
	}

	return e.finalize(session, chain, data, cancelled, logger)
}

// runStage executes one stage end to end and records its outcome. Returns
// true when the session context was cancelled during the stage.
func (e *ChainExecutor) runStage(ctx context.Context, session *ent.AlertSession, data *models.AlertProcessingData, mcpClient *mcp.Client, stageCfg config.StageConfig, index, total int) (cancelled bool) {
	logger := slog.With("session_id", session.ID, "stage", stageCfg.Name, "stage_index", index)

	agentCfg, err := e.cfg.AgentRegistry.Get(stageCfg.Agent)
	strategy := config.ResolveStrategy(stageCfg, agentCfg)

	executionID := uuid.NewString()
	if _, createErr := e.stages.CreateStage(ctx, services.CreateStageInput{
		ExecutionID:       executionID,
		SessionID:         session.ID,
		StageID:           fmt.Sprintf("%d-%s", index, stageCfg.Name),
		StageName:         stageCfg.Name,
		Agent:             stageCfg.Agent,
		StageIndex:        index,
		IterationStrategy: string(strategy),
	}); createErr != nil {
		logger.Error("Failed to create stage record", "error", createErr)
		data.RecordStageResult(stageCfg.Name, &models.StageResult{
			StageName: stageCfg.Name,
			Status:    models.StageFailed,
			Error:     fmt.Sprintf("failed to create stage record: %v", createErr),
		})
		return false
	}
	if startErr := e.stages.StartStage(ctx, executionID, session.ID); startErr != nil {
		logger.Error("Failed to start stage record", "error", startErr)
	}
	if curErr := e.sessions.SetCurrentStage(ctx, session.ID, index, executionID); curErr != nil {
		logger.Error("Failed to update current stage pointer", "error", curErr)
	}
	e.publishStage(hooks.LifecycleStageStarted, session, executionID, stageCfg.Name, index, total, index, "")

	if err != nil {
		// Unknown agent: config drifted since submission. Recorded like any
		// other stage failure; the chain continues.
		e.recordStageFailure(session, executionID, stageCfg.Name, index, total, data,
			fmt.Sprintf("agent %q not found: %v", stageCfg.Agent, err), nil)
		return false
	}

	result, runErr := e.runAgent(ctx, session, data, mcpClient, agentCfg, stageCfg, strategy, executionID)

	if ctx.Err() != nil {
		// Operator cancellation or shutdown: this stage fails as cancelled
		// and no further stage rows are created.
		e.recordStageFailure(session, executionID, stageCfg.Name, index, total, data, "cancelled", result)
		return true
	}
	if runErr != nil {
		e.recordStageFailure(session, executionID, stageCfg.Name, index, total, data, runErr.Error(), result)
		return false
	}
	if !result.Succeeded() {
		e.recordStageFailure(session, executionID, stageCfg.Name, index, total, data, result.Error, result)
		return false
	}

	data.RecordStageResult(stageCfg.Name, result)
	if completeErr := e.stages.CompleteStage(ctx, executionID, session.ID, stageOutputMap(result)); completeErr != nil {
		logger.Error("Failed to record stage completion", "error", completeErr)
	}
	e.publishStage(hooks.LifecycleStageCompleted, session, executionID, stageCfg.Name, index, total, index+1, "")
	return false
}

// runAgent assembles the per-stage dependencies and runs the agent under
// the stage timeout.
func (e *ChainExecutor) runAgent(ctx context.Context, session *ent.AlertSession, data *models.AlertProcessingData, mcpClient *mcp.Client, agentCfg *config.AgentConfig, stageCfg config.StageConfig, strategy config.IterationStrategy, executionID string) (*models.StageResult, error) {
	instrumented := llm.NewInstrumentedClient(e.llmClient, e.bus, session.ID, executionID)
	tools := mcp.NewToolExecutor(mcpClient, e.cfg.MCPServerRegistry, agentCfg.MCPServers,
		e.masker, e.bus, session.ID, executionID)
	builder := prompt.NewBuilder(e.cfg.MCPServerRegistry, agentCfg)

	ag := agent.New(stageCfg.Agent, agentCfg, instrumented, tools, builder, controller.ForStrategy)

	stageCtx, cancel := context.WithTimeout(ctx, e.cfg.Settings.StageTimeout)
	defer cancel()

	result, err := ag.ProcessAlert(stageCtx, data, session.ID, executionID, strategy, stageCfg.Name)
	if err != nil && ctx.Err() == nil && stageCtx.Err() != nil {
		// The stage deadline fired while the session is still live.
		return result, fmt.Errorf("stage timed out after %v", e.cfg.Settings.StageTimeout)
	}
	return result, err
}

// recordStageFailure persists a failed stage and mirrors it into the
// processing data so later stages and finalization see it. A partial result
// keeps the tool data collected before the failure.
func (e *ChainExecutor) recordStageFailure(session *ent.AlertSession, executionID, stageName string, index, total int, data *models.AlertProcessingData, errMsg string, partial *models.StageResult) {
	failed := &models.StageResult{
		StageName: stageName,
		Status:    models.StageFailed,
		Error:     errMsg,
	}
	if partial != nil {
		failed.MCPResults = partial.MCPResults
		failed.Iterations = partial.Iterations
	}
	data.RecordStageResult(stageName, failed)

	// Background-context write: must land even when the session context is
	// cancelled.
	if err := e.stages.FailStage(context.Background(), executionID, session.ID, errMsg); err != nil {
		slog.Error("Failed to record stage failure",
			"session_id", session.ID, "stage", stageName, "error", err)
	}
	e.publishStage(hooks.LifecycleStageFailed, session, executionID, stageName, index, total, index+1, errMsg)
}

// finalize derives the session outcome from the recorded stage results.
func (e *ChainExecutor) finalize(session *ent.AlertSession, chain *config.ChainConfig, data *models.AlertProcessingData, cancelled bool, logger *slog.Logger) *ExecutionResult {
	results := data.StageResults()
	succeeded := 0
	for _, r := range results {
		if r.Succeeded() {
			succeeded++
		}
	}

	if cancelled {
		logger.Info("Chain executor: session cancelled",
			"stages_run", len(results), "stages_succeeded", succeeded)
		return &ExecutionResult{
			Status:          alertsession.StatusFailed,
			FinalAnalysis:   finalAnalysisFrom(results),
			ErrorMessage:    "cancelled",
			Cancelled:       true,
			TotalStages:     len(chain.Stages),
			CompletedStages: len(results),
		}
	}

	status := alertsession.StatusCompleted
	var errorMessage string
	switch {
	case succeeded == len(chain.Stages):
		status = alertsession.StatusCompleted
	case succeeded > 0:
		status = alertsession.StatusPartial
		errorMessage = fmt.Sprintf("%d of %d stages failed", len(chain.Stages)-succeeded, len(chain.Stages))
	default:
		status = alertsession.StatusFailed
		errorMessage = "all stages failed"
	}

	analysis := finalAnalysisFrom(results)
	if analysis == "" && succeeded > 0 {
		analysis = summarizeStages(results)
	}

	logger.Info("Chain executor: finished",
		"status", status, "stages_succeeded", succeeded, "stages_total", len(chain.Stages))
	return &ExecutionResult{
		Status:          status,
		FinalAnalysis:   analysis,
		ErrorMessage:    errorMessage,
		TotalStages:     len(chain.Stages),
		CompletedStages: len(results),
	}
}

// fetchRunbook downloads the session's runbook, if the alert references one.
// Failures are non-fatal: the chain runs without runbook context and the
// failure is published as a lifecycle event.
func (e *ChainExecutor) fetchRunbook(ctx context.Context, session *ent.AlertSession, logger *slog.Logger) string {
	url, _ := session.AlertData["runbook"].(string)
	if url == "" {
		return ""
	}
	content, err := e.runbooks.Fetch(ctx, url)
	if err != nil {
		logger.Warn("Runbook fetch failed, continuing without runbook",
			"url", url, "error", err)
		e.bus.PublishSessionLifecycle(hooks.SessionLifecycleEvent{
			SessionID: session.ID,
			Type:      hooks.LifecycleRunbookFailed,
			ChainID:   session.ChainID,
			Detail:    err.Error(),
		})
		return ""
	}
	return content
}

func (e *ChainExecutor) publishStage(t hooks.LifecycleType, session *ent.AlertSession, executionID, stageName string, index, total, completed int, detail string) {
	e.bus.PublishSessionLifecycle(hooks.SessionLifecycleEvent{
		SessionID:        session.ID,
		Type:             t,
		ChainID:          session.ChainID,
		StageExecutionID: executionID,
		StageName:        stageName,
		StageIndex:       index,
		TotalStages:      total,
		CompletedStages:  completed,
		Detail:           detail,
	})
}

// chainFromSnapshot decodes the chain definition stored on the session row.
// Stage names must be unique: results are keyed by name, so a duplicate
// would silently shadow an earlier stage.
func chainFromSnapshot(snapshot map[string]interface{}) (*config.ChainConfig, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	var chain config.ChainConfig
	if err := json.Unmarshal(raw, &chain); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(chain.Stages))
	for _, stage := range chain.Stages {
		if seen[stage.Name] {
			return nil, fmt.Errorf("duplicate stage name %q", stage.Name)
		}
		seen[stage.Name] = true
	}
	return &chain, nil
}

// chainServerIDs collects the MCP servers any stage of the chain may use.
func chainServerIDs(chain *config.ChainConfig, agents *config.AgentRegistry) []string {
	seen := map[string]bool{}
	var ids []string
	for _, stage := range chain.Stages {
		agentCfg, err := agents.Get(stage.Agent)
		if err != nil {
			continue
		}
		for _, serverID := range agentCfg.MCPServers {
			if !seen[serverID] {
				seen[serverID] = true
				ids = append(ids, serverID)
			}
		}
	}
	return ids
}

// finalAnalysisFrom walks the stage results backwards for the most recent
// analysis a successful stage produced.
func finalAnalysisFrom(results []*models.StageResult) string {
	for i := len(results) - 1; i >= 0; i-- {
		if results[i].Succeeded() && results[i].FinalAnalysis != "" {
			return results[i].FinalAnalysis
		}
	}
	return ""
}

// summarizeStages synthesizes a fallback analysis when no stage produced
// one, e.g. a chain ending in a collection-only stage.
func summarizeStages(results []*models.StageResult) string {
	summary := "No analysis was produced by the chain. Stage outcomes:\n"
	for _, r := range results {
		line := fmt.Sprintf("- %s: %s", r.StageName, r.Status)
		if r.Error != "" {
			line += " (" + r.Error + ")"
		}
		if n := len(r.MCPResults); n > 0 {
			line += fmt.Sprintf(", %d tool calls recorded", n)
		}
		summary += line + "\n"
	}
	return summary
}

// stageOutputMap shapes a successful stage result for the stage_output
// column. Tool invocations are grouped by server so consumers can replay
// what each MCP server contributed.
func stageOutputMap(result *models.StageResult) map[string]any {
	out := map[string]any{
		"status":     string(result.Status),
		"iterations": result.Iterations,
		"tool_calls": len(result.MCPResults),
	}
	if result.FinalAnalysis != "" {
		out["final_analysis"] = result.FinalAnalysis
	}
	if len(result.MCPResults) > 0 {
		grouped := make(map[string][]map[string]any)
		for _, r := range result.MCPResults {
			call := map[string]any{
				"tool":   r.Tool,
				"result": r.Result,
			}
			if r.Params != nil {
				call["params"] = r.Params
			}
			if r.Failed {
				call["failed"] = true
			}
			grouped[r.Server] = append(grouped[r.Server], call)
		}
		out["mcp_results"] = grouped
	}
	return out
}
