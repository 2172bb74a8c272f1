package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tarsy-bot/tarsy/pkg/apperrors"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/llm"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// ControllerFactory returns the controller for a resolved strategy.
// Wired to controller.ForStrategy; a function type keeps this package free
// of a dependency on its own subpackage.
type ControllerFactory func(strategy config.IterationStrategy) (IterationController, error)

// Agent runs one chain stage: it resolves the iteration strategy, assembles
// the execution context, and delegates to the strategy's controller.
type Agent struct {
	agentID     string
	agentCfg    *config.AgentConfig
	llmClient   llm.Client
	tools       ToolExecutor
	prompt      PromptBuilder
	controllers ControllerFactory
	logger      *slog.Logger
}

// New creates an Agent for one stage execution. The llm client and tool
// executor are expected to be scoped (instrumented) to the owning session
// and stage already.
func New(agentID string, agentCfg *config.AgentConfig, llmClient llm.Client, tools ToolExecutor, prompt PromptBuilder, controllers ControllerFactory) *Agent {
	return &Agent{
		agentID:     agentID,
		agentCfg:    agentCfg,
		llmClient:   llmClient,
		tools:       tools,
		prompt:      prompt,
		controllers: controllers,
		logger:      slog.With("component", "agent", "agent_id", agentID),
	}
}

// ProcessAlert runs the stage and returns its result. Agent-level failures
// (budget exhaustion, LLM errors, malformed output) come back as a failed
// StageResult with the error recorded; a Go error means the stage could not
// even be attempted.
func (a *Agent) ProcessAlert(ctx context.Context, data *models.AlertProcessingData, sessionID, stageExecutionID string, stageStrategy config.IterationStrategy, stageName string) (*models.StageResult, error) {
	strategy := stageStrategy
	if strategy == "" {
		strategy = a.agentCfg.IterationStrategy
	}
	if strategy == "" {
		strategy = config.DefaultIterationStrategy
	}

	controller, err := a.controllers(strategy)
	if err != nil {
		return nil, apperrors.Configuration(fmt.Sprintf("no controller for strategy %q", strategy), err)
	}

	execCtx := &ExecutionContext{
		SessionID:        sessionID,
		StageExecutionID: stageExecutionID,
		StageName:        stageName,
		Strategy:         strategy,
		Data:             data,
		LLM:              a.llmClient,
		Tools:            a.tools,
		Prompt:           a.prompt,
		Logger: a.logger.With(
			"session_id", sessionID,
			"stage", stageName,
			"strategy", string(strategy)),
	}

	execCtx.Logger.Info("Starting stage execution")
	result, err := controller.Run(ctx, execCtx)
	if err != nil {
		return nil, err
	}
	result.StageName = stageName

	execCtx.Logger.Info("Stage execution finished",
		"status", string(result.Status),
		"iterations", result.Iterations,
		"tool_calls", len(result.MCPResults))
	return result, nil
}
