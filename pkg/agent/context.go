package agent

import (
	"context"
	"log/slog"

	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/llm"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// ExecutionContext carries everything a controller needs for one stage run.
// It is built by the Agent and lives for exactly one ProcessAlert call.
type ExecutionContext struct {
	SessionID        string
	StageExecutionID string
	StageName        string
	Strategy         config.IterationStrategy

	// Data is the accumulated processing context: alert payload, runbook,
	// and all prior stage outputs.
	Data *models.AlertProcessingData

	LLM    llm.Client
	Tools  ToolExecutor
	Prompt PromptBuilder

	Logger *slog.Logger
}

// PromptBuilder composes the conversations controllers send to the LLM.
// Implemented by pkg/agent/prompt; an interface here keeps the dependency
// pointing outward.
type PromptBuilder interface {
	// SystemPrompt composes general + server + agent custom instructions.
	SystemPrompt() string

	// InvestigationPrompt renders the alert, runbook, prior stage outputs,
	// and available tools for loop-opening user turns.
	InvestigationPrompt(data *models.AlertProcessingData, tools []ToolDefinition) string

	// FinalAnalysisPrompt renders everything prior stages collected for the
	// tool-less synthesis pass.
	FinalAnalysisPrompt(data *models.AlertProcessingData) string

	// PartialAnalysisPrompt asks for a stage-scoped summary of the data
	// this stage collected.
	PartialAnalysisPrompt(stageName string, results []models.MCPResult) string
}

// IterationController drives one stage's LLM loop. Controllers return a
// StageResult for agent-level outcomes (including failures the session
// should record and move past) and an error only for infrastructure
// failures that make the result itself unrecordable.
type IterationController interface {
	Run(ctx context.Context, execCtx *ExecutionContext) (*models.StageResult, error)
}
