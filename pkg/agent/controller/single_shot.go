package controller

import (
	"context"

	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/apperrors"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/llm"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// FinalAnalysisController synthesizes the final analysis from everything
// prior stages collected. Tool-less; typically the last stage of a chain.
type FinalAnalysisController struct{}

// NewFinalAnalysisController creates the controller.
func NewFinalAnalysisController() *FinalAnalysisController { return &FinalAnalysisController{} }

// Run implements agent.IterationController.
func (c *FinalAnalysisController) Run(ctx context.Context, execCtx *agent.ExecutionContext) (*models.StageResult, error) {
	analysis, attempts, err := completeWithRetry(ctx, execCtx, []llm.Message{
		llm.SystemMessage(execCtx.Prompt.SystemPrompt()),
		llm.UserMessage(execCtx.Prompt.FinalAnalysisPrompt(execCtx.Data)),
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return &models.StageResult{
			Status:     models.StageFailed,
			Error:      err.Error(),
			Iterations: attempts,
		}, nil
	}

	return &models.StageResult{
		Status:        models.StageCompleted,
		FinalAnalysis: analysis,
		Iterations:    attempts,
	}, nil
}

// completeWithRetry runs one logical completion, retrying transient provider
// failures up to the consecutive-failure cap. Returns the number of calls
// made; context errors propagate unwrapped.
func completeWithRetry(ctx context.Context, execCtx *agent.ExecutionContext, messages []llm.Message) (string, int, error) {
	var lastErr error
	for attempt := 1; attempt <= config.MaxConsecutiveLLMFailures; attempt++ {
		text, err := execCtx.LLM.Complete(ctx, messages)
		if err == nil {
			return text, attempt, nil
		}
		if ctx.Err() != nil {
			return "", attempt, err
		}
		lastErr = err
		execCtx.Logger.Warn("LLM completion failed, retrying",
			"attempt", attempt, "error", err)
	}
	return "", config.MaxConsecutiveLLMFailures, apperrors.LLM(lastErr)
}
