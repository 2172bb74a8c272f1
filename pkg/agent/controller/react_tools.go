package controller

import (
	"context"

	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/agent/prompt"
	"github.com/tarsy-bot/tarsy/pkg/llm"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// ReActToolsController runs the ReAct loop in data-collection mode: the
// model gathers tool data for later stages and terminates without producing
// an analysis. With partialAnalysis set, a final tool-less call summarizes
// what this stage collected.
type ReActToolsController struct {
	partialAnalysis bool
}

// NewReActToolsController creates the plain data-collection controller.
func NewReActToolsController() *ReActToolsController {
	return &ReActToolsController{}
}

// NewReActToolsPartialController creates the variant that appends a
// stage-scoped summary after collection.
func NewReActToolsPartialController() *ReActToolsController {
	return &ReActToolsController{partialAnalysis: true}
}

// Run implements agent.IterationController.
func (c *ReActToolsController) Run(ctx context.Context, execCtx *agent.ExecutionContext) (*models.StageResult, error) {
	loop, err := newReActLoop(ctx, execCtx, prompt.ReActCollectionFormatInstructions)
	if err != nil {
		return nil, err
	}

	// The terminal Final Answer in collection mode is just the "done"
	// signal; the text itself is discarded.
	if _, err := loop.run(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return loop.failedStage(err), nil
	}

	result := &models.StageResult{
		Status:     models.StageCompleted,
		MCPResults: loop.collected,
		Iterations: loop.iterations,
	}
	if !c.partialAnalysis {
		return result, nil
	}

	summary, _, err := completeWithRetry(ctx, execCtx, []llm.Message{
		llm.SystemMessage(execCtx.Prompt.SystemPrompt()),
		llm.UserMessage(execCtx.Prompt.PartialAnalysisPrompt(execCtx.StageName, loop.collected)),
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return loop.failedStage(err), nil
	}
	result.FinalAnalysis = summary
	return result, nil
}
