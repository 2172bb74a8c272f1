package controller

import (
	"context"
	"strings"

	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/apperrors"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/llm"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// reactLoop drives the shared Thought/Action/Observation cycle used by the
// react and react-tools strategies. One instance per stage run.
type reactLoop struct {
	execCtx   *agent.ExecutionContext
	conv      []llm.Message
	tools     []agent.ToolDefinition
	toolNames map[string]bool

	collected      []models.MCPResult
	iterations     int
	formatFailures int
	llmFailures    int
}

// newReActLoop lists the stage's tools and builds the opening conversation.
func newReActLoop(ctx context.Context, execCtx *agent.ExecutionContext, formatInstructions string) (*reactLoop, error) {
	tools, err := execCtx.Tools.ListTools(ctx)
	if err != nil {
		return nil, apperrors.Configuration("failed to list tools", err)
	}
	toolNames := make(map[string]bool, len(tools))
	for _, t := range tools {
		toolNames[t.Name] = true
	}

	return &reactLoop{
		execCtx:   execCtx,
		tools:     tools,
		toolNames: toolNames,
		conv: []llm.Message{
			llm.SystemMessage(execCtx.Prompt.SystemPrompt() + "\n\n" + formatInstructions),
			llm.UserMessage(execCtx.Prompt.InvestigationPrompt(execCtx.Data, tools)),
		},
	}, nil
}

// run iterates until the model produces a Final Answer or the budget is
// exhausted. Returns the final answer text; errors are apperrors values the
// caller turns into a failed stage, except context errors which propagate.
func (l *reactLoop) run(ctx context.Context) (string, error) {
	for l.iterations < config.MaxIterations {
		l.iterations++

		text, err := l.execCtx.LLM.Complete(ctx, l.conv)
		if err != nil {
			if ctx.Err() != nil {
				return "", err
			}
			// A provider failure costs an iteration, not the stage. The error
			// travels back to the model as an observation; only repeated
			// back-to-back failures abort.
			l.llmFailures++
			if l.llmFailures >= config.MaxConsecutiveLLMFailures {
				return "", apperrors.LLM(err)
			}
			l.execCtx.Logger.Warn("LLM completion failed, retrying",
				"attempt", l.llmFailures, "error", err)
			l.observe(FormatLLMErrorObservation(err))
			continue
		}
		l.llmFailures = 0
		l.conv = append(l.conv, llm.AssistantMessage(text))

		parsed := ParseResponse(text)

		switch {
		case parsed.HasAction && !parsed.IsUnknownTool:
			l.formatFailures = 0
			l.observe(l.executeTool(ctx, parsed))
			if ctx.Err() != nil {
				return "", ctx.Err()
			}

		case parsed.IsUnknownTool:
			l.formatFailures = 0
			l.execCtx.Logger.Warn("Model referenced unknown tool", "tool", parsed.Action)
			l.observe(FormatUnknownToolObservation(parsed.ErrorMessage, l.tools))

		case parsed.IsFinalAnswer:
			return parsed.FinalAnswer, nil

		default:
			l.formatFailures++
			if l.formatFailures > config.MaxFormatRetries {
				return "", apperrors.UnparseableResponse(config.MaxFormatRetries)
			}
			l.execCtx.Logger.Warn("Malformed model response, sending format feedback",
				"attempt", l.formatFailures)
			l.observe(FormatErrorFeedback(parsed))
		}
	}

	return "", apperrors.IterationBudgetExhausted(l.iterations)
}

// executeTool runs one parsed action and records it in the collected data.
// Returns the observation text for the next turn.
func (l *reactLoop) executeTool(ctx context.Context, parsed *ParsedResponse) string {
	if !l.toolNames[parsed.Action] {
		l.execCtx.Logger.Warn("Model requested tool outside stage tool set", "tool", parsed.Action)
		return FormatUnknownToolObservation(
			"Unknown tool \""+parsed.Action+"\".", l.tools)
	}

	args := ParseActionInput(parsed.ActionInput)
	result, err := l.execCtx.Tools.Execute(ctx, agent.ToolCall{Name: parsed.Action, Arguments: args})
	if err != nil {
		// Only context errors escape Execute; surface them via ctx on return.
		return "Observation: Error - tool execution aborted: " + err.Error()
	}

	server, tool, _ := strings.Cut(parsed.Action, ".")
	l.collected = append(l.collected, models.MCPResult{
		Server: server,
		Tool:   tool,
		Params: args,
		Result: result.Content,
		Failed: result.IsError,
	})

	return FormatObservation(result)
}

func (l *reactLoop) observe(observation string) {
	l.conv = append(l.conv, llm.UserMessage(observation))
}

// failedStage converts a loop error into the stage-level failure record,
// preserving whatever data was collected before the failure.
func (l *reactLoop) failedStage(err error) *models.StageResult {
	return &models.StageResult{
		Status:     models.StageFailed,
		Error:      err.Error(),
		MCPResults: l.collected,
		Iterations: l.iterations,
	}
}

// analysisLoop runs the tool loop to a Final Answer and shapes the completed
// result. Shared by the strategies that end in an analysis; they differ only
// in the format instructions handed to the model.
func analysisLoop(ctx context.Context, execCtx *agent.ExecutionContext, formatInstructions string) (*models.StageResult, error) {
	loop, err := newReActLoop(ctx, execCtx, formatInstructions)
	if err != nil {
		return nil, err
	}

	answer, err := loop.run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return loop.failedStage(err), nil
	}

	return &models.StageResult{
		Status:        models.StageCompleted,
		FinalAnalysis: answer,
		MCPResults:    loop.collected,
		Iterations:    loop.iterations,
	}, nil
}
