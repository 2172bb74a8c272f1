package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/llm"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// scriptedLLM replays canned responses in order. An error entry fails that
// call.
type scriptedLLM struct {
	responses []string
	errs      map[int]error // call index → error
	calls     int
	convs     [][]llm.Message
}

func (s *scriptedLLM) Complete(_ context.Context, messages []llm.Message) (string, error) {
	idx := s.calls
	s.calls++
	s.convs = append(s.convs, messages)
	if err, ok := s.errs[idx]; ok {
		return "", err
	}
	if idx >= len(s.responses) {
		return "", fmt.Errorf("scripted llm exhausted after %d calls", idx)
	}
	return s.responses[idx], nil
}

func (s *scriptedLLM) ModelName() string { return "scripted" }

// staticPrompt is a minimal PromptBuilder for loop tests.
type staticPrompt struct{}

func (staticPrompt) SystemPrompt() string { return "You are an SRE agent." }

func (staticPrompt) InvestigationPrompt(_ *models.AlertProcessingData, tools []agent.ToolDefinition) string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return "Investigate. Tools: " + strings.Join(names, ", ")
}

func (staticPrompt) FinalAnalysisPrompt(*models.AlertProcessingData) string {
	return "Synthesize the final analysis."
}

func (staticPrompt) PartialAnalysisPrompt(stageName string, _ []models.MCPResult) string {
	return "Summarize stage " + stageName + "."
}

func newExecCtx(client llm.Client, tools agent.ToolExecutor) *agent.ExecutionContext {
	return &agent.ExecutionContext{
		SessionID: "s1",
		StageName: "analysis",
		Data:      models.NewAlertProcessingData("kubernetes", map[string]any{"namespace": "prod"}),
		LLM:       client,
		Tools:     tools,
		Prompt:    staticPrompt{},
		Logger:    slog.Default(),
	}
}

func stubTools() *agent.StubToolExecutor {
	return &agent.StubToolExecutor{
		Tools: []agent.ToolDefinition{
			{Name: "kubernetes-server.pods_list", Description: "List pods"},
			{Name: "kubernetes-server.events_list", Description: "List events"},
		},
		Responses: map[string]string{
			"kubernetes-server.pods_list":   "3 pods, 1 crash-looping",
			"kubernetes-server.events_list": "OOMKilled events on payment-api",
		},
	}
}

func TestReActControllerToolLoopToFinalAnswer(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		"Thought: check the pods.\nAction: kubernetes-server.pods_list\nAction Input: {\"namespace\": \"prod\"}",
		"Thought: check events.\nAction: kubernetes-server.events_list\nAction Input: {}",
		"Thought: done.\nFinal Answer: payment-api is OOMKilled; raise its memory limit.",
	}}

	result, err := NewReActController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Contains(t, result.FinalAnalysis, "OOMKilled")
	assert.Equal(t, 3, result.Iterations)
	require.Len(t, result.MCPResults, 2)
	assert.Equal(t, "kubernetes-server", result.MCPResults[0].Server)
	assert.Equal(t, "pods_list", result.MCPResults[0].Tool)
	assert.Equal(t, "prod", result.MCPResults[0].Params["namespace"])

	// Observations were fed back as user turns.
	lastConv := client.convs[2]
	assert.Contains(t, lastConv[len(lastConv)-1].Content, "OOMKilled events")
}

func TestReActControllerFormatRetryThenRecovery(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		"I think the cluster is broken.", // malformed
		"Thought: ok.\nFinal Answer: the cluster is broken.",
	}}

	result, err := NewReActController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Equal(t, 2, result.Iterations)

	// The second call saw format feedback.
	secondConv := client.convs[1]
	assert.Contains(t, secondConv[len(secondConv)-1].Content, "FORMAT ERROR")
}

func TestReActControllerConsecutiveFormatFailures(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		"nonsense one", "nonsense two", "nonsense three",
	}}

	result, err := NewReActController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.StageFailed, result.Status)
	assert.Contains(t, result.Error, "unparseable response")
	assert.Equal(t, 3, result.Iterations)
}

func TestReActControllerFormatCounterResetsOnParseSuccess(t *testing.T) {
	// malformed, valid action, malformed, malformed, then finish: the two
	// later failures are consecutive but under the limit because the counter
	// reset on the valid action.
	client := &scriptedLLM{responses: []string{
		"nonsense",
		"Action: kubernetes-server.pods_list\nAction Input: {}",
		"more nonsense",
		"still nonsense",
		"Final Answer: done looking.",
	}}

	result, err := NewReActController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Equal(t, 5, result.Iterations)
}

func TestReActControllerIterationBudget(t *testing.T) {
	responses := make([]string, config.MaxIterations)
	for i := range responses {
		responses[i] = "Action: kubernetes-server.pods_list\nAction Input: {}"
	}
	client := &scriptedLLM{responses: responses}

	result, err := NewReActController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	assert.Equal(t, models.StageFailed, result.Status)
	assert.Equal(t, config.MaxIterations, result.Iterations)
	// Data collected before exhaustion is preserved.
	assert.Len(t, result.MCPResults, config.MaxIterations)
}

func TestReActControllerUnknownToolFeedback(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		"Action: wrong_tool\nAction Input: {}",
		"Final Answer: giving up on tools.",
	}}

	result, err := NewReActController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)

	secondConv := client.convs[1]
	feedback := secondConv[len(secondConv)-1].Content
	assert.Contains(t, feedback, "kubernetes-server.pods_list")
	assert.Contains(t, feedback, "kubernetes-server.events_list")
}

func TestReActControllerToolFailureBecomesObservation(t *testing.T) {
	tools := stubTools()
	delete(tools.Responses, "kubernetes-server.pods_list")

	client := &scriptedLLM{responses: []string{
		"Action: kubernetes-server.pods_list\nAction Input: {}",
		"Final Answer: the tool is unavailable.",
	}}

	result, err := NewReActController().Run(context.Background(), newExecCtx(client, tools))
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)
	require.Len(t, result.MCPResults, 1)
	assert.True(t, result.MCPResults[0].Failed)

	secondConv := client.convs[1]
	assert.Contains(t, secondConv[len(secondConv)-1].Content, "Error executing")
}

func TestReActControllerRecoversFromLLMError(t *testing.T) {
	// A transient provider failure costs an iteration, not the stage: the
	// error is fed back as an observation and the next call succeeds.
	client := &scriptedLLM{
		responses: []string{"", "Thought: ok.\nFinal Answer: ok"},
		errs:      map[int]error{0: errors.New("provider unavailable")},
	}

	result, err := NewReActController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Equal(t, "ok", result.FinalAnalysis)
	assert.Equal(t, 2, result.Iterations)

	// The retry turn carried the error back to the model.
	secondConv := client.convs[1]
	assert.Contains(t, secondConv[len(secondConv)-1].Content, "provider unavailable")
}

func TestReActControllerConsecutiveLLMFailures(t *testing.T) {
	client := &scriptedLLM{
		responses: []string{"Action: kubernetes-server.pods_list\nAction Input: {}"},
		errs: map[int]error{
			1: errors.New("provider unavailable"),
			2: errors.New("provider unavailable"),
		},
	}

	result, err := NewReActController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.StageFailed, result.Status)
	assert.Contains(t, result.Error, "provider unavailable")
	assert.Equal(t, 3, result.Iterations)
	// The successful tool call before the failures is preserved.
	assert.Len(t, result.MCPResults, 1)
}

func TestReActControllerCancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &scriptedLLM{errs: map[int]error{0: context.Canceled}}

	result, err := NewReActController().Run(ctx, newExecCtx(client, stubTools()))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReActToolsControllerDiscardsFinalAnswerText(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		"Action: kubernetes-server.pods_list\nAction Input: {}",
		"Final Answer: done",
	}}

	result, err := NewReActToolsController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Empty(t, result.FinalAnalysis)
	assert.Len(t, result.MCPResults, 1)
}

func TestReActToolsPartialControllerAddsSummary(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		"Action: kubernetes-server.pods_list\nAction Input: {}",
		"Final Answer: done",
		"Collected pod data shows one crash-looping pod.",
	}}

	result, err := NewReActToolsPartialController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Contains(t, result.FinalAnalysis, "crash-looping")
	assert.Len(t, result.MCPResults, 1)

	// The summary call carries no tool instructions, just the stage scope.
	summaryConv := client.convs[2]
	require.Len(t, summaryConv, 2)
	assert.Contains(t, summaryConv[1].Content, "Summarize stage analysis")
}

func TestRegularControllerImmediateAnswer(t *testing.T) {
	client := &scriptedLLM{responses: []string{"Final Answer: The alert is benign."}}

	result, err := NewRegularController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Equal(t, "The alert is benign.", result.FinalAnalysis)
	assert.Equal(t, 1, result.Iterations)
	assert.Equal(t, 1, client.calls)
}

func TestRegularControllerCanCallTools(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		"Action: kubernetes-server.pods_list\nAction Input: {\"namespace\": \"prod\"}",
		"Final Answer: one pod is crash-looping.",
	}}

	result, err := NewRegularController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Contains(t, result.FinalAnalysis, "crash-looping")
	require.Len(t, result.MCPResults, 1)
	assert.Equal(t, "pods_list", result.MCPResults[0].Tool)

	// No ReAct thought scaffold in the system prompt, but tools are offered.
	firstConv := client.convs[0]
	assert.NotContains(t, firstConv[0].Content, "Thought:")
	assert.Contains(t, firstConv[1].Content, "kubernetes-server.pods_list")
}

func TestFinalAnalysisControllerRetriesTransientError(t *testing.T) {
	client := &scriptedLLM{
		responses: []string{"", "Root cause identified."},
		errs:      map[int]error{0: errors.New("rate limited")},
	}

	result, err := NewFinalAnalysisController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Equal(t, "Root cause identified.", result.FinalAnalysis)
	assert.Equal(t, 2, result.Iterations)
}

func TestFinalAnalysisControllerExhaustedRetriesFailStage(t *testing.T) {
	client := &scriptedLLM{errs: map[int]error{
		0: errors.New("rate limited"),
		1: errors.New("rate limited"),
	}}

	result, err := NewFinalAnalysisController().Run(context.Background(), newExecCtx(client, stubTools()))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.StageFailed, result.Status)
	assert.Contains(t, result.Error, "rate limited")
	assert.Equal(t, config.MaxConsecutiveLLMFailures, result.Iterations)
}

func TestFinalAnalysisControllerUsesCollectedData(t *testing.T) {
	client := &scriptedLLM{responses: []string{"Root cause: OOMKilled payment-api."}}
	execCtx := newExecCtx(client, stubTools())
	execCtx.Data.RecordStageResult("collect", &models.StageResult{
		StageName:  "collect",
		Status:     models.StageCompleted,
		MCPResults: []models.MCPResult{{Server: "kubernetes-server", Tool: "pods_list", Result: "data"}},
	})

	result, err := NewFinalAnalysisController().Run(context.Background(), execCtx)
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, result.Status)
	assert.Contains(t, result.FinalAnalysis, "Root cause")
	assert.Equal(t, "Synthesize the final analysis.", client.convs[0][1].Content)
}

func TestForStrategy(t *testing.T) {
	for _, s := range []config.IterationStrategy{
		config.IterationStrategyRegular,
		config.IterationStrategyReact,
		config.IterationStrategyReactTools,
		config.IterationStrategyReactToolsPartial,
		config.IterationStrategyReactFinalAnalysis,
	} {
		c, err := ForStrategy(s)
		require.NoError(t, err, string(s))
		assert.NotNil(t, c)
	}

	_, err := ForStrategy("tree-of-thought")
	assert.Error(t, err)
}
