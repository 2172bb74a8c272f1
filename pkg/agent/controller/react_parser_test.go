package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseAction(t *testing.T) {
	p := ParseResponse(`Thought: I should check the pods in the namespace.
Action: kubernetes-server.pods_list
Action Input: {"namespace": "prod"}`)

	assert.True(t, p.HasAction)
	assert.False(t, p.IsFinalAnswer)
	assert.False(t, p.IsMalformed)
	assert.Equal(t, "kubernetes-server.pods_list", p.Action)
	assert.Equal(t, `{"namespace": "prod"}`, p.ActionInput)
	assert.Equal(t, "I should check the pods in the namespace.", p.Thought)
}

func TestParseResponseFinalAnswer(t *testing.T) {
	p := ParseResponse(`Thought: I have enough information.
Final Answer: The namespace is stuck because a finalizer
on the custom resource never completes.`)

	assert.True(t, p.IsFinalAnswer)
	assert.False(t, p.HasAction)
	assert.Contains(t, p.FinalAnswer, "finalizer")
	assert.Contains(t, p.FinalAnswer, "never completes")
}

func TestParseResponseActionWinsOverFinalAnswer(t *testing.T) {
	p := ParseResponse(`Thought: One more check, then I can conclude.
Action: kubernetes-server.events_list
Action Input: {"namespace": "prod"}
Final Answer: probably the finalizer.`)

	assert.True(t, p.HasAction)
	assert.False(t, p.IsFinalAnswer)
	assert.Equal(t, "kubernetes-server.events_list", p.Action)
}

func TestParseResponseStopsAtObservation(t *testing.T) {
	p := ParseResponse(`Thought: checking pods.
Action: kubernetes-server.pods_list
Action Input: {}
Observation: 3 pods running
Final Answer: everything is fine.`)

	// The hallucinated observation and everything after it are discarded.
	assert.True(t, p.HasAction)
	assert.False(t, p.IsFinalAnswer)
}

func TestParseResponseUnknownTool(t *testing.T) {
	p := ParseResponse(`Thought: let me look.
Action: pods_list
Action Input: {}`)

	assert.True(t, p.HasAction)
	assert.True(t, p.IsUnknownTool)
	assert.Contains(t, p.ErrorMessage, "server.tool")
}

func TestParseResponseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"thought only", "Thought: I am thinking about the problem."},
		{"empty", ""},
		{"action without input", "Action: kubernetes-server.pods_list"},
		{"free text", "The cluster looks unhealthy to me."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseResponse(tt.text)
			assert.True(t, p.IsMalformed)
			assert.False(t, p.HasAction)
			assert.False(t, p.IsFinalAnswer)
		})
	}
}

func TestParseResponseFreshActionInvalidatesEarlierInput(t *testing.T) {
	p := ParseResponse(`Action: kubernetes-server.pods_list
Action Input: {"namespace": "prod"}
Action: kubernetes-server.events_list`)

	// The second Action has no input of its own.
	assert.True(t, p.IsMalformed)
}

func TestParseResponseRecoversMissingActionHeader(t *testing.T) {
	p := ParseResponse(`Thought: I will call the tool now.
Action kubernetes-server.pods_list
Action Input: {"namespace": "prod"}`)

	require.True(t, p.HasAction)
	assert.Equal(t, "kubernetes-server.pods_list", p.Action)
}

func TestParseResponseFirstFinalAnswerWins(t *testing.T) {
	p := ParseResponse(`Final Answer: the first conclusion.
Final Answer: a second, contradictory conclusion.`)

	assert.True(t, p.IsFinalAnswer)
	assert.Contains(t, p.FinalAnswer, "the first conclusion.")
}

func TestParseActionInput(t *testing.T) {
	t.Run("json object", func(t *testing.T) {
		args := ParseActionInput(`{"namespace": "prod", "limit": 10}`)
		assert.Equal(t, "prod", args["namespace"])
		assert.Equal(t, float64(10), args["limit"])
	})

	t.Run("fenced json", func(t *testing.T) {
		args := ParseActionInput("```json\n{\"namespace\": \"prod\"}\n```")
		assert.Equal(t, "prod", args["namespace"])
	})

	t.Run("empty means no arguments", func(t *testing.T) {
		assert.Nil(t, ParseActionInput(""))
		assert.Nil(t, ParseActionInput("{}"))
		assert.Nil(t, ParseActionInput("  ```json\n{}\n```  "))
	})

	t.Run("key value lines", func(t *testing.T) {
		args := ParseActionInput("namespace: prod\nlimit = \"10\"")
		assert.Equal(t, "prod", args["namespace"])
		assert.Equal(t, "10", args["limit"])
	})

	t.Run("unparseable text passed through", func(t *testing.T) {
		args := ParseActionInput("just get me all the pods please")
		assert.Equal(t, map[string]any{"input": "just get me all the pods please"}, args)
	})
}
