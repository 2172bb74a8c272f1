package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStrategy(t *testing.T) {
	agent := &AgentConfig{IterationStrategy: IterationStrategyReactTools}

	tests := []struct {
		name  string
		stage StageConfig
		agent *AgentConfig
		want  IterationStrategy
	}{
		{
			name:  "stage override wins",
			stage: StageConfig{IterationStrategy: IterationStrategyRegular},
			agent: agent,
			want:  IterationStrategyRegular,
		},
		{
			name:  "agent default when stage is silent",
			stage: StageConfig{},
			agent: agent,
			want:  IterationStrategyReactTools,
		},
		{
			name:  "system default when both are silent",
			stage: StageConfig{},
			agent: &AgentConfig{},
			want:  IterationStrategyReact,
		},
		{
			name:  "system default with nil agent",
			stage: StageConfig{},
			agent: nil,
			want:  IterationStrategyReact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStrategy(tt.stage, tt.agent))
		})
	}
}

func TestIterationStrategyValidate(t *testing.T) {
	valid := []IterationStrategy{
		"", IterationStrategyRegular, IterationStrategyReact,
		IterationStrategyReactTools, IterationStrategyReactToolsPartial,
		IterationStrategyReactFinalAnalysis,
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), string(s))
	}
	assert.Error(t, IterationStrategy("chain-of-thought").Validate())
}

func TestIterationStrategyNeedsTools(t *testing.T) {
	assert.False(t, IterationStrategyRegular.NeedsTools())
	assert.False(t, IterationStrategyReactFinalAnalysis.NeedsTools())
	assert.True(t, IterationStrategyReact.NeedsTools())
	assert.True(t, IterationStrategyReactTools.NeedsTools())
	assert.True(t, IterationStrategyReactToolsPartial.NeedsTools())
}

func TestIterationStrategyProducesAnalysis(t *testing.T) {
	assert.False(t, IterationStrategyReactTools.ProducesAnalysis())
	assert.True(t, IterationStrategyReact.ProducesAnalysis())
	assert.True(t, IterationStrategyReactToolsPartial.ProducesAnalysis())
}
