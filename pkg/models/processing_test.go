package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStageResultPreservesOrder(t *testing.T) {
	data := NewAlertProcessingData("kubernetes", map[string]any{"namespace": "prod"})

	data.RecordStageResult("collect", &StageResult{StageName: "collect", Status: StageCompleted})
	data.RecordStageResult("analyze", &StageResult{StageName: "analyze", Status: StageFailed, Error: "boom"})

	assert.Equal(t, []string{"collect", "analyze"}, data.StageNames())

	results := data.StageResults()
	require.Len(t, results, 2)
	assert.Equal(t, "collect", results[0].StageName)
	assert.Equal(t, "analyze", results[1].StageName)
}

func TestRecordStageResultIgnoresRewrite(t *testing.T) {
	data := NewAlertProcessingData("kubernetes", nil)

	first := &StageResult{StageName: "collect", Status: StageCompleted, FinalAnalysis: "original"}
	data.RecordStageResult("collect", first)
	data.RecordStageResult("collect", &StageResult{StageName: "collect", Status: StageFailed})

	got, ok := data.StageOutput("collect")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, []string{"collect"}, data.StageNames())
}

func TestGetAllMCPResults(t *testing.T) {
	data := NewAlertProcessingData("kubernetes", nil)

	data.RecordStageResult("collect", &StageResult{
		StageName: "collect",
		Status:    StageCompleted,
		MCPResults: []MCPResult{
			{Server: "kubernetes-server", Tool: "pods_list", Params: map[string]any{"namespace": "prod"}, Result: "3 pods"},
			{Server: "kubernetes-server", Tool: "events_list", Result: "no events", Failed: false},
		},
	})
	data.RecordStageResult("metrics", &StageResult{
		StageName: "metrics",
		Status:    StageFailed,
		MCPResults: []MCPResult{
			{Server: "prometheus", Tool: "query", Result: "timeout", Failed: true},
		},
	})

	all := data.GetAllMCPResults()
	require.Len(t, all, 3)
	assert.Equal(t, "pods_list", all[0].Tool)
	assert.Equal(t, "query", all[2].Tool)
	assert.True(t, all[2].Failed)

	// Returned copies are detached from the stored history.
	all[0].Params["namespace"] = "mutated"
	stored, _ := data.StageOutput("collect")
	assert.Equal(t, "prod", stored.MCPResults[0].Params["namespace"])
}

func TestStageResultSucceeded(t *testing.T) {
	assert.True(t, (&StageResult{Status: StageCompleted}).Succeeded())
	assert.False(t, (&StageResult{Status: StageFailed}).Succeeded())
}
