package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

func writeAlertSection(sb *strings.Builder, data *models.AlertProcessingData) {
	sb.WriteString("## Alert\n\n")
	sb.WriteString("Alert type: " + data.AlertType + "\n\n")

	// Deterministic key order so identical alerts render identical prompts.
	keys := make([]string, 0, len(data.AlertData))
	for k := range data.AlertData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", k, renderValue(data.AlertData[k])))
	}
	sb.WriteString("\n")
}

func writeRunbookSection(sb *strings.Builder, data *models.AlertProcessingData) {
	if data.RunbookContent == "" {
		return
	}
	sb.WriteString("## Runbook\n\n")
	sb.WriteString(data.RunbookContent)
	sb.WriteString("\n\n")
}

func writePriorStages(sb *strings.Builder, data *models.AlertProcessingData) {
	results := data.StageResults()
	if len(results) == 0 {
		return
	}
	sb.WriteString("## Previous Stages\n\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("### %s (%s)\n\n", r.StageName, r.Status))
		if r.FinalAnalysis != "" {
			sb.WriteString(r.FinalAnalysis + "\n\n")
		}
		if r.Error != "" {
			sb.WriteString("Stage error: " + r.Error + "\n\n")
		}
	}
}

func writeToolsSection(sb *strings.Builder, tools []agent.ToolDefinition) {
	if len(tools) == 0 {
		return
	}
	sb.WriteString("## Available Tools\n\n")
	for _, tool := range tools {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", tool.Name, tool.Description))
		if tool.InputSchema != "" {
			sb.WriteString("  Parameters: " + tool.InputSchema + "\n")
		}
	}
	sb.WriteString("\n")
}

func writeCollectedData(sb *strings.Builder, results []models.MCPResult) {
	if len(results) == 0 {
		sb.WriteString("## Collected Data\n\nNo tool data was collected.\n\n")
		return
	}
	sb.WriteString("## Collected Data\n\n")
	for _, r := range results {
		header := fmt.Sprintf("%s.%s", r.Server, r.Tool)
		if len(r.Params) > 0 {
			if params, err := json.Marshal(r.Params); err == nil {
				header += " " + string(params)
			}
		}
		if r.Failed {
			header += " (failed)"
		}
		sb.WriteString("### " + header + "\n\n")
		sb.WriteString(r.Result + "\n\n")
	}
}

func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		out, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(out)
	}
}
