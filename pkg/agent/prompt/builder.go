// Package prompt composes the system and user messages iteration
// controllers send to the LLM. Builders are stateless apart from their
// configuration, so one instance is safe across concurrent stages.
package prompt

import (
	"log/slog"
	"strings"

	"github.com/tarsy-bot/tarsy/pkg/agent"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

var _ agent.PromptBuilder = (*Builder)(nil)

// Builder implements agent.PromptBuilder for one agent configuration.
type Builder struct {
	mcpRegistry *config.MCPServerRegistry
	agentCfg    *config.AgentConfig
}

// NewBuilder creates a Builder for the given agent. Panics on a nil
// registry; callers always construct it from a validated Config.
func NewBuilder(mcpRegistry *config.MCPServerRegistry, agentCfg *config.AgentConfig) *Builder {
	if mcpRegistry == nil {
		panic("prompt.NewBuilder: mcpRegistry must not be nil")
	}
	return &Builder{mcpRegistry: mcpRegistry, agentCfg: agentCfg}
}

// SystemPrompt composes the three instruction tiers: general SRE
// instructions, per-MCP-server instructions, and the agent's custom
// instructions.
func (b *Builder) SystemPrompt() string {
	sections := []string{generalInstructions}

	for _, serverID := range b.agentCfg.MCPServers {
		serverCfg, err := b.mcpRegistry.Get(serverID)
		if err != nil {
			slog.Debug("MCP server not in registry, skipping instructions",
				"server_id", serverID, "error", err)
			continue
		}
		if serverCfg.Instructions != "" {
			sections = append(sections, "## "+serverID+" Instructions\n\n"+serverCfg.Instructions)
		}
	}

	if b.agentCfg.CustomInstructions != "" {
		sections = append(sections, "## Agent-Specific Instructions\n\n"+b.agentCfg.CustomInstructions)
	}

	return strings.Join(sections, "\n\n")
}

// InvestigationPrompt renders the opening user message for an
// investigation loop: alert, runbook, prior stage outputs, and the tools
// the model may call. tools may be empty for tool-less strategies.
func (b *Builder) InvestigationPrompt(data *models.AlertProcessingData, tools []agent.ToolDefinition) string {
	var sb strings.Builder

	sb.WriteString("# Alert Investigation\n\n")
	writeAlertSection(&sb, data)
	writeRunbookSection(&sb, data)
	writePriorStages(&sb, data)
	writeToolsSection(&sb, tools)

	sb.WriteString("Investigate this alert and determine the root cause.\n")
	return sb.String()
}

// FinalAnalysisPrompt renders the synthesis user message: everything the
// prior stages collected and concluded, with a request for the final
// analysis. Used by the tool-less react-final-analysis strategy.
func (b *Builder) FinalAnalysisPrompt(data *models.AlertProcessingData) string {
	var sb strings.Builder

	sb.WriteString("# Final Analysis\n\n")
	writeAlertSection(&sb, data)
	writeRunbookSection(&sb, data)
	writePriorStages(&sb, data)
	writeCollectedData(&sb, data.GetAllMCPResults())

	sb.WriteString("Based on all the data and analysis above, provide the final\n")
	sb.WriteString("root-cause analysis with concrete remediation steps for human operators.\n")
	return sb.String()
}

// PartialAnalysisPrompt asks for a summary scoped to the data one stage
// collected, not a full investigation conclusion.
func (b *Builder) PartialAnalysisPrompt(stageName string, results []models.MCPResult) string {
	var sb strings.Builder

	sb.WriteString("# Stage Summary: " + stageName + "\n\n")
	writeCollectedData(&sb, results)

	sb.WriteString("Summarize what the data collected in this stage shows. Keep the\n")
	sb.WriteString("summary scoped to this stage; the final analysis happens later.\n")
	return sb.String()
}
