package controller

import (
	"fmt"
	"strings"

	"github.com/tarsy-bot/tarsy/pkg/agent"
)

// FormatLLMErrorObservation turns a failed completion into the next user
// turn so the model can retry within the same conversation.
func FormatLLMErrorObservation(err error) string {
	return fmt.Sprintf("Observation: Error from previous attempt: %s. Please try again.", err.Error())
}

// FormatObservation renders a tool result as the next user turn.
func FormatObservation(result *agent.ToolResult) string {
	if result.IsError {
		return fmt.Sprintf("Observation: Error executing %s: %s", result.Name, result.Content)
	}
	return "Observation: " + result.Content
}

// FormatUnknownToolObservation tells the model its tool reference did not
// resolve and repeats the available tools so it can self-correct.
func FormatUnknownToolObservation(errorMsg string, tools []agent.ToolDefinition) string {
	var sb strings.Builder
	sb.WriteString("Observation: Error - " + errorMsg)
	if len(tools) == 0 {
		sb.WriteString("\n\nNo tools are currently available.")
		return sb.String()
	}
	sb.WriteString("\n\nAvailable tools:\n")
	for _, tool := range tools {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", tool.Name, tool.Description))
	}
	return sb.String()
}

// FormatErrorFeedback describes what was wrong with a malformed response.
// Appended as a user turn; the retry counts against the iteration budget.
func FormatErrorFeedback(parsed *ParsedResponse) string {
	var specific string
	switch {
	case parsed.Found["action"] && !parsed.Found["action_input"]:
		specific = `Your response has "Action:" but is missing "Action Input:". ` +
			`Every "Action:" must be followed by "Action Input:" on its own line, even if empty.`
	case parsed.Found["action_input"] && !parsed.Found["action"]:
		specific = `Your response has "Action Input:" but is missing "Action:". ` +
			`State which tool to call with "Action:" before its input.`
	case parsed.Found["thought"]:
		specific = `Your response only contains "Thought:". After reasoning, either call a tool ` +
			`with "Action:" plus "Action Input:", or conclude with "Final Answer:".`
	default:
		specific = `Could not detect any recognized sections in your response. ` +
			`Use "Thought:", "Action:", "Action Input:", and "Final Answer:" headers, each on its own line.`
	}
	return "Observation: FORMAT ERROR: " + specific +
		"\nEvery response must contain either an Action with its Action Input, or a Final Answer."
}
