package controller

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParsedResponse is the structured form of one LLM turn in the
// Thought/Action/Action Input/Final Answer format.
type ParsedResponse struct {
	Thought string

	HasAction   bool
	Action      string // tool name in server.tool form
	ActionInput string // raw parameter text

	IsFinalAnswer bool
	FinalAnswer   string

	// IsUnknownTool marks an action whose name cannot be a server.tool
	// reference (no dot). The controller gives the model tool-list feedback.
	IsUnknownTool bool
	ErrorMessage  string

	// IsMalformed marks a response with no usable Action or Final Answer.
	IsMalformed bool

	// Found tracks which section headers were detected, for feedback.
	Found map[string]bool
}

var (
	toolNamePattern      = regexp.MustCompile(`^[\w\-]+\.[\w\-]+$`)
	recoverActionPattern = regexp.MustCompile(`(?i)\bAction:?\s*`)
)

// ParseResponse parses an LLM turn. The grammar is line-oriented: each
// section starts at a line beginning with its header. When both an Action
// and a Final Answer appear, the Action wins; a Final Answer is terminal
// and nothing may follow it, so its presence alongside an Action means the
// model kept going.
func ParseResponse(text string) *ParsedResponse {
	sections, found := extractSections(text)
	p := &ParsedResponse{
		Thought: sections["thought"],
		Found:   found,
	}

	action := strings.TrimSpace(sections["action"])
	if action != "" && found["action_input"] {
		if !strings.Contains(action, ".") {
			p.HasAction = true
			p.IsUnknownTool = true
			p.Action = action
			p.ActionInput = sections["action_input"]
			p.ErrorMessage = fmt.Sprintf(
				"Unknown tool %q. Tools must be referenced in server.tool format.", action)
			return p
		}
		p.HasAction = true
		p.Action = action
		p.ActionInput = sections["action_input"]
		return p
	}

	if answer := strings.TrimSpace(sections["final_answer"]); answer != "" {
		p.IsFinalAnswer = true
		p.FinalAnswer = answer
		return p
	}

	p.IsMalformed = true
	return p
}

// extractSections walks the response line by line, accumulating content
// under the most recent section header. Parsing stops at a hallucinated
// "Observation:" line so the model cannot fabricate tool output.
func extractSections(text string) (map[string]string, map[string]bool) {
	headers := []struct{ name, prefix string }{
		{"final_answer", "Final Answer:"},
		{"action_input", "Action Input:"},
		{"action", "Action:"},
		{"thought", "Thought:"},
	}

	content := map[string][]string{}
	found := map[string]bool{}
	current := ""

lines:
	for _, rawLine := range strings.Split(strings.TrimSpace(text), "\n") {
		line := strings.TrimSpace(rawLine)

		if strings.HasPrefix(line, "Observation:") {
			break
		}

		for _, h := range headers {
			if !strings.HasPrefix(line, h.prefix) {
				continue
			}
			// First Final Answer wins; later ones are continuation text.
			if h.name == "final_answer" && found["final_answer"] {
				break
			}
			current = h.name
			found[h.name] = true
			if h.name == "action" {
				// A fresh Action invalidates any earlier Action Input.
				delete(found, "action_input")
				delete(content, "action_input")
			}
			content[h.name] = []string{strings.TrimSpace(line[len(h.prefix):])}
			continue lines
		}

		if current != "" {
			content[current] = append(content[current], line)
		}
	}

	sections := make(map[string]string, len(content))
	for name, lines := range content {
		sections[name] = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	// Recovery: Action Input without Action often means the header lost its
	// colon or merged into the thought. Backtrack for a plausible tool name.
	if found["action_input"] && !found["action"] {
		if recovered := recoverMissingAction(text); recovered != "" {
			sections["action"] = recovered
			found["action"] = true
		}
	}

	return sections, found
}

// recoverMissingAction searches the text before "Action Input:" for the last
// "Action" marker followed by a valid server.tool name.
func recoverMissingAction(text string) string {
	inputIdx := strings.Index(text, "Action Input:")
	if inputIdx < 0 {
		return ""
	}
	before := text[:inputIdx]

	matches := recoverActionPattern.FindAllStringIndex(before, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		candidate := strings.TrimSpace(before[matches[i][1]:])
		firstLine := strings.TrimSpace(strings.SplitN(candidate, "\n", 2)[0])
		if toolNamePattern.MatchString(firstLine) {
			return firstLine
		}
	}
	return ""
}

// ParseActionInput turns the raw Action Input text into tool arguments.
// JSON objects are the documented format; a key: value line fallback keeps
// slightly off-format responses usable. Unparseable non-empty input is
// passed through under "input" so the tool sees what the model wrote.
func ParseActionInput(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "{}" {
		return nil
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err == nil {
		return args
	}

	args = map[string]any{}
	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			key, value, ok = strings.Cut(line, "=")
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" || strings.ContainsAny(key, " \t") {
			return map[string]any{"input": raw}
		}
		args[key] = strings.Trim(value, `"'`)
	}
	return args
}
