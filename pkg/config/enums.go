package config

import "fmt"

// IterationStrategy selects the controller that drives an agent's loop.
type IterationStrategy string

const (
	// IterationStrategyRegular is the tool loop without the ReAct thought
	// scaffold: the agent may call tools and ends with its analysis.
	IterationStrategyRegular IterationStrategy = "regular"

	// IterationStrategyReact is the full Thought/Action/Observation loop
	// terminated by a Final Answer.
	IterationStrategyReact IterationStrategy = "react"

	// IterationStrategyReactTools is a data-collection loop: tools only,
	// no analysis, terminated when the agent signals it is done.
	IterationStrategyReactTools IterationStrategy = "react-tools"

	// IterationStrategyReactToolsPartial is react-tools plus a stage-scoped
	// partial analysis of the data collected in this stage.
	IterationStrategyReactToolsPartial IterationStrategy = "react-tools-partial"

	// IterationStrategyReactFinalAnalysis is a tool-less synthesis pass over
	// everything earlier stages collected.
	IterationStrategyReactFinalAnalysis IterationStrategy = "react-final-analysis"
)

// DefaultIterationStrategy applies when neither the stage nor the agent
// specifies one.
const DefaultIterationStrategy = IterationStrategyReact

// Validate returns an error if the strategy is not a known value.
// The empty string is valid and means "inherit".
func (s IterationStrategy) Validate() error {
	switch s {
	case "", IterationStrategyRegular, IterationStrategyReact,
		IterationStrategyReactTools, IterationStrategyReactToolsPartial,
		IterationStrategyReactFinalAnalysis:
		return nil
	default:
		return fmt.Errorf("unknown iteration strategy %q", string(s))
	}
}

// NeedsTools reports whether the strategy requires MCP tools.
func (s IterationStrategy) NeedsTools() bool {
	switch s {
	case IterationStrategyRegular, IterationStrategyReactFinalAnalysis:
		return false
	default:
		return true
	}
}

// ProducesAnalysis reports whether a stage run with this strategy yields an
// analysis usable as the session's final analysis.
func (s IterationStrategy) ProducesAnalysis() bool {
	return s != IterationStrategyReactTools
}

// TransportType identifies how an MCP server is reached.
type TransportType string

const (
	TransportTypeStdio TransportType = "stdio"
	TransportTypeHTTP  TransportType = "http"
)

// Validate returns an error if the transport type is not a known value.
func (t TransportType) Validate() error {
	switch t {
	case TransportTypeStdio, TransportTypeHTTP:
		return nil
	default:
		return fmt.Errorf("unknown transport type %q", string(t))
	}
}

// LLMProvider identifies a supported LLM backend.
type LLMProvider string

const (
	LLMProviderAnthropic LLMProvider = "anthropic"
	LLMProviderOpenAI    LLMProvider = "openai"
)

// Validate returns an error if the provider is not a known value.
func (p LLMProvider) Validate() error {
	switch p {
	case LLMProviderAnthropic, LLMProviderOpenAI:
		return nil
	default:
		return fmt.Errorf("unknown llm provider %q", string(p))
	}
}
