// Package models holds the data structures that flow between the alert
// pipeline's components: the accumulating processing context, stage results,
// and MCP tool invocation records.
package models

// MCPResult is one recorded tool invocation made during a stage.
type MCPResult struct {
	Server string         `json:"server"`
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params,omitempty"`
	Result string         `json:"result"`
	Failed bool           `json:"failed,omitempty"`
}

// StageResult is the outcome of a single chain stage.
type StageResult struct {
	StageName     string      `json:"stage_name"`
	Status        StageStatus `json:"status"`
	FinalAnalysis string      `json:"final_analysis,omitempty"`
	Error         string      `json:"error,omitempty"`
	MCPResults    []MCPResult `json:"mcp_results,omitempty"`
	Iterations    int         `json:"iterations,omitempty"`
}

// StageStatus is the terminal state of a stage.
type StageStatus string

const (
	StageCompleted StageStatus = "completed"
	StageFailed    StageStatus = "failed"
)

// Succeeded reports whether the stage finished without error.
func (r *StageResult) Succeeded() bool { return r.Status == StageCompleted }

// AlertProcessingData accumulates everything known about an alert as it moves
// through a chain. Stages append; nothing is ever removed or rewritten, so a
// later stage sees exactly what earlier stages produced.
type AlertProcessingData struct {
	AlertType      string         `json:"alert_type"`
	AlertData      map[string]any `json:"alert_data"`
	RunbookContent string         `json:"runbook_content,omitempty"`
	ChainID        string         `json:"chain_id"`

	// stageOutputs preserves insertion order; keyed by stage name.
	stageNames   []string
	stageOutputs map[string]*StageResult
}

// NewAlertProcessingData creates the processing context for one session.
func NewAlertProcessingData(alertType string, alertData map[string]any) *AlertProcessingData {
	return &AlertProcessingData{
		AlertType:    alertType,
		AlertData:    alertData,
		stageOutputs: make(map[string]*StageResult),
	}
}

// RecordStageResult appends a stage's outcome. Recording the same stage name
// twice is a programming error and is ignored in favor of the first write, so
// downstream stages never observe rewritten history.
func (d *AlertProcessingData) RecordStageResult(stageName string, result *StageResult) {
	if _, exists := d.stageOutputs[stageName]; exists {
		return
	}
	d.stageNames = append(d.stageNames, stageName)
	d.stageOutputs[stageName] = result
}

// StageOutput returns a prior stage's result by name.
func (d *AlertProcessingData) StageOutput(stageName string) (*StageResult, bool) {
	r, ok := d.stageOutputs[stageName]
	return r, ok
}

// StageNames returns stage names in execution order.
func (d *AlertProcessingData) StageNames() []string {
	out := make([]string, len(d.stageNames))
	copy(out, d.stageNames)
	return out
}

// StageResults returns recorded results in execution order.
func (d *AlertProcessingData) StageResults() []*StageResult {
	out := make([]*StageResult, 0, len(d.stageNames))
	for _, name := range d.stageNames {
		out = append(out, d.stageOutputs[name])
	}
	return out
}

// GetAllMCPResults returns copies of every tool invocation recorded so far,
// in execution order. Mutating the returned slice cannot corrupt the
// accumulated history.
func (d *AlertProcessingData) GetAllMCPResults() []MCPResult {
	var out []MCPResult
	for _, name := range d.stageNames {
		for _, r := range d.stageOutputs[name].MCPResults {
			c := r
			if r.Params != nil {
				c.Params = make(map[string]any, len(r.Params))
				for k, v := range r.Params {
					c.Params[k] = v
				}
			}
			out = append(out, c)
		}
	}
	return out
}
