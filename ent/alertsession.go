// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
)

// AlertSession is the model entity for the AlertSession schema.
type AlertSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Client-supplied or generated alert identifier
	AlertID string `json:"alert_id,omitempty"`
	// Routing key that selected the chain
	AlertType string `json:"alert_type,omitempty"`
	// Original alert payload
	AlertData map[string]interface{} `json:"alert_data,omitempty"`
	// Chain that processed this alert
	ChainID string `json:"chain_id,omitempty"`
	// Snapshot of the chain definition at submission time
	ChainDefinition map[string]interface{} `json:"chain_definition,omitempty"`
	// Status holds the value of the "status" field.
	Status alertsession.Status `json:"status,omitempty"`
	// Submission time, microseconds since epoch
	StartedAtUs int64 `json:"started_at_us,omitempty"`
	// CompletedAtUs holds the value of the "completed_at_us" field.
	CompletedAtUs *int64 `json:"completed_at_us,omitempty"`
	// FinalAnalysis holds the value of the "final_analysis" field.
	FinalAnalysis *string `json:"final_analysis,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Index of the stage now executing (or last executed)
	CurrentStageIndex *int `json:"current_stage_index,omitempty"`
	// Execution id of the stage now executing (or last executed)
	CurrentStageID *string `json:"current_stage_id,omitempty"`
	// Worker pod that claimed the session
	PodID *string `json:"pod_id,omitempty"`
	// Heartbeat for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlertSessionQuery when eager-loading is set.
	Edges        AlertSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlertSessionEdges holds the relations/edges for other nodes in the graph.
type AlertSessionEdges struct {
	// Stages holds the value of the stages edge.
	Stages []*StageExecution `json:"stages,omitempty"`
	// LlmInteractions holds the value of the llm_interactions edge.
	LlmInteractions []*LLMInteraction `json:"llm_interactions,omitempty"`
	// McpInteractions holds the value of the mcp_interactions edge.
	McpInteractions []*MCPInteraction `json:"mcp_interactions,omitempty"`
	// LifecycleEvents holds the value of the lifecycle_events edge.
	LifecycleEvents []*LifecycleEvent `json:"lifecycle_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// StagesOrErr returns the Stages value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) StagesOrErr() ([]*StageExecution, error) {
	if e.loadedTypes[0] {
		return e.Stages, nil
	}
	return nil, &NotLoadedError{edge: "stages"}
}

// LlmInteractionsOrErr returns the LlmInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) LlmInteractionsOrErr() ([]*LLMInteraction, error) {
	if e.loadedTypes[1] {
		return e.LlmInteractions, nil
	}
	return nil, &NotLoadedError{edge: "llm_interactions"}
}

// McpInteractionsOrErr returns the McpInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) McpInteractionsOrErr() ([]*MCPInteraction, error) {
	if e.loadedTypes[2] {
		return e.McpInteractions, nil
	}
	return nil, &NotLoadedError{edge: "mcp_interactions"}
}

// LifecycleEventsOrErr returns the LifecycleEvents value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) LifecycleEventsOrErr() ([]*LifecycleEvent, error) {
	if e.loadedTypes[3] {
		return e.LifecycleEvents, nil
	}
	return nil, &NotLoadedError{edge: "lifecycle_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlertSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alertsession.FieldAlertData, alertsession.FieldChainDefinition:
			values[i] = new([]byte)
		case alertsession.FieldStartedAtUs, alertsession.FieldCompletedAtUs, alertsession.FieldCurrentStageIndex:
			values[i] = new(sql.NullInt64)
		case alertsession.FieldID, alertsession.FieldAlertID, alertsession.FieldAlertType, alertsession.FieldChainID, alertsession.FieldStatus, alertsession.FieldFinalAnalysis, alertsession.FieldErrorMessage, alertsession.FieldCurrentStageID, alertsession.FieldPodID:
			values[i] = new(sql.NullString)
		case alertsession.FieldLastInteractionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlertSession fields.
func (_m *AlertSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alertsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alertsession.FieldAlertID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_id", values[i])
			} else if value.Valid {
				_m.AlertID = value.String
			}
		case alertsession.FieldAlertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_type", values[i])
			} else if value.Valid {
				_m.AlertType = value.String
			}
		case alertsession.FieldAlertData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alert_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AlertData); err != nil {
					return fmt.Errorf("unmarshal field alert_data: %w", err)
				}
			}
		case alertsession.FieldChainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chain_id", values[i])
			} else if value.Valid {
				_m.ChainID = value.String
			}
		case alertsession.FieldChainDefinition:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chain_definition", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChainDefinition); err != nil {
					return fmt.Errorf("unmarshal field chain_definition: %w", err)
				}
			}
		case alertsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = alertsession.Status(value.String)
			}
		case alertsession.FieldStartedAtUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field started_at_us", values[i])
			} else if value.Valid {
				_m.StartedAtUs = value.Int64
			}
		case alertsession.FieldCompletedAtUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at_us", values[i])
			} else if value.Valid {
				_m.CompletedAtUs = new(int64)
				*_m.CompletedAtUs = value.Int64
			}
		case alertsession.FieldFinalAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_analysis", values[i])
			} else if value.Valid {
				_m.FinalAnalysis = new(string)
				*_m.FinalAnalysis = value.String
			}
		case alertsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case alertsession.FieldCurrentStageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage_index", values[i])
			} else if value.Valid {
				_m.CurrentStageIndex = new(int)
				*_m.CurrentStageIndex = int(value.Int64)
			}
		case alertsession.FieldCurrentStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage_id", values[i])
			} else if value.Valid {
				_m.CurrentStageID = new(string)
				*_m.CurrentStageID = value.String
			}
		case alertsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case alertsession.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AlertSession.
// This includes values selected through modifiers, order, etc.
func (_m *AlertSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStages queries the "stages" edge of the AlertSession entity.
func (_m *AlertSession) QueryStages() *StageExecutionQuery {
	return NewAlertSessionClient(_m.config).QueryStages(_m)
}

// QueryLlmInteractions queries the "llm_interactions" edge of the AlertSession entity.
func (_m *AlertSession) QueryLlmInteractions() *LLMInteractionQuery {
	return NewAlertSessionClient(_m.config).QueryLlmInteractions(_m)
}

// QueryMcpInteractions queries the "mcp_interactions" edge of the AlertSession entity.
func (_m *AlertSession) QueryMcpInteractions() *MCPInteractionQuery {
	return NewAlertSessionClient(_m.config).QueryMcpInteractions(_m)
}

// QueryLifecycleEvents queries the "lifecycle_events" edge of the AlertSession entity.
func (_m *AlertSession) QueryLifecycleEvents() *LifecycleEventQuery {
	return NewAlertSessionClient(_m.config).QueryLifecycleEvents(_m)
}

// Update returns a builder for updating this AlertSession.
// Note that you need to call AlertSession.Unwrap() before calling this method if this AlertSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlertSession) Update() *AlertSessionUpdateOne {
	return NewAlertSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlertSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlertSession) Unwrap() *AlertSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlertSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlertSession) String() string {
	var builder strings.Builder
	builder.WriteString("AlertSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("alert_id=")
	builder.WriteString(_m.AlertID)
	builder.WriteString(", ")
	builder.WriteString("alert_type=")
	builder.WriteString(_m.AlertType)
	builder.WriteString(", ")
	builder.WriteString("alert_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertData))
	builder.WriteString(", ")
	builder.WriteString("chain_id=")
	builder.WriteString(_m.ChainID)
	builder.WriteString(", ")
	builder.WriteString("chain_definition=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChainDefinition))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at_us=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartedAtUs))
	builder.WriteString(", ")
	if v := _m.CompletedAtUs; v != nil {
		builder.WriteString("completed_at_us=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FinalAnalysis; v != nil {
		builder.WriteString("final_analysis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentStageIndex; v != nil {
		builder.WriteString("current_stage_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CurrentStageID; v != nil {
		builder.WriteString("current_stage_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AlertSessions is a parsable slice of AlertSession.
type AlertSessions []*AlertSession
