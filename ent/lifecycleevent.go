// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/ent/lifecycleevent"
)

// LifecycleEvent is the model entity for the LifecycleEvent schema.
type LifecycleEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Set for stage-scoped events
	StageExecutionID *string `json:"stage_execution_id,omitempty"`
	// Strictly monotonic within a session
	TimestampUs int64 `json:"timestamp_us,omitempty"`
	// Lifecycle transition, e.g. stage.started or runbook.failed
	EventType string `json:"event_type,omitempty"`
	// StageName holds the value of the "stage_name" field.
	StageName *string `json:"stage_name,omitempty"`
	// StageIndex holds the value of the "stage_index" field.
	StageIndex *int `json:"stage_index,omitempty"`
	// Human-readable context, typically an error message
	Detail *string `json:"detail,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LifecycleEventQuery when eager-loading is set.
	Edges        LifecycleEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LifecycleEventEdges holds the relations/edges for other nodes in the graph.
type LifecycleEventEdges struct {
	// Session holds the value of the session edge.
	Session *AlertSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LifecycleEventEdges) SessionOrErr() (*AlertSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: alertsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LifecycleEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lifecycleevent.FieldTimestampUs, lifecycleevent.FieldStageIndex:
			values[i] = new(sql.NullInt64)
		case lifecycleevent.FieldID, lifecycleevent.FieldSessionID, lifecycleevent.FieldStageExecutionID, lifecycleevent.FieldEventType, lifecycleevent.FieldStageName, lifecycleevent.FieldDetail:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LifecycleEvent fields.
func (_m *LifecycleEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lifecycleevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case lifecycleevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case lifecycleevent.FieldStageExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_execution_id", values[i])
			} else if value.Valid {
				_m.StageExecutionID = new(string)
				*_m.StageExecutionID = value.String
			}
		case lifecycleevent.FieldTimestampUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp_us", values[i])
			} else if value.Valid {
				_m.TimestampUs = value.Int64
			}
		case lifecycleevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case lifecycleevent.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = new(string)
				*_m.StageName = value.String
			}
		case lifecycleevent.FieldStageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_index", values[i])
			} else if value.Valid {
				_m.StageIndex = new(int)
				*_m.StageIndex = int(value.Int64)
			}
		case lifecycleevent.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = new(string)
				*_m.Detail = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LifecycleEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LifecycleEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the LifecycleEvent entity.
func (_m *LifecycleEvent) QuerySession() *AlertSessionQuery {
	return NewLifecycleEventClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this LifecycleEvent.
// Note that you need to call LifecycleEvent.Unwrap() before calling this method if this LifecycleEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LifecycleEvent) Update() *LifecycleEventUpdateOne {
	return NewLifecycleEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LifecycleEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LifecycleEvent) Unwrap() *LifecycleEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LifecycleEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LifecycleEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LifecycleEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	if v := _m.StageExecutionID; v != nil {
		builder.WriteString("stage_execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timestamp_us=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimestampUs))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	if v := _m.StageName; v != nil {
		builder.WriteString("stage_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StageIndex; v != nil {
		builder.WriteString("stage_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Detail; v != nil {
		builder.WriteString("detail=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// LifecycleEvents is a parsable slice of LifecycleEvent.
type LifecycleEvents []*LifecycleEvent
