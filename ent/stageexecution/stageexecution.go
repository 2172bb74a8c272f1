// Code generated by ent, DO NOT EDIT.

package stageexecution

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stageexecution type in the database.
	Label = "stage_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldStageName holds the string denoting the stage_name field in the database.
	FieldStageName = "stage_name"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldStageIndex holds the string denoting the stage_index field in the database.
	FieldStageIndex = "stage_index"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIterationStrategy holds the string denoting the iteration_strategy field in the database.
	FieldIterationStrategy = "iteration_strategy"
	// FieldStartedAtUs holds the string denoting the started_at_us field in the database.
	FieldStartedAtUs = "started_at_us"
	// FieldCompletedAtUs holds the string denoting the completed_at_us field in the database.
	FieldCompletedAtUs = "completed_at_us"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldStageOutput holds the string denoting the stage_output field in the database.
	FieldStageOutput = "stage_output"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// AlertSessionFieldID holds the string denoting the ID field of the AlertSession.
	AlertSessionFieldID = "session_id"
	// Table holds the table name of the stageexecution in the database.
	Table = "stage_executions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "stage_executions"
	// SessionInverseTable is the table name for the AlertSession entity.
	// It exists in this package in order to avoid circular dependency with the "alertsession" package.
	SessionInverseTable = "alert_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for stageexecution fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldStageID,
	FieldStageName,
	FieldAgent,
	FieldStageIndex,
	FieldStatus,
	FieldIterationStrategy,
	FieldStartedAtUs,
	FieldCompletedAtUs,
	FieldDurationMs,
	FieldStageOutput,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("stageexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StageExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByStageName orders the results by the stage_name field.
func ByStageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageName, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByStageIndex orders the results by the stage_index field.
func ByStageIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageIndex, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIterationStrategy orders the results by the iteration_strategy field.
func ByIterationStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterationStrategy, opts...).ToFunc()
}

// ByStartedAtUs orders the results by the started_at_us field.
func ByStartedAtUs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAtUs, opts...).ToFunc()
}

// ByCompletedAtUs orders the results by the completed_at_us field.
func ByCompletedAtUs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAtUs, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, AlertSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
