// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertSessionsColumns holds the columns for the "alert_sessions" table.
	AlertSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "alert_id", Type: field.TypeString},
		{Name: "alert_type", Type: field.TypeString},
		{Name: "alert_data", Type: field.TypeJSON},
		{Name: "chain_id", Type: field.TypeString},
		{Name: "chain_definition", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "partial", "failed"}, Default: "pending"},
		{Name: "started_at_us", Type: field.TypeInt64},
		{Name: "completed_at_us", Type: field.TypeInt64, Nullable: true},
		{Name: "final_analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "current_stage_index", Type: field.TypeInt, Nullable: true},
		{Name: "current_stage_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// AlertSessionsTable holds the schema information for the "alert_sessions" table.
	AlertSessionsTable = &schema.Table{
		Name:       "alert_sessions",
		Columns:    AlertSessionsColumns,
		PrimaryKey: []*schema.Column{AlertSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alertsession_status",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[6]},
			},
			{
				Name:    "alertsession_alert_type",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[2]},
			},
			{
				Name:    "alertsession_chain_id",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[4]},
			},
			{
				Name:    "alertsession_started_at_us",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[7]},
			},
		},
	}
	// LlmInteractionsColumns holds the columns for the "llm_interactions" table.
	LlmInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "stage_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp_us", Type: field.TypeInt64},
		{Name: "model_name", Type: field.TypeString},
		{Name: "conversation", Type: field.TypeJSON},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// LlmInteractionsTable holds the schema information for the "llm_interactions" table.
	LlmInteractionsTable = &schema.Table{
		Name:       "llm_interactions",
		Columns:    LlmInteractionsColumns,
		PrimaryKey: []*schema.Column{LlmInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_interactions_alert_sessions_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[8]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llminteraction_session_id_timestamp_us",
				Unique:  true,
				Columns: []*schema.Column{LlmInteractionsColumns[8], LlmInteractionsColumns[2]},
			},
			{
				Name:    "llminteraction_stage_execution_id",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[1]},
			},
		},
	}
	// LifecycleEventsColumns holds the columns for the "lifecycle_events" table.
	LifecycleEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "stage_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp_us", Type: field.TypeInt64},
		{Name: "event_type", Type: field.TypeString},
		{Name: "stage_name", Type: field.TypeString, Nullable: true},
		{Name: "stage_index", Type: field.TypeInt, Nullable: true},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_id", Type: field.TypeString},
	}
	// LifecycleEventsTable holds the schema information for the "lifecycle_events" table.
	LifecycleEventsTable = &schema.Table{
		Name:       "lifecycle_events",
		Columns:    LifecycleEventsColumns,
		PrimaryKey: []*schema.Column{LifecycleEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lifecycle_events_alert_sessions_lifecycle_events",
				Columns:    []*schema.Column{LifecycleEventsColumns[7]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lifecycleevent_session_id_timestamp_us",
				Unique:  true,
				Columns: []*schema.Column{LifecycleEventsColumns[7], LifecycleEventsColumns[2]},
			},
			{
				Name:    "lifecycleevent_stage_execution_id",
				Unique:  false,
				Columns: []*schema.Column{LifecycleEventsColumns[1]},
			},
		},
	}
	// McpInteractionsColumns holds the columns for the "mcp_interactions" table.
	McpInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "stage_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp_us", Type: field.TypeInt64},
		{Name: "server_name", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_result", Type: field.TypeJSON, Nullable: true},
		{Name: "communication_type", Type: field.TypeEnum, Enums: []string{"tool_call", "tool_list"}, Default: "tool_call"},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// McpInteractionsTable holds the schema information for the "mcp_interactions" table.
	McpInteractionsTable = &schema.Table{
		Name:       "mcp_interactions",
		Columns:    McpInteractionsColumns,
		PrimaryKey: []*schema.Column{McpInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mcp_interactions_alert_sessions_mcp_interactions",
				Columns:    []*schema.Column{McpInteractionsColumns[11]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mcpinteraction_session_id_timestamp_us",
				Unique:  true,
				Columns: []*schema.Column{McpInteractionsColumns[11], McpInteractionsColumns[2]},
			},
			{
				Name:    "mcpinteraction_stage_execution_id",
				Unique:  false,
				Columns: []*schema.Column{McpInteractionsColumns[1]},
			},
		},
	}
	// StageExecutionsColumns holds the columns for the "stage_executions" table.
	StageExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString},
		{Name: "stage_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed"}, Default: "pending"},
		{Name: "iteration_strategy", Type: field.TypeString},
		{Name: "started_at_us", Type: field.TypeInt64, Nullable: true},
		{Name: "completed_at_us", Type: field.TypeInt64, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "stage_output", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// StageExecutionsTable holds the schema information for the "stage_executions" table.
	StageExecutionsTable = &schema.Table{
		Name:       "stage_executions",
		Columns:    StageExecutionsColumns,
		PrimaryKey: []*schema.Column{StageExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_executions_alert_sessions_stages",
				Columns:    []*schema.Column{StageExecutionsColumns[12]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageexecution_session_id_stage_index",
				Unique:  true,
				Columns: []*schema.Column{StageExecutionsColumns[12], StageExecutionsColumns[4]},
			},
			{
				Name:    "stageexecution_status",
				Unique:  false,
				Columns: []*schema.Column{StageExecutionsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertSessionsTable,
		LlmInteractionsTable,
		LifecycleEventsTable,
		McpInteractionsTable,
		StageExecutionsTable,
	}
)

func init() {
	AlertSessionsTable.Annotation = &entsql.Annotation{
		Table: "alert_sessions",
	}
	LlmInteractionsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	LlmInteractionsTable.Annotation = &entsql.Annotation{
		Table: "llm_interactions",
	}
	LifecycleEventsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	LifecycleEventsTable.Annotation = &entsql.Annotation{
		Table: "lifecycle_events",
	}
	McpInteractionsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	McpInteractionsTable.Annotation = &entsql.Annotation{
		Table: "mcp_interactions",
	}
	StageExecutionsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	StageExecutionsTable.Annotation = &entsql.Annotation{
		Table: "stage_executions",
	}
}
