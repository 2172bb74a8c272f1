package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertSession holds the schema definition for the AlertSession entity.
// One row per submitted alert; the audit root for stages and interactions.
type AlertSession struct {
	ent.Schema
}

// Fields of the AlertSession.
func (AlertSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("alert_id").
			Comment("Client-supplied or generated alert identifier"),
		field.String("alert_type").
			Comment("Routing key that selected the chain"),
		field.JSON("alert_data", map[string]interface{}{}).
			Comment("Original alert payload"),
		field.String("chain_id").
			Comment("Chain that processed this alert"),
		field.JSON("chain_definition", map[string]interface{}{}).
			Comment("Snapshot of the chain definition at submission time"),
		field.Enum("status").
			Values("pending", "processing", "completed", "partial", "failed").
			Default("pending"),
		field.Int64("started_at_us").
			Immutable().
			Comment("Submission time, microseconds since epoch"),
		field.Int64("completed_at_us").
			Optional().
			Nillable(),
		field.Text("final_analysis").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("current_stage_index").
			Optional().
			Nillable().
			Comment("Index of the stage now executing (or last executed)"),
		field.String("current_stage_id").
			Optional().
			Nillable().
			Comment("Execution id of the stage now executing (or last executed)"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker pod that claimed the session"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
	}
}

// Edges of the AlertSession.
func (AlertSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", StageExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mcp_interactions", MCPInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("lifecycle_events", LifecycleEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AlertSession.
func (AlertSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("alert_type"),
		index.Fields("chain_id"),
		index.Fields("started_at_us"),
	}
}

// Annotations of the AlertSession.
func (AlertSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "alert_sessions"},
	}
}
