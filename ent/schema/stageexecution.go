package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageExecution holds the schema definition for the StageExecution entity.
// One row per chain stage run within a session, in execution order.
type StageExecution struct {
	ent.Schema
}

// Fields of the StageExecution.
func (StageExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("stage_id").
			Immutable().
			Comment("Stage identifier from the chain definition"),
		field.String("stage_name"),
		field.String("agent").
			Comment("Agent identifier that ran this stage"),
		field.Int("stage_index").
			Comment("Position in the chain, contiguous from 0"),
		field.Enum("status").
			Values("pending", "active", "completed", "failed").
			Default("pending"),
		field.String("iteration_strategy"),
		field.Int64("started_at_us").
			Optional().
			Nillable(),
		field.Int64("completed_at_us").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.JSON("stage_output", map[string]interface{}{}).
			Optional().
			Comment("Structured result; mutually exclusive with error_message"),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the StageExecution.
func (StageExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("stages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StageExecution.
func (StageExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "stage_index").Unique(),
		index.Fields("status"),
	}
}

// Annotations of the StageExecution.
func (StageExecution) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stage_executions"},
	}
}
