package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMInteraction holds the schema definition for the LLMInteraction entity.
// Append-only audit of every LLM call made on behalf of a session.
type LLMInteraction struct {
	ent.Schema
}

// Fields of the LLMInteraction.
func (LLMInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("stage_execution_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set when a stage was active at call time"),
		field.Int64("timestamp_us").
			Immutable().
			Comment("Strictly monotonic within a session"),
		field.String("model_name"),
		field.JSON("conversation", []map[string]interface{}{}).
			Comment("Full message list sent to the provider, plus the response"),
		field.Int64("duration_ms"),
		field.Bool("success"),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the LLMInteraction.
func (LLMInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("llm_interactions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LLMInteraction.
func (LLMInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp_us").Unique(),
		index.Fields("stage_execution_id"),
	}
}

// Annotations of the LLMInteraction.
func (LLMInteraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "llm_interactions"},
	}
}
