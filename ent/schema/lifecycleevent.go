package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LifecycleEvent holds the schema definition for the LifecycleEvent entity.
// Append-only audit of session and stage transitions: creation, stage
// starts and outcomes, runbook failures, and the terminal status. Together
// with the interaction tables it makes the timeline reconstruct every error
// a session hit.
type LifecycleEvent struct {
	ent.Schema
}

// Fields of the LifecycleEvent.
func (LifecycleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("stage_execution_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set for stage-scoped events"),
		field.Int64("timestamp_us").
			Immutable().
			Comment("Strictly monotonic within a session"),
		field.String("event_type").
			Comment("Lifecycle transition, e.g. stage.started or runbook.failed"),
		field.String("stage_name").
			Optional().
			Nillable(),
		field.Int("stage_index").
			Optional().
			Nillable(),
		field.Text("detail").
			Optional().
			Nillable().
			Comment("Human-readable context, typically an error message"),
	}
}

// Edges of the LifecycleEvent.
func (LifecycleEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("lifecycle_events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LifecycleEvent.
func (LifecycleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp_us").Unique(),
		index.Fields("stage_execution_id"),
	}
}

// Annotations of the LifecycleEvent.
func (LifecycleEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lifecycle_events"},
	}
}
