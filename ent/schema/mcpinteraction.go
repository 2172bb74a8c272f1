package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MCPInteraction holds the schema definition for the MCPInteraction entity.
// Append-only audit of every MCP tool list/call made on behalf of a session.
type MCPInteraction struct {
	ent.Schema
}

// Fields of the MCPInteraction.
func (MCPInteraction) Fields() []ent.Field {
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
		field.String("server_name"),
		field.String("tool_name").
			Optional().
			Comment("Empty for tool_list interactions"),
		field.JSON("tool_arguments", map[string]interface{}{}).
			Optional(),
		field.JSON("tool_result", map[string]interface{}{}).
			Optional(),
		field.Enum("communication_type").
			Values("tool_call", "tool_list").
			Default("tool_call"),
		field.Int64("duration_ms"),
		field.Bool("success"),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the MCPInteraction.
func (MCPInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("mcp_interactions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MCPInteraction.
func (MCPInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp_us").Unique(),
		index.Fields("stage_execution_id"),
	}
}

// Annotations of the MCPInteraction.
func (MCPInteraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "mcp_interactions"},
	}
}
