package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolCall holds the schema definition for one tool-call audit row. Rows are
// append-only and written synchronously before the tool result is returned.
type ToolCall struct {
	ent.Schema
}

// Fields of the ToolCall.
func (ToolCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_id").
			Unique().
			Immutable(),
		field.String("agent"),
		field.String("tool"),
		field.JSON("args", map[string]any{}).
			Optional(),
		field.Int("estimated_cost").
			Default(0),
		field.Int("actual_cost").
			Default(0),
		field.Enum("status").
			Values("requested", "rejected", "executing", "completed", "failed"),
		field.Text("error_message").
			Optional(),
		field.String("data_version_hash").
			Optional().
			Comment("Provenance hash reported by data-producing tools"),
		field.String("experiment_id").
			Optional(),
		field.String("meeting_id").
			Optional(),
		field.String("cycle_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ToolCall.
func (ToolCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent", "created_at"),
		index.Fields("tool", "status"),
		index.Fields("experiment_id"),
		index.Fields("cycle_id"),
	}
}
