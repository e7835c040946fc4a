package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolRequest holds the schema definition for one aggregated tool request.
// Duplicate requests for the same undeployed tool increment request_count on
// the existing row.
type ToolRequest struct {
	ent.Schema
}

// Fields of the ToolRequest.
func (ToolRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.String("tool_name"),
		field.Text("description").
			Optional(),
		field.JSON("requesters", []string{}),
		field.Int("request_count").
			Default(1),
		field.Float("urgency"),
		field.Float("feasibility"),
		field.Bool("deployed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ToolRequest.
func (ToolRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tool_name", "deployed"),
	}
}
