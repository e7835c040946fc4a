package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalItem holds the schema definition for one operator approval item.
type ApprovalItem struct {
	ent.Schema
}

// Fields of the ApprovalItem.
func (ApprovalItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("kind"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("requester"),
		field.JSON("data", map[string]any{}).
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("decision_by").
			Optional(),
		field.Text("decision_reason").
			Optional(),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ApprovalItem.
func (ApprovalItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "expires_at"),
		index.Fields("requester"),
	}
}
