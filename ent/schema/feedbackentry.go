package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEntry holds the schema definition for one feedback item.
type FeedbackEntry struct {
	ent.Schema
}

// Fields of the FeedbackEntry.
func (FeedbackEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("agent"),
		field.Enum("category").
			Values("tool_request", "process_improvement", "org_issue",
				"collaboration", "capability_gap"),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the FeedbackEntry.
func (FeedbackEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "created_at"),
		index.Fields("agent"),
	}
}
