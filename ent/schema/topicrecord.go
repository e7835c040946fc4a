package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicRecord holds the schema definition for one discussion topic.
type TopicRecord struct {
	ent.Schema
}

// Fields of the TopicRecord.
func (TopicRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("topic_id").
			Unique().
			Immutable(),
		field.String("kind"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Int("priority").
			Default(0),
		field.Enum("status").
			Values("DRAFT", "PROPOSED", "SECONDING", "SCHEDULED", "IN_PROGRESS",
				"RESOLVED", "REJECTED", "EXPIRED").
			Default("PROPOSED"),
		field.String("proposer"),
		field.JSON("seconds", []map[string]any{}).
			Optional().
			Comment("Supporter endorsements with reasons"),
		field.Int("required_seconds").
			Default(0),
		field.String("meeting_id").
			Optional(),
		field.Time("scheduled_at").
			Optional().
			Nillable(),
		field.Time("expires_at"),
		field.Text("resolution").
			Optional(),
		field.JSON("action_items", []map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TopicRecord.
func (TopicRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "expires_at"),
		index.Fields("proposer"),
		index.Fields("kind"),
	}
}
