package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for one system event: cycle transitions,
// topic lifecycle changes, trigger firings, scheduler actions. Append-only.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("Event type (cycle.advanced, topic.scheduled, trigger.fired, ...)"),
		field.String("subject").
			Optional().
			Immutable().
			Comment("Primary entity id the event refers to"),
		field.String("actor").
			Optional().
			Immutable(),
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "created_at"),
		index.Fields("subject"),
	}
}
