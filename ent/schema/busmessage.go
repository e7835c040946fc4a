package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BusMessage holds the schema definition for one routed message. Rows are
// append-only; the in-memory history ring is the hot path and this table is
// the durable trail.
type BusMessage struct {
	ent.Schema
}

// Fields of the BusMessage.
func (BusMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("channel_kind").
			Immutable(),
		field.String("channel_id").
			Optional().
			Immutable(),
		field.String("from_agent").
			Immutable(),
		field.String("to_agent").
			Optional().
			Immutable(),
		field.String("subject").
			Optional().
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("kind").
			Immutable(),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Int("priority").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BusMessage.
func (BusMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("from_agent", "created_at"),
		index.Fields("to_agent", "created_at"),
		index.Fields("channel_kind", "channel_id"),
	}
}
