package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IntentionRecord holds the schema definition for one expressed intention.
type IntentionRecord struct {
	ent.Schema
}

// Fields of the IntentionRecord.
func (IntentionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("intention_id").
			Unique().
			Immutable(),
		field.String("agent"),
		field.String("kind"),
		field.Int("priority").
			Default(0),
		field.JSON("action_context", map[string]any{}).
			Optional(),
		field.JSON("target_agents", []string{}).
			Optional(),
		field.String("scope").
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "expired").
			Default("pending"),
		field.Text("reject_reason").
			Optional(),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the IntentionRecord.
func (IntentionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent", "status"),
		index.Fields("status", "expires_at"),
	}
}
