package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentProfile holds the schema definition for one configured agent.
type AgentProfile struct {
	ent.Schema
}

// Fields of the AgentProfile.
func (AgentProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("department"),
		field.String("team").
			Optional(),
		field.String("reports_to").
			Optional(),
		field.String("role").
			Comment("Behavioral role kind (researcher, risk, trader, ...)"),
		field.Bool("is_lead").
			Default(false),
		field.Enum("status").
			Values("ACTIVE", "FROZEN", "SUSPENDED", "TERMINATED").
			Default("ACTIVE"),
		field.Time("last_active").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentProfile.
func (AgentProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("department"),
		index.Fields("team"),
		index.Fields("status"),
	}
}
