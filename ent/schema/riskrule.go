package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RiskRule holds the schema definition for one governed risk rule.
type RiskRule struct {
	ent.Schema
}

// Fields of the RiskRule.
func (RiskRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("kind"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.JSON("parameters", map[string]float64{}).
			Optional(),
		field.Enum("status").
			Values("PROPOSED", "APPROVED", "REJECTED", "ACTIVE", "SUSPENDED").
			Default("PROPOSED"),
		field.String("proposer"),
		field.JSON("required_voters", []string{}).
			Comment("Roles that must vote before tallying"),
		field.JSON("votes", []map[string]any{}).
			Optional(),
		field.Time("effective_from").
			Optional().
			Nillable(),
		field.String("suspended_by").
			Optional(),
		field.Text("suspend_reason").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RiskRule.
func (RiskRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("decisions", GovernanceDecision.Type),
	}
}

// Indexes of the RiskRule.
func (RiskRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("kind"),
	}
}
