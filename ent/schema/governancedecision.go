package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GovernanceDecision holds the schema definition for one completed vote
// tally on a risk rule.
type GovernanceDecision struct {
	ent.Schema
}

// Fields of the GovernanceDecision.
func (GovernanceDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("rule_id").
			Immutable(),
		field.JSON("participants", []string{}),
		field.Float("approval_rate"),
		field.Enum("outcome").
			Values("APPROVED", "REJECTED"),
		field.Time("decided_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the GovernanceDecision.
func (GovernanceDecision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("rule", RiskRule.Type).
			Ref("decisions").
			Field("rule_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the GovernanceDecision.
func (GovernanceDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule_id"),
	}
}
