package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BudgetAccount holds the schema definition for one compute-point account.
// The row mirrors the in-memory account and is upserted on every deduction.
type BudgetAccount struct {
	ent.Schema
}

// Fields of the BudgetAccount.
func (BudgetAccount) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("account_id").
			Unique().
			Immutable(),
		field.Enum("account_type").
			Values("agent", "team", "department"),
		field.Int("base_weekly_points"),
		field.Time("current_period_start"),
		field.Int("points_spent").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the BudgetAccount.
func (BudgetAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_type"),
	}
}
