package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchCycle holds the schema definition for one strategy moving through
// the research pipeline.
type ResearchCycle struct {
	ent.Schema
}

// Fields of the ResearchCycle.
func (ResearchCycle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cycle_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.String("owner"),
		field.Enum("state").
			Values("IDEA_INTAKE", "DATA_GATE", "BACKTEST_GATE", "ROBUSTNESS_GATE",
				"RISK_SKEPTIC_GATE", "IC_REVIEW", "BOARD_PACK", "BOARD_DECISION",
				"ARCHIVE").
			Default("IDEA_INTAKE"),
		field.Int("rejections").
			Default(0),
		field.JSON("history", []map[string]any{}).
			Optional().
			Comment("Transition audit rows"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ResearchCycle.
func (ResearchCycle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner"),
		index.Fields("state"),
	}
}
