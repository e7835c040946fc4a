package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryApproval holds the schema definition for one approval vote on a
// shared memory record.
type MemoryApproval struct {
	ent.Schema
}

// Fields of the MemoryApproval.
func (MemoryApproval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("memory_id").
			Immutable(),
		field.String("approver"),
		field.Bool("approved"),
		field.Text("reason").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MemoryApproval.
func (MemoryApproval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("memory", MemoryRecord.Type).
			Ref("approvals").
			Field("memory_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MemoryApproval.
func (MemoryApproval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("memory_id", "approver").
			Unique(),
	}
}
