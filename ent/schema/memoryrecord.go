package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryRecord holds the schema definition for one knowledge memory.
type MemoryRecord struct {
	ent.Schema
}

// Fields of the MemoryRecord.
func (MemoryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("agent"),
		field.String("team").
			Optional(),
		field.Text("content").
			MaxLen(500),
		field.JSON("tags", []string{}).
			Optional(),
		field.Enum("scope").
			Values("private", "team", "org"),
		field.Float("confidence"),
		field.String("experiment_id").
			Optional(),
		field.String("data_version_hash").
			Optional(),
		field.String("artifact_id").
			Optional(),
		field.JSON("embedding", []float32{}).
			Optional(),
		field.Enum("approval_status").
			Values("PENDING", "APPROVED", "REJECTED").
			Default("PENDING"),
		field.Int("needed_approvals").
			Default(0),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MemoryRecord.
func (MemoryRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("approvals", MemoryApproval.Type),
	}
}

// Indexes of the MemoryRecord.
func (MemoryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent"),
		index.Fields("scope", "approval_status"),
		index.Fields("experiment_id"),
	}
}
