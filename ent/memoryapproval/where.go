// Code generated by ent, DO NOT EDIT.

package memoryapproval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldContainsFold(FieldID, id))
}

// MemoryID applies equality check predicate on the "memory_id" field. It's identical to MemoryIDEQ.
func MemoryID(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldMemoryID, v))
}

// Approver applies equality check predicate on the "approver" field. It's identical to ApproverEQ.
func Approver(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldApprover, v))
}

// Approved applies equality check predicate on the "approved" field. It's identical to ApprovedEQ.
func Approved(v bool) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldApproved, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldCreatedAt, v))
}

// MemoryIDEQ applies the EQ predicate on the "memory_id" field.
func MemoryIDEQ(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldMemoryID, v))
}

// MemoryIDNEQ applies the NEQ predicate on the "memory_id" field.
func MemoryIDNEQ(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNEQ(FieldMemoryID, v))
}

// MemoryIDIn applies the In predicate on the "memory_id" field.
func MemoryIDIn(vs ...string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldIn(FieldMemoryID, vs...))
}

// MemoryIDNotIn applies the NotIn predicate on the "memory_id" field.
func MemoryIDNotIn(vs ...string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNotIn(FieldMemoryID, vs...))
}

// MemoryIDGT applies the GT predicate on the "memory_id" field.
func MemoryIDGT(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGT(FieldMemoryID, v))
}

// MemoryIDGTE applies the GTE predicate on the "memory_id" field.
func MemoryIDGTE(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGTE(FieldMemoryID, v))
}

// MemoryIDLT applies the LT predicate on the "memory_id" field.
func MemoryIDLT(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLT(FieldMemoryID, v))
}

// MemoryIDLTE applies the LTE predicate on the "memory_id" field.
func MemoryIDLTE(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLTE(FieldMemoryID, v))
}

// MemoryIDContains applies the Contains predicate on the "memory_id" field.
func MemoryIDContains(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldContains(FieldMemoryID, v))
}

// MemoryIDHasPrefix applies the HasPrefix predicate on the "memory_id" field.
func MemoryIDHasPrefix(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldHasPrefix(FieldMemoryID, v))
}

// MemoryIDHasSuffix applies the HasSuffix predicate on the "memory_id" field.
func MemoryIDHasSuffix(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldHasSuffix(FieldMemoryID, v))
}

// MemoryIDEqualFold applies the EqualFold predicate on the "memory_id" field.
func MemoryIDEqualFold(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEqualFold(FieldMemoryID, v))
}

// MemoryIDContainsFold applies the ContainsFold predicate on the "memory_id" field.
func MemoryIDContainsFold(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldContainsFold(FieldMemoryID, v))
}

// ApproverEQ applies the EQ predicate on the "approver" field.
func ApproverEQ(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldApprover, v))
}

// ApproverNEQ applies the NEQ predicate on the "approver" field.
func ApproverNEQ(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNEQ(FieldApprover, v))
}

// ApproverIn applies the In predicate on the "approver" field.
func ApproverIn(vs ...string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldIn(FieldApprover, vs...))
}

// ApproverNotIn applies the NotIn predicate on the "approver" field.
func ApproverNotIn(vs ...string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNotIn(FieldApprover, vs...))
}

// ApproverGT applies the GT predicate on the "approver" field.
func ApproverGT(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGT(FieldApprover, v))
}

// ApproverGTE applies the GTE predicate on the "approver" field.
func ApproverGTE(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGTE(FieldApprover, v))
}

// ApproverLT applies the LT predicate on the "approver" field.
func ApproverLT(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLT(FieldApprover, v))
}

// ApproverLTE applies the LTE predicate on the "approver" field.
func ApproverLTE(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLTE(FieldApprover, v))
}

// ApproverContains applies the Contains predicate on the "approver" field.
func ApproverContains(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldContains(FieldApprover, v))
}

// ApproverHasPrefix applies the HasPrefix predicate on the "approver" field.
func ApproverHasPrefix(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldHasPrefix(FieldApprover, v))
}

// ApproverHasSuffix applies the HasSuffix predicate on the "approver" field.
func ApproverHasSuffix(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldHasSuffix(FieldApprover, v))
}

// ApproverEqualFold applies the EqualFold predicate on the "approver" field.
func ApproverEqualFold(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEqualFold(FieldApprover, v))
}

// ApproverContainsFold applies the ContainsFold predicate on the "approver" field.
func ApproverContainsFold(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldContainsFold(FieldApprover, v))
}

// ApprovedEQ applies the EQ predicate on the "approved" field.
func ApprovedEQ(v bool) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldApproved, v))
}

// ApprovedNEQ applies the NEQ predicate on the "approved" field.
func ApprovedNEQ(v bool) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNEQ(FieldApproved, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMemory applies the HasEdge predicate on the "memory" edge.
func HasMemory() predicate.MemoryApproval {
	return predicate.MemoryApproval(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MemoryTable, MemoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemoryWith applies the HasEdge predicate on the "memory" edge with a given conditions (other predicates).
func HasMemoryWith(preds ...predicate.MemoryRecord) predicate.MemoryApproval {
	return predicate.MemoryApproval(func(s *sql.Selector) {
		step := newMemoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryApproval) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryApproval) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryApproval) predicate.MemoryApproval {
	return predicate.MemoryApproval(sql.NotPredicates(p))
}
