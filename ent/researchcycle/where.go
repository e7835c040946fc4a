// Code generated by ent, DO NOT EDIT.

package researchcycle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldTitle, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldOwner, v))
}

// Rejections applies equality check predicate on the "rejections" field. It's identical to RejectionsEQ.
func Rejections(v int) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldRejections, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldContainsFold(FieldTitle, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldContainsFold(FieldOwner, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNotIn(FieldState, vs...))
}

// RejectionsEQ applies the EQ predicate on the "rejections" field.
func RejectionsEQ(v int) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldRejections, v))
}

// RejectionsNEQ applies the NEQ predicate on the "rejections" field.
func RejectionsNEQ(v int) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNEQ(FieldRejections, v))
}

// RejectionsIn applies the In predicate on the "rejections" field.
func RejectionsIn(vs ...int) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldIn(FieldRejections, vs...))
}

// RejectionsNotIn applies the NotIn predicate on the "rejections" field.
func RejectionsNotIn(vs ...int) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNotIn(FieldRejections, vs...))
}

// RejectionsGT applies the GT predicate on the "rejections" field.
func RejectionsGT(v int) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGT(FieldRejections, v))
}

// RejectionsGTE applies the GTE predicate on the "rejections" field.
func RejectionsGTE(v int) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGTE(FieldRejections, v))
}

// RejectionsLT applies the LT predicate on the "rejections" field.
func RejectionsLT(v int) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLT(FieldRejections, v))
}

// RejectionsLTE applies the LTE predicate on the "rejections" field.
func RejectionsLTE(v int) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLTE(FieldRejections, v))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNotNull(FieldHistory))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchCycle) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchCycle) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchCycle) predicate.ResearchCycle {
	return predicate.ResearchCycle(sql.NotPredicates(p))
}
