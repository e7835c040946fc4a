// Code generated by ent, DO NOT EDIT.

package budgetaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldContainsFold(FieldID, id))
}

// BaseWeeklyPoints applies equality check predicate on the "base_weekly_points" field. It's identical to BaseWeeklyPointsEQ.
func BaseWeeklyPoints(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldBaseWeeklyPoints, v))
}

// CurrentPeriodStart applies equality check predicate on the "current_period_start" field. It's identical to CurrentPeriodStartEQ.
func CurrentPeriodStart(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldCurrentPeriodStart, v))
}

// PointsSpent applies equality check predicate on the "points_spent" field. It's identical to PointsSpentEQ.
func PointsSpent(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldPointsSpent, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountTypeEQ applies the EQ predicate on the "account_type" field.
func AccountTypeEQ(v AccountType) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldAccountType, v))
}

// AccountTypeNEQ applies the NEQ predicate on the "account_type" field.
func AccountTypeNEQ(v AccountType) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNEQ(FieldAccountType, v))
}

// AccountTypeIn applies the In predicate on the "account_type" field.
func AccountTypeIn(vs ...AccountType) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldIn(FieldAccountType, vs...))
}

// AccountTypeNotIn applies the NotIn predicate on the "account_type" field.
func AccountTypeNotIn(vs ...AccountType) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNotIn(FieldAccountType, vs...))
}

// BaseWeeklyPointsEQ applies the EQ predicate on the "base_weekly_points" field.
func BaseWeeklyPointsEQ(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldBaseWeeklyPoints, v))
}

// BaseWeeklyPointsNEQ applies the NEQ predicate on the "base_weekly_points" field.
func BaseWeeklyPointsNEQ(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNEQ(FieldBaseWeeklyPoints, v))
}

// BaseWeeklyPointsIn applies the In predicate on the "base_weekly_points" field.
func BaseWeeklyPointsIn(vs ...int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldIn(FieldBaseWeeklyPoints, vs...))
}

// BaseWeeklyPointsNotIn applies the NotIn predicate on the "base_weekly_points" field.
func BaseWeeklyPointsNotIn(vs ...int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNotIn(FieldBaseWeeklyPoints, vs...))
}

// BaseWeeklyPointsGT applies the GT predicate on the "base_weekly_points" field.
func BaseWeeklyPointsGT(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGT(FieldBaseWeeklyPoints, v))
}

// BaseWeeklyPointsGTE applies the GTE predicate on the "base_weekly_points" field.
func BaseWeeklyPointsGTE(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGTE(FieldBaseWeeklyPoints, v))
}

// BaseWeeklyPointsLT applies the LT predicate on the "base_weekly_points" field.
func BaseWeeklyPointsLT(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLT(FieldBaseWeeklyPoints, v))
}

// BaseWeeklyPointsLTE applies the LTE predicate on the "base_weekly_points" field.
func BaseWeeklyPointsLTE(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLTE(FieldBaseWeeklyPoints, v))
}

// CurrentPeriodStartEQ applies the EQ predicate on the "current_period_start" field.
func CurrentPeriodStartEQ(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartNEQ applies the NEQ predicate on the "current_period_start" field.
func CurrentPeriodStartNEQ(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNEQ(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartIn applies the In predicate on the "current_period_start" field.
func CurrentPeriodStartIn(vs ...time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldIn(FieldCurrentPeriodStart, vs...))
}

// CurrentPeriodStartNotIn applies the NotIn predicate on the "current_period_start" field.
func CurrentPeriodStartNotIn(vs ...time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNotIn(FieldCurrentPeriodStart, vs...))
}

// CurrentPeriodStartGT applies the GT predicate on the "current_period_start" field.
func CurrentPeriodStartGT(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGT(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartGTE applies the GTE predicate on the "current_period_start" field.
func CurrentPeriodStartGTE(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGTE(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartLT applies the LT predicate on the "current_period_start" field.
func CurrentPeriodStartLT(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLT(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartLTE applies the LTE predicate on the "current_period_start" field.
func CurrentPeriodStartLTE(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLTE(FieldCurrentPeriodStart, v))
}

// PointsSpentEQ applies the EQ predicate on the "points_spent" field.
func PointsSpentEQ(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldPointsSpent, v))
}

// PointsSpentNEQ applies the NEQ predicate on the "points_spent" field.
func PointsSpentNEQ(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNEQ(FieldPointsSpent, v))
}

// PointsSpentIn applies the In predicate on the "points_spent" field.
func PointsSpentIn(vs ...int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldIn(FieldPointsSpent, vs...))
}

// PointsSpentNotIn applies the NotIn predicate on the "points_spent" field.
func PointsSpentNotIn(vs ...int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNotIn(FieldPointsSpent, vs...))
}

// PointsSpentGT applies the GT predicate on the "points_spent" field.
func PointsSpentGT(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGT(FieldPointsSpent, v))
}

// PointsSpentGTE applies the GTE predicate on the "points_spent" field.
func PointsSpentGTE(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGTE(FieldPointsSpent, v))
}

// PointsSpentLT applies the LT predicate on the "points_spent" field.
func PointsSpentLT(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLT(FieldPointsSpent, v))
}

// PointsSpentLTE applies the LTE predicate on the "points_spent" field.
func PointsSpentLTE(v int) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLTE(FieldPointsSpent, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BudgetAccount) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BudgetAccount) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BudgetAccount) predicate.BudgetAccount {
	return predicate.BudgetAccount(sql.NotPredicates(p))
}
