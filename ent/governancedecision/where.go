// Code generated by ent, DO NOT EDIT.

package governancedecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldContainsFold(FieldID, id))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEQ(FieldRuleID, v))
}

// ApprovalRate applies equality check predicate on the "approval_rate" field. It's identical to ApprovalRateEQ.
func ApprovalRate(v float64) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEQ(FieldApprovalRate, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEQ(FieldDecidedAt, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldContainsFold(FieldRuleID, v))
}

// ApprovalRateEQ applies the EQ predicate on the "approval_rate" field.
func ApprovalRateEQ(v float64) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEQ(FieldApprovalRate, v))
}

// ApprovalRateNEQ applies the NEQ predicate on the "approval_rate" field.
func ApprovalRateNEQ(v float64) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNEQ(FieldApprovalRate, v))
}

// ApprovalRateIn applies the In predicate on the "approval_rate" field.
func ApprovalRateIn(vs ...float64) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldIn(FieldApprovalRate, vs...))
}

// ApprovalRateNotIn applies the NotIn predicate on the "approval_rate" field.
func ApprovalRateNotIn(vs ...float64) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNotIn(FieldApprovalRate, vs...))
}

// ApprovalRateGT applies the GT predicate on the "approval_rate" field.
func ApprovalRateGT(v float64) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldGT(FieldApprovalRate, v))
}

// ApprovalRateGTE applies the GTE predicate on the "approval_rate" field.
func ApprovalRateGTE(v float64) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldGTE(FieldApprovalRate, v))
}

// ApprovalRateLT applies the LT predicate on the "approval_rate" field.
func ApprovalRateLT(v float64) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldLT(FieldApprovalRate, v))
}

// ApprovalRateLTE applies the LTE predicate on the "approval_rate" field.
func ApprovalRateLTE(v float64) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldLTE(FieldApprovalRate, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNotIn(FieldOutcome, vs...))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.FieldLTE(FieldDecidedAt, v))
}

// HasRule applies the HasEdge predicate on the "rule" edge.
func HasRule() predicate.GovernanceDecision {
	return predicate.GovernanceDecision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RuleTable, RuleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRuleWith applies the HasEdge predicate on the "rule" edge with a given conditions (other predicates).
func HasRuleWith(preds ...predicate.RiskRule) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(func(s *sql.Selector) {
		step := newRuleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GovernanceDecision) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GovernanceDecision) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GovernanceDecision) predicate.GovernanceDecision {
	return predicate.GovernanceDecision(sql.NotPredicates(p))
}
