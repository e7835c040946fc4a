// Code generated by ent, DO NOT EDIT.

package governancedecision

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the governancedecision type in the database.
	Label = "governance_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldParticipants holds the string denoting the participants field in the database.
	FieldParticipants = "participants"
	// FieldApprovalRate holds the string denoting the approval_rate field in the database.
	FieldApprovalRate = "approval_rate"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldDecidedAt holds the string denoting the decided_at field in the database.
	FieldDecidedAt = "decided_at"
	// EdgeRule holds the string denoting the rule edge name in mutations.
	EdgeRule = "rule"
	// RiskRuleFieldID holds the string denoting the ID field of the RiskRule.
	RiskRuleFieldID = "rule_id"
	// Table holds the table name of the governancedecision in the database.
	Table = "governance_decisions"
	// RuleTable is the table that holds the rule relation/edge.
	RuleTable = "governance_decisions"
	// RuleInverseTable is the table name for the RiskRule entity.
	// It exists in this package in order to avoid circular dependency with the "riskrule" package.
	RuleInverseTable = "risk_rules"
	// RuleColumn is the table column denoting the rule relation/edge.
	RuleColumn = "rule_id"
)

// Columns holds all SQL columns for governancedecision fields.
var Columns = []string{
	FieldID,
	FieldRuleID,
	FieldParticipants,
	FieldApprovalRate,
	FieldOutcome,
	FieldDecidedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDecidedAt holds the default value on creation for the "decided_at" field.
	DefaultDecidedAt func() time.Time
)

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// Outcome values.
const (
	OutcomeAPPROVED Outcome = "APPROVED"
	OutcomeREJECTED Outcome = "REJECTED"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomeAPPROVED, OutcomeREJECTED:
		return nil
	default:
		return fmt.Errorf("governancedecision: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the GovernanceDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByApprovalRate orders the results by the approval_rate field.
func ByApprovalRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalRate, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByDecidedAt orders the results by the decided_at field.
func ByDecidedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedAt, opts...).ToFunc()
}

// ByRuleField orders the results by rule field.
func ByRuleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRuleStep(), sql.OrderByField(field, opts...))
	}
}
func newRuleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RuleInverseTable, RiskRuleFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RuleTable, RuleColumn),
	)
}
