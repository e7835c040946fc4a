// Code generated by ent, DO NOT EDIT.

package riskrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the riskrule type in the database.
	Label = "risk_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProposer holds the string denoting the proposer field in the database.
	FieldProposer = "proposer"
	// FieldRequiredVoters holds the string denoting the required_voters field in the database.
	FieldRequiredVoters = "required_voters"
	// FieldVotes holds the string denoting the votes field in the database.
	FieldVotes = "votes"
	// FieldEffectiveFrom holds the string denoting the effective_from field in the database.
	FieldEffectiveFrom = "effective_from"
	// FieldSuspendedBy holds the string denoting the suspended_by field in the database.
	FieldSuspendedBy = "suspended_by"
	// FieldSuspendReason holds the string denoting the suspend_reason field in the database.
	FieldSuspendReason = "suspend_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDecisions holds the string denoting the decisions edge name in mutations.
	EdgeDecisions = "decisions"
	// GovernanceDecisionFieldID holds the string denoting the ID field of the GovernanceDecision.
	GovernanceDecisionFieldID = "decision_id"
	// Table holds the table name of the riskrule in the database.
	Table = "risk_rules"
	// DecisionsTable is the table that holds the decisions relation/edge.
	DecisionsTable = "governance_decisions"
	// DecisionsInverseTable is the table name for the GovernanceDecision entity.
	// It exists in this package in order to avoid circular dependency with the "governancedecision" package.
	DecisionsInverseTable = "governance_decisions"
	// DecisionsColumn is the table column denoting the decisions relation/edge.
	DecisionsColumn = "rule_id"
)

// Columns holds all SQL columns for riskrule fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldTitle,
	FieldDescription,
	FieldParameters,
	FieldStatus,
	FieldProposer,
	FieldRequiredVoters,
	FieldVotes,
	FieldEffectiveFrom,
	FieldSuspendedBy,
	FieldSuspendReason,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPROPOSED is the default value of the Status enum.
const DefaultStatus = StatusPROPOSED

// Status values.
const (
	StatusPROPOSED  Status = "PROPOSED"
	StatusAPPROVED  Status = "APPROVED"
	StatusREJECTED  Status = "REJECTED"
	StatusACTIVE    Status = "ACTIVE"
	StatusSUSPENDED Status = "SUSPENDED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPROPOSED, StatusAPPROVED, StatusREJECTED, StatusACTIVE, StatusSUSPENDED:
		return nil
	default:
		return fmt.Errorf("riskrule: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RiskRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProposer orders the results by the proposer field.
func ByProposer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposer, opts...).ToFunc()
}

// ByEffectiveFrom orders the results by the effective_from field.
func ByEffectiveFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveFrom, opts...).ToFunc()
}

// BySuspendedBy orders the results by the suspended_by field.
func BySuspendedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspendedBy, opts...).ToFunc()
}

// BySuspendReason orders the results by the suspend_reason field.
func BySuspendReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspendReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDecisionsCount orders the results by decisions count.
func ByDecisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDecisionsStep(), opts...)
	}
}

// ByDecisions orders the results by decisions terms.
func ByDecisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDecisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDecisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DecisionsInverseTable, GovernanceDecisionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DecisionsTable, DecisionsColumn),
	)
}
