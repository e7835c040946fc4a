// Code generated by ent, DO NOT EDIT.

package memoryrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the memoryrecord type in the database.
	Label = "memory_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldTeam holds the string denoting the team field in the database.
	FieldTeam = "team"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldExperimentID holds the string denoting the experiment_id field in the database.
	FieldExperimentID = "experiment_id"
	// FieldDataVersionHash holds the string denoting the data_version_hash field in the database.
	FieldDataVersionHash = "data_version_hash"
	// FieldArtifactID holds the string denoting the artifact_id field in the database.
	FieldArtifactID = "artifact_id"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldApprovalStatus holds the string denoting the approval_status field in the database.
	FieldApprovalStatus = "approval_status"
	// FieldNeededApprovals holds the string denoting the needed_approvals field in the database.
	FieldNeededApprovals = "needed_approvals"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeApprovals holds the string denoting the approvals edge name in mutations.
	EdgeApprovals = "approvals"
	// MemoryApprovalFieldID holds the string denoting the ID field of the MemoryApproval.
	MemoryApprovalFieldID = "approval_id"
	// Table holds the table name of the memoryrecord in the database.
	Table = "memory_records"
	// ApprovalsTable is the table that holds the approvals relation/edge.
	ApprovalsTable = "memory_approvals"
	// ApprovalsInverseTable is the table name for the MemoryApproval entity.
	// It exists in this package in order to avoid circular dependency with the "memoryapproval" package.
	ApprovalsInverseTable = "memory_approvals"
	// ApprovalsColumn is the table column denoting the approvals relation/edge.
	ApprovalsColumn = "memory_id"
)

// Columns holds all SQL columns for memoryrecord fields.
var Columns = []string{
	FieldID,
	FieldAgent,
	FieldTeam,
	FieldContent,
	FieldTags,
	FieldScope,
	FieldConfidence,
	FieldExperimentID,
	FieldDataVersionHash,
	FieldArtifactID,
	FieldEmbedding,
	FieldApprovalStatus,
	FieldNeededApprovals,
	FieldExpiresAt,
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
	// ContentValidator is a validator for the "content" field. It is called by the builders before save.
	ContentValidator func(string) error
	// DefaultNeededApprovals holds the default value on creation for the "needed_approvals" field.
	DefaultNeededApprovals int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Scope defines the type for the "scope" enum field.
type Scope string

// Scope values.
const (
	ScopePrivate Scope = "private"
	ScopeTeam    Scope = "team"
	ScopeOrg     Scope = "org"
)

func (s Scope) String() string {
	return string(s)
}

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s Scope) error {
	switch s {
	case ScopePrivate, ScopeTeam, ScopeOrg:
		return nil
	default:
		return fmt.Errorf("memoryrecord: invalid enum value for scope field: %q", s)
	}
}

// ApprovalStatus defines the type for the "approval_status" enum field.
type ApprovalStatus string

// ApprovalStatusPENDING is the default value of the ApprovalStatus enum.
const DefaultApprovalStatus = ApprovalStatusPENDING

// ApprovalStatus values.
const (
	ApprovalStatusPENDING  ApprovalStatus = "PENDING"
	ApprovalStatusAPPROVED ApprovalStatus = "APPROVED"
	ApprovalStatusREJECTED ApprovalStatus = "REJECTED"
)

func (as ApprovalStatus) String() string {
	return string(as)
}

// ApprovalStatusValidator is a validator for the "approval_status" field enum values. It is called by the builders before save.
func ApprovalStatusValidator(as ApprovalStatus) error {
	switch as {
	case ApprovalStatusPENDING, ApprovalStatusAPPROVED, ApprovalStatusREJECTED:
		return nil
	default:
		return fmt.Errorf("memoryrecord: invalid enum value for approval_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the MemoryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByTeam orders the results by the team field.
func ByTeam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeam, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByExperimentID orders the results by the experiment_id field.
func ByExperimentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentID, opts...).ToFunc()
}

// ByDataVersionHash orders the results by the data_version_hash field.
func ByDataVersionHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataVersionHash, opts...).ToFunc()
}

// ByArtifactID orders the results by the artifact_id field.
func ByArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactID, opts...).ToFunc()
}

// ByApprovalStatus orders the results by the approval_status field.
func ByApprovalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalStatus, opts...).ToFunc()
}

// ByNeededApprovals orders the results by the needed_approvals field.
func ByNeededApprovals(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeededApprovals, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByApprovalsCount orders the results by approvals count.
func ByApprovalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newApprovalsStep(), opts...)
	}
}

// ByApprovals orders the results by approvals terms.
func ByApprovals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApprovalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newApprovalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApprovalsInverseTable, MemoryApprovalFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ApprovalsTable, ApprovalsColumn),
	)
}
