// Code generated by ent, DO NOT EDIT.

package memoryapproval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the memoryapproval type in the database.
	Label = "memory_approval"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "approval_id"
	// FieldMemoryID holds the string denoting the memory_id field in the database.
	FieldMemoryID = "memory_id"
	// FieldApprover holds the string denoting the approver field in the database.
	FieldApprover = "approver"
	// FieldApproved holds the string denoting the approved field in the database.
	FieldApproved = "approved"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMemory holds the string denoting the memory edge name in mutations.
	EdgeMemory = "memory"
	// MemoryRecordFieldID holds the string denoting the ID field of the MemoryRecord.
	MemoryRecordFieldID = "memory_id"
	// Table holds the table name of the memoryapproval in the database.
	Table = "memory_approvals"
	// MemoryTable is the table that holds the memory relation/edge.
	MemoryTable = "memory_approvals"
	// MemoryInverseTable is the table name for the MemoryRecord entity.
	// It exists in this package in order to avoid circular dependency with the "memoryrecord" package.
	MemoryInverseTable = "memory_records"
	// MemoryColumn is the table column denoting the memory relation/edge.
	MemoryColumn = "memory_id"
)

// Columns holds all SQL columns for memoryapproval fields.
var Columns = []string{
	FieldID,
	FieldMemoryID,
	FieldApprover,
	FieldApproved,
	FieldReason,
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

// OrderOption defines the ordering options for the MemoryApproval queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMemoryID orders the results by the memory_id field.
func ByMemoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryID, opts...).ToFunc()
}

// ByApprover orders the results by the approver field.
func ByApprover(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprover, opts...).ToFunc()
}

// ByApproved orders the results by the approved field.
func ByApproved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproved, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMemoryField orders the results by memory field.
func ByMemoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemoryStep(), sql.OrderByField(field, opts...))
	}
}
func newMemoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemoryInverseTable, MemoryRecordFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MemoryTable, MemoryColumn),
	)
}
