// Code generated by ent, DO NOT EDIT.

package approvalitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the approvalitem type in the database.
	Label = "approval_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "item_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldRequester holds the string denoting the requester field in the database.
	FieldRequester = "requester"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDecisionBy holds the string denoting the decision_by field in the database.
	FieldDecisionBy = "decision_by"
	// FieldDecisionReason holds the string denoting the decision_reason field in the database.
	FieldDecisionReason = "decision_reason"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the approvalitem in the database.
	Table = "approval_items"
)

// Columns holds all SQL columns for approvalitem fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldTitle,
	FieldDescription,
	FieldRequester,
	FieldData,
	FieldStatus,
	FieldDecisionBy,
	FieldDecisionReason,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	default:
		return fmt.Errorf("approvalitem: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ApprovalItem queries.
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

// ByRequester orders the results by the requester field.
func ByRequester(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequester, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDecisionBy orders the results by the decision_by field.
func ByDecisionBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionBy, opts...).ToFunc()
}

// ByDecisionReason orders the results by the decision_reason field.
func ByDecisionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionReason, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
