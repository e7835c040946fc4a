// Code generated by ent, DO NOT EDIT.

package toolrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the toolrequest type in the database.
	Label = "tool_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldRequesters holds the string denoting the requesters field in the database.
	FieldRequesters = "requesters"
	// FieldRequestCount holds the string denoting the request_count field in the database.
	FieldRequestCount = "request_count"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldFeasibility holds the string denoting the feasibility field in the database.
	FieldFeasibility = "feasibility"
	// FieldDeployed holds the string denoting the deployed field in the database.
	FieldDeployed = "deployed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the toolrequest in the database.
	Table = "tool_requests"
)

// Columns holds all SQL columns for toolrequest fields.
var Columns = []string{
	FieldID,
	FieldToolName,
	FieldDescription,
	FieldRequesters,
	FieldRequestCount,
	FieldUrgency,
	FieldFeasibility,
	FieldDeployed,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultRequestCount holds the default value on creation for the "request_count" field.
	DefaultRequestCount int
	// DefaultDeployed holds the default value on creation for the "deployed" field.
	DefaultDeployed bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ToolRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByRequestCount orders the results by the request_count field.
func ByRequestCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestCount, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// ByFeasibility orders the results by the feasibility field.
func ByFeasibility(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeasibility, opts...).ToFunc()
}

// ByDeployed orders the results by the deployed field.
func ByDeployed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeployed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
