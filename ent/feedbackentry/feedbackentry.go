// Code generated by ent, DO NOT EDIT.

package feedbackentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the feedbackentry type in the database.
	Label = "feedback_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "feedback_id"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the feedbackentry in the database.
	Table = "feedback_entries"
)

// Columns holds all SQL columns for feedbackentry fields.
var Columns = []string{
	FieldID,
	FieldAgent,
	FieldCategory,
	FieldContent,
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

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryToolRequest        Category = "tool_request"
	CategoryProcessImprovement Category = "process_improvement"
	CategoryOrgIssue           Category = "org_issue"
	CategoryCollaboration      Category = "collaboration"
	CategoryCapabilityGap      Category = "capability_gap"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryToolRequest, CategoryProcessImprovement, CategoryOrgIssue, CategoryCollaboration, CategoryCapabilityGap:
		return nil
	default:
		return fmt.Errorf("feedbackentry: invalid enum value for category field: %q", c)
	}
}

// OrderOption defines the ordering options for the FeedbackEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
