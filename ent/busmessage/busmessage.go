// Code generated by ent, DO NOT EDIT.

package busmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the busmessage type in the database.
	Label = "bus_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldChannelKind holds the string denoting the channel_kind field in the database.
	FieldChannelKind = "channel_kind"
	// FieldChannelID holds the string denoting the channel_id field in the database.
	FieldChannelID = "channel_id"
	// FieldFromAgent holds the string denoting the from_agent field in the database.
	FieldFromAgent = "from_agent"
	// FieldToAgent holds the string denoting the to_agent field in the database.
	FieldToAgent = "to_agent"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the busmessage in the database.
	Table = "bus_messages"
)

// Columns holds all SQL columns for busmessage fields.
var Columns = []string{
	FieldID,
	FieldChannelKind,
	FieldChannelID,
	FieldFromAgent,
	FieldToAgent,
	FieldSubject,
	FieldContent,
	FieldKind,
	FieldMetadata,
	FieldPriority,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the BusMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChannelKind orders the results by the channel_kind field.
func ByChannelKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelKind, opts...).ToFunc()
}

// ByChannelID orders the results by the channel_id field.
func ByChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelID, opts...).ToFunc()
}

// ByFromAgent orders the results by the from_agent field.
func ByFromAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromAgent, opts...).ToFunc()
}

// ByToAgent orders the results by the to_agent field.
func ByToAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToAgent, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
