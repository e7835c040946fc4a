// Code generated by ent, DO NOT EDIT.

package topicrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicrecord type in the database.
	Label = "topic_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "topic_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProposer holds the string denoting the proposer field in the database.
	FieldProposer = "proposer"
	// FieldSeconds holds the string denoting the seconds field in the database.
	FieldSeconds = "seconds"
	// FieldRequiredSeconds holds the string denoting the required_seconds field in the database.
	FieldRequiredSeconds = "required_seconds"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldActionItems holds the string denoting the action_items field in the database.
	FieldActionItems = "action_items"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the topicrecord in the database.
	Table = "topic_records"
)

// Columns holds all SQL columns for topicrecord fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldTitle,
	FieldDescription,
	FieldPriority,
	FieldStatus,
	FieldProposer,
	FieldSeconds,
	FieldRequiredSeconds,
	FieldMeetingID,
	FieldScheduledAt,
	FieldExpiresAt,
	FieldResolution,
	FieldActionItems,
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
	// DefaultRequiredSeconds holds the default value on creation for the "required_seconds" field.
	DefaultRequiredSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPROPOSED is the default value of the Status enum.
const DefaultStatus = StatusPROPOSED

// Status values.
const (
	StatusDRAFT       Status = "DRAFT"
	StatusPROPOSED    Status = "PROPOSED"
	StatusSECONDING   Status = "SECONDING"
	StatusSCHEDULED   Status = "SCHEDULED"
	StatusIN_PROGRESS Status = "IN_PROGRESS"
	StatusRESOLVED    Status = "RESOLVED"
	StatusREJECTED    Status = "REJECTED"
	StatusEXPIRED     Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDRAFT, StatusPROPOSED, StatusSECONDING, StatusSCHEDULED, StatusIN_PROGRESS, StatusRESOLVED, StatusREJECTED, StatusEXPIRED:
		return nil
	default:
		return fmt.Errorf("topicrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TopicRecord queries.
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

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProposer orders the results by the proposer field.
func ByProposer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposer, opts...).ToFunc()
}

// ByRequiredSeconds orders the results by the required_seconds field.
func ByRequiredSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredSeconds, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
