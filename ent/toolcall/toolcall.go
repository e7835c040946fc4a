// Code generated by ent, DO NOT EDIT.

package toolcall

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the toolcall type in the database.
	Label = "tool_call"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "call_id"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldTool holds the string denoting the tool field in the database.
	FieldTool = "tool"
	// FieldArgs holds the string denoting the args field in the database.
	FieldArgs = "args"
	// FieldEstimatedCost holds the string denoting the estimated_cost field in the database.
	FieldEstimatedCost = "estimated_cost"
	// FieldActualCost holds the string denoting the actual_cost field in the database.
	FieldActualCost = "actual_cost"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldDataVersionHash holds the string denoting the data_version_hash field in the database.
	FieldDataVersionHash = "data_version_hash"
	// FieldExperimentID holds the string denoting the experiment_id field in the database.
	FieldExperimentID = "experiment_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldCycleID holds the string denoting the cycle_id field in the database.
	FieldCycleID = "cycle_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the toolcall in the database.
	Table = "tool_calls"
)

// Columns holds all SQL columns for toolcall fields.
var Columns = []string{
	FieldID,
	FieldAgent,
	FieldTool,
	FieldArgs,
	FieldEstimatedCost,
	FieldActualCost,
	FieldStatus,
	FieldErrorMessage,
	FieldDataVersionHash,
	FieldExperimentID,
	FieldMeetingID,
	FieldCycleID,
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
	// DefaultEstimatedCost holds the default value on creation for the "estimated_cost" field.
	DefaultEstimatedCost int
	// DefaultActualCost holds the default value on creation for the "actual_cost" field.
	DefaultActualCost int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusRequested Status = "requested"
	StatusRejected  Status = "rejected"
	StatusExecuting Status = "executing"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRequested, StatusRejected, StatusExecuting, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("toolcall: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ToolCall queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByTool orders the results by the tool field.
func ByTool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTool, opts...).ToFunc()
}

// ByEstimatedCost orders the results by the estimated_cost field.
func ByEstimatedCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCost, opts...).ToFunc()
}

// ByActualCost orders the results by the actual_cost field.
func ByActualCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualCost, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByDataVersionHash orders the results by the data_version_hash field.
func ByDataVersionHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataVersionHash, opts...).ToFunc()
}

// ByExperimentID orders the results by the experiment_id field.
func ByExperimentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByCycleID orders the results by the cycle_id field.
func ByCycleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
