// Code generated by ent, DO NOT EDIT.

package agentprofile

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentprofile type in the database.
	Label = "agent_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldTeam holds the string denoting the team field in the database.
	FieldTeam = "team"
	// FieldReportsTo holds the string denoting the reports_to field in the database.
	FieldReportsTo = "reports_to"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldIsLead holds the string denoting the is_lead field in the database.
	FieldIsLead = "is_lead"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastActive holds the string denoting the last_active field in the database.
	FieldLastActive = "last_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the agentprofile in the database.
	Table = "agent_profiles"
)

// Columns holds all SQL columns for agentprofile fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDepartment,
	FieldTeam,
	FieldReportsTo,
	FieldRole,
	FieldIsLead,
	FieldStatus,
	FieldLastActive,
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
	// DefaultIsLead holds the default value on creation for the "is_lead" field.
	DefaultIsLead bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusACTIVE is the default value of the Status enum.
const DefaultStatus = StatusACTIVE

// Status values.
const (
	StatusACTIVE     Status = "ACTIVE"
	StatusFROZEN     Status = "FROZEN"
	StatusSUSPENDED  Status = "SUSPENDED"
	StatusTERMINATED Status = "TERMINATED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusACTIVE, StatusFROZEN, StatusSUSPENDED, StatusTERMINATED:
		return nil
	default:
		return fmt.Errorf("agentprofile: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByTeam orders the results by the team field.
func ByTeam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeam, opts...).ToFunc()
}

// ByReportsTo orders the results by the reports_to field.
func ByReportsTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportsTo, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByIsLead orders the results by the is_lead field.
func ByIsLead(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsLead, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastActive orders the results by the last_active field.
func ByLastActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
