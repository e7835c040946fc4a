// Code generated by ent, DO NOT EDIT.

package budgetaccount

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the budgetaccount type in the database.
	Label = "budget_account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "account_id"
	// FieldAccountType holds the string denoting the account_type field in the database.
	FieldAccountType = "account_type"
	// FieldBaseWeeklyPoints holds the string denoting the base_weekly_points field in the database.
	FieldBaseWeeklyPoints = "base_weekly_points"
	// FieldCurrentPeriodStart holds the string denoting the current_period_start field in the database.
	FieldCurrentPeriodStart = "current_period_start"
	// FieldPointsSpent holds the string denoting the points_spent field in the database.
	FieldPointsSpent = "points_spent"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the budgetaccount in the database.
	Table = "budget_accounts"
)

// Columns holds all SQL columns for budgetaccount fields.
var Columns = []string{
	FieldID,
	FieldAccountType,
	FieldBaseWeeklyPoints,
	FieldCurrentPeriodStart,
	FieldPointsSpent,
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
	// DefaultPointsSpent holds the default value on creation for the "points_spent" field.
	DefaultPointsSpent int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AccountType defines the type for the "account_type" enum field.
type AccountType string

// AccountType values.
const (
	AccountTypeAgent      AccountType = "agent"
	AccountTypeTeam       AccountType = "team"
	AccountTypeDepartment AccountType = "department"
)

func (at AccountType) String() string {
	return string(at)
}

// AccountTypeValidator is a validator for the "account_type" field enum values. It is called by the builders before save.
func AccountTypeValidator(at AccountType) error {
	switch at {
	case AccountTypeAgent, AccountTypeTeam, AccountTypeDepartment:
		return nil
	default:
		return fmt.Errorf("budgetaccount: invalid enum value for account_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the BudgetAccount queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountType orders the results by the account_type field.
func ByAccountType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountType, opts...).ToFunc()
}

// ByBaseWeeklyPoints orders the results by the base_weekly_points field.
func ByBaseWeeklyPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseWeeklyPoints, opts...).ToFunc()
}

// ByCurrentPeriodStart orders the results by the current_period_start field.
func ByCurrentPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPeriodStart, opts...).ToFunc()
}

// ByPointsSpent orders the results by the points_spent field.
func ByPointsSpent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsSpent, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
