// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/budgetaccount"
)

// BudgetAccount is the model entity for the BudgetAccount schema.
type BudgetAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AccountType holds the value of the "account_type" field.
	AccountType budgetaccount.AccountType `json:"account_type,omitempty"`
	// BaseWeeklyPoints holds the value of the "base_weekly_points" field.
	BaseWeeklyPoints int `json:"base_weekly_points,omitempty"`
	// CurrentPeriodStart holds the value of the "current_period_start" field.
	CurrentPeriodStart time.Time `json:"current_period_start,omitempty"`
	// PointsSpent holds the value of the "points_spent" field.
	PointsSpent int `json:"points_spent,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BudgetAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case budgetaccount.FieldBaseWeeklyPoints, budgetaccount.FieldPointsSpent:
			values[i] = new(sql.NullInt64)
		case budgetaccount.FieldID, budgetaccount.FieldAccountType:
			values[i] = new(sql.NullString)
		case budgetaccount.FieldCurrentPeriodStart, budgetaccount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BudgetAccount fields.
func (_m *BudgetAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case budgetaccount.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case budgetaccount.FieldAccountType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_type", values[i])
			} else if value.Valid {
				_m.AccountType = budgetaccount.AccountType(value.String)
			}
		case budgetaccount.FieldBaseWeeklyPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field base_weekly_points", values[i])
			} else if value.Valid {
				_m.BaseWeeklyPoints = int(value.Int64)
			}
		case budgetaccount.FieldCurrentPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field current_period_start", values[i])
			} else if value.Valid {
				_m.CurrentPeriodStart = value.Time
			}
		case budgetaccount.FieldPointsSpent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_spent", values[i])
			} else if value.Valid {
				_m.PointsSpent = int(value.Int64)
			}
		case budgetaccount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BudgetAccount.
// This includes values selected through modifiers, order, etc.
func (_m *BudgetAccount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BudgetAccount.
// Note that you need to call BudgetAccount.Unwrap() before calling this method if this BudgetAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BudgetAccount) Update() *BudgetAccountUpdateOne {
	return NewBudgetAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BudgetAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BudgetAccount) Unwrap() *BudgetAccount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BudgetAccount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BudgetAccount) String() string {
	var builder strings.Builder
	builder.WriteString("BudgetAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountType))
	builder.WriteString(", ")
	builder.WriteString("base_weekly_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseWeeklyPoints))
	builder.WriteString(", ")
	builder.WriteString("current_period_start=")
	builder.WriteString(_m.CurrentPeriodStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("points_spent=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsSpent))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BudgetAccounts is a parsable slice of BudgetAccount.
type BudgetAccounts []*BudgetAccount
