// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/agentprofile"
)

// AgentProfile is the model entity for the AgentProfile schema.
type AgentProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// Team holds the value of the "team" field.
	Team string `json:"team,omitempty"`
	// ReportsTo holds the value of the "reports_to" field.
	ReportsTo string `json:"reports_to,omitempty"`
	// Behavioral role kind (researcher, risk, trader, ...)
	Role string `json:"role,omitempty"`
	// IsLead holds the value of the "is_lead" field.
	IsLead bool `json:"is_lead,omitempty"`
	// Status holds the value of the "status" field.
	Status agentprofile.Status `json:"status,omitempty"`
	// LastActive holds the value of the "last_active" field.
	LastActive *time.Time `json:"last_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentprofile.FieldIsLead:
			values[i] = new(sql.NullBool)
		case agentprofile.FieldID, agentprofile.FieldName, agentprofile.FieldDepartment, agentprofile.FieldTeam, agentprofile.FieldReportsTo, agentprofile.FieldRole, agentprofile.FieldStatus:
			values[i] = new(sql.NullString)
		case agentprofile.FieldLastActive, agentprofile.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentProfile fields.
func (_m *AgentProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentprofile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentprofile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agentprofile.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case agentprofile.FieldTeam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team", values[i])
			} else if value.Valid {
				_m.Team = value.String
			}
		case agentprofile.FieldReportsTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reports_to", values[i])
			} else if value.Valid {
				_m.ReportsTo = value.String
			}
		case agentprofile.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case agentprofile.FieldIsLead:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_lead", values[i])
			} else if value.Valid {
				_m.IsLead = value.Bool
			}
		case agentprofile.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentprofile.Status(value.String)
			}
		case agentprofile.FieldLastActive:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_active", values[i])
			} else if value.Valid {
				_m.LastActive = new(time.Time)
				*_m.LastActive = value.Time
			}
		case agentprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentProfile.
// This includes values selected through modifiers, order, etc.
func (_m *AgentProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentProfile.
// Note that you need to call AgentProfile.Unwrap() before calling this method if this AgentProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentProfile) Update() *AgentProfileUpdateOne {
	return NewAgentProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentProfile) Unwrap() *AgentProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentProfile) String() string {
	var builder strings.Builder
	builder.WriteString("AgentProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("department=")
	builder.WriteString(_m.Department)
	builder.WriteString(", ")
	builder.WriteString("team=")
	builder.WriteString(_m.Team)
	builder.WriteString(", ")
	builder.WriteString("reports_to=")
	builder.WriteString(_m.ReportsTo)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("is_lead=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsLead))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.LastActive; v != nil {
		builder.WriteString("last_active=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentProfiles is a parsable slice of AgentProfile.
type AgentProfiles []*AgentProfile
