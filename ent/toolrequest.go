// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/toolrequest"
)

// ToolRequest is the model entity for the ToolRequest schema.
type ToolRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Requesters holds the value of the "requesters" field.
	Requesters []string `json:"requesters,omitempty"`
	// RequestCount holds the value of the "request_count" field.
	RequestCount int `json:"request_count,omitempty"`
	// Urgency holds the value of the "urgency" field.
	Urgency float64 `json:"urgency,omitempty"`
	// Feasibility holds the value of the "feasibility" field.
	Feasibility float64 `json:"feasibility,omitempty"`
	// Deployed holds the value of the "deployed" field.
	Deployed bool `json:"deployed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toolrequest.FieldRequesters:
			values[i] = new([]byte)
		case toolrequest.FieldDeployed:
			values[i] = new(sql.NullBool)
		case toolrequest.FieldUrgency, toolrequest.FieldFeasibility:
			values[i] = new(sql.NullFloat64)
		case toolrequest.FieldRequestCount:
			values[i] = new(sql.NullInt64)
		case toolrequest.FieldID, toolrequest.FieldToolName, toolrequest.FieldDescription:
			values[i] = new(sql.NullString)
		case toolrequest.FieldCreatedAt, toolrequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolRequest fields.
func (_m *ToolRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toolrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case toolrequest.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case toolrequest.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case toolrequest.FieldRequesters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field requesters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Requesters); err != nil {
					return fmt.Errorf("unmarshal field requesters: %w", err)
				}
			}
		case toolrequest.FieldRequestCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_count", values[i])
			} else if value.Valid {
				_m.RequestCount = int(value.Int64)
			}
		case toolrequest.FieldUrgency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field urgency", values[i])
			} else if value.Valid {
				_m.Urgency = value.Float64
			}
		case toolrequest.FieldFeasibility:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field feasibility", values[i])
			} else if value.Valid {
				_m.Feasibility = value.Float64
			}
		case toolrequest.FieldDeployed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deployed", values[i])
			} else if value.Valid {
				_m.Deployed = value.Bool
			}
		case toolrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case toolrequest.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ToolRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ToolRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ToolRequest.
// Note that you need to call ToolRequest.Unwrap() before calling this method if this ToolRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolRequest) Update() *ToolRequestUpdateOne {
	return NewToolRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolRequest) Unwrap() *ToolRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ToolRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("requesters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Requesters))
	builder.WriteString(", ")
	builder.WriteString("request_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestCount))
	builder.WriteString(", ")
	builder.WriteString("urgency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Urgency))
	builder.WriteString(", ")
	builder.WriteString("feasibility=")
	builder.WriteString(fmt.Sprintf("%v", _m.Feasibility))
	builder.WriteString(", ")
	builder.WriteString("deployed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deployed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ToolRequests is a parsable slice of ToolRequest.
type ToolRequests []*ToolRequest
