// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/toolcall"
)

// ToolCall is the model entity for the ToolCall schema.
type ToolCall struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Agent holds the value of the "agent" field.
	Agent string `json:"agent,omitempty"`
	// Tool holds the value of the "tool" field.
	Tool string `json:"tool,omitempty"`
	// Args holds the value of the "args" field.
	Args map[string]interface{} `json:"args,omitempty"`
	// EstimatedCost holds the value of the "estimated_cost" field.
	EstimatedCost int `json:"estimated_cost,omitempty"`
	// ActualCost holds the value of the "actual_cost" field.
	ActualCost int `json:"actual_cost,omitempty"`
	// Status holds the value of the "status" field.
	Status toolcall.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Provenance hash reported by data-producing tools
	DataVersionHash string `json:"data_version_hash,omitempty"`
	// ExperimentID holds the value of the "experiment_id" field.
	ExperimentID string `json:"experiment_id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// CycleID holds the value of the "cycle_id" field.
	CycleID string `json:"cycle_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolCall) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toolcall.FieldArgs:
			values[i] = new([]byte)
		case toolcall.FieldEstimatedCost, toolcall.FieldActualCost:
			values[i] = new(sql.NullInt64)
		case toolcall.FieldID, toolcall.FieldAgent, toolcall.FieldTool, toolcall.FieldStatus, toolcall.FieldErrorMessage, toolcall.FieldDataVersionHash, toolcall.FieldExperimentID, toolcall.FieldMeetingID, toolcall.FieldCycleID:
			values[i] = new(sql.NullString)
		case toolcall.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolCall fields.
func (_m *ToolCall) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toolcall.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case toolcall.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = value.String
			}
		case toolcall.FieldTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool", values[i])
			} else if value.Valid {
				_m.Tool = value.String
			}
		case toolcall.FieldArgs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field args", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Args); err != nil {
					return fmt.Errorf("unmarshal field args: %w", err)
				}
			}
		case toolcall.FieldEstimatedCost:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost", values[i])
			} else if value.Valid {
				_m.EstimatedCost = int(value.Int64)
			}
		case toolcall.FieldActualCost:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_cost", values[i])
			} else if value.Valid {
				_m.ActualCost = int(value.Int64)
			}
		case toolcall.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = toolcall.Status(value.String)
			}
		case toolcall.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case toolcall.FieldDataVersionHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_version_hash", values[i])
			} else if value.Valid {
				_m.DataVersionHash = value.String
			}
		case toolcall.FieldExperimentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_id", values[i])
			} else if value.Valid {
				_m.ExperimentID = value.String
			}
		case toolcall.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case toolcall.FieldCycleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_id", values[i])
			} else if value.Valid {
				_m.CycleID = value.String
			}
		case toolcall.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ToolCall.
// This includes values selected through modifiers, order, etc.
func (_m *ToolCall) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ToolCall.
// Note that you need to call ToolCall.Unwrap() before calling this method if this ToolCall
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolCall) Update() *ToolCallUpdateOne {
	return NewToolCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolCall entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolCall) Unwrap() *ToolCall {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolCall is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolCall) String() string {
	var builder strings.Builder
	builder.WriteString("ToolCall(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent=")
	builder.WriteString(_m.Agent)
	builder.WriteString(", ")
	builder.WriteString("tool=")
	builder.WriteString(_m.Tool)
	builder.WriteString(", ")
	builder.WriteString("args=")
	builder.WriteString(fmt.Sprintf("%v", _m.Args))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCost))
	builder.WriteString(", ")
	builder.WriteString("actual_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActualCost))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("data_version_hash=")
	builder.WriteString(_m.DataVersionHash)
	builder.WriteString(", ")
	builder.WriteString("experiment_id=")
	builder.WriteString(_m.ExperimentID)
	builder.WriteString(", ")
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("cycle_id=")
	builder.WriteString(_m.CycleID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ToolCalls is a parsable slice of ToolCall.
type ToolCalls []*ToolCall
