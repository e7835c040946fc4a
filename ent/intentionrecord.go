// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/intentionrecord"
)

// IntentionRecord is the model entity for the IntentionRecord schema.
type IntentionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Agent holds the value of the "agent" field.
	Agent string `json:"agent,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// ActionContext holds the value of the "action_context" field.
	ActionContext map[string]interface{} `json:"action_context,omitempty"`
	// TargetAgents holds the value of the "target_agents" field.
	TargetAgents []string `json:"target_agents,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope string `json:"scope,omitempty"`
	// Status holds the value of the "status" field.
	Status intentionrecord.Status `json:"status,omitempty"`
	// RejectReason holds the value of the "reject_reason" field.
	RejectReason string `json:"reject_reason,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntentionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intentionrecord.FieldActionContext, intentionrecord.FieldTargetAgents:
			values[i] = new([]byte)
		case intentionrecord.FieldPriority:
			values[i] = new(sql.NullInt64)
		case intentionrecord.FieldID, intentionrecord.FieldAgent, intentionrecord.FieldKind, intentionrecord.FieldScope, intentionrecord.FieldStatus, intentionrecord.FieldRejectReason:
			values[i] = new(sql.NullString)
		case intentionrecord.FieldExpiresAt, intentionrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntentionRecord fields.
func (_m *IntentionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intentionrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case intentionrecord.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = value.String
			}
		case intentionrecord.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case intentionrecord.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case intentionrecord.FieldActionContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionContext); err != nil {
					return fmt.Errorf("unmarshal field action_context: %w", err)
				}
			}
		case intentionrecord.FieldTargetAgents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target_agents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetAgents); err != nil {
					return fmt.Errorf("unmarshal field target_agents: %w", err)
				}
			}
		case intentionrecord.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		case intentionrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = intentionrecord.Status(value.String)
			}
		case intentionrecord.FieldRejectReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reject_reason", values[i])
			} else if value.Valid {
				_m.RejectReason = value.String
			}
		case intentionrecord.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case intentionrecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the IntentionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *IntentionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IntentionRecord.
// Note that you need to call IntentionRecord.Unwrap() before calling this method if this IntentionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntentionRecord) Update() *IntentionRecordUpdateOne {
	return NewIntentionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntentionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntentionRecord) Unwrap() *IntentionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IntentionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntentionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("IntentionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent=")
	builder.WriteString(_m.Agent)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("action_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionContext))
	builder.WriteString(", ")
	builder.WriteString("target_agents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetAgents))
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("reject_reason=")
	builder.WriteString(_m.RejectReason)
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IntentionRecords is a parsable slice of IntentionRecord.
type IntentionRecords []*IntentionRecord
