// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/topicrecord"
)

// TopicRecord is the model entity for the TopicRecord schema.
type TopicRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status topicrecord.Status `json:"status,omitempty"`
	// Proposer holds the value of the "proposer" field.
	Proposer string `json:"proposer,omitempty"`
	// Supporter endorsements with reasons
	Seconds []map[string]interface{} `json:"seconds,omitempty"`
	// RequiredSeconds holds the value of the "required_seconds" field.
	RequiredSeconds int `json:"required_seconds,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// ScheduledAt holds the value of the "scheduled_at" field.
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// Resolution holds the value of the "resolution" field.
	Resolution string `json:"resolution,omitempty"`
	// ActionItems holds the value of the "action_items" field.
	ActionItems []map[string]interface{} `json:"action_items,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicrecord.FieldSeconds, topicrecord.FieldActionItems:
			values[i] = new([]byte)
		case topicrecord.FieldPriority, topicrecord.FieldRequiredSeconds:
			values[i] = new(sql.NullInt64)
		case topicrecord.FieldID, topicrecord.FieldKind, topicrecord.FieldTitle, topicrecord.FieldDescription, topicrecord.FieldStatus, topicrecord.FieldProposer, topicrecord.FieldMeetingID, topicrecord.FieldResolution:
			values[i] = new(sql.NullString)
		case topicrecord.FieldScheduledAt, topicrecord.FieldExpiresAt, topicrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicRecord fields.
func (_m *TopicRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case topicrecord.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case topicrecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case topicrecord.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case topicrecord.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case topicrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = topicrecord.Status(value.String)
			}
		case topicrecord.FieldProposer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposer", values[i])
			} else if value.Valid {
				_m.Proposer = value.String
			}
		case topicrecord.FieldSeconds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field seconds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Seconds); err != nil {
					return fmt.Errorf("unmarshal field seconds: %w", err)
				}
			}
		case topicrecord.FieldRequiredSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field required_seconds", values[i])
			} else if value.Valid {
				_m.RequiredSeconds = int(value.Int64)
			}
		case topicrecord.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case topicrecord.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = new(time.Time)
				*_m.ScheduledAt = value.Time
			}
		case topicrecord.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case topicrecord.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = value.String
			}
		case topicrecord.FieldActionItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionItems); err != nil {
					return fmt.Errorf("unmarshal field action_items: %w", err)
				}
			}
		case topicrecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TopicRecord.
// This includes values selected through modifiers, order, etc.
func (_m *TopicRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TopicRecord.
// Note that you need to call TopicRecord.Unwrap() before calling this method if this TopicRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicRecord) Update() *TopicRecordUpdateOne {
	return NewTopicRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicRecord) Unwrap() *TopicRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicRecord) String() string {
	var builder strings.Builder
	builder.WriteString("TopicRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("proposer=")
	builder.WriteString(_m.Proposer)
	builder.WriteString(", ")
	builder.WriteString("seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seconds))
	builder.WriteString(", ")
	builder.WriteString("required_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredSeconds))
	builder.WriteString(", ")
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	if v := _m.ScheduledAt; v != nil {
		builder.WriteString("scheduled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("resolution=")
	builder.WriteString(_m.Resolution)
	builder.WriteString(", ")
	builder.WriteString("action_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionItems))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicRecords is a parsable slice of TopicRecord.
type TopicRecords []*TopicRecord
