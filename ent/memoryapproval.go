// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/memoryapproval"
	"github.com/NoAme666/aiquant/ent/memoryrecord"
)

// MemoryApproval is the model entity for the MemoryApproval schema.
type MemoryApproval struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MemoryID holds the value of the "memory_id" field.
	MemoryID string `json:"memory_id,omitempty"`
	// Approver holds the value of the "approver" field.
	Approver string `json:"approver,omitempty"`
	// Approved holds the value of the "approved" field.
	Approved bool `json:"approved,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MemoryApprovalQuery when eager-loading is set.
	Edges        MemoryApprovalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MemoryApprovalEdges holds the relations/edges for other nodes in the graph.
type MemoryApprovalEdges struct {
	// Memory holds the value of the memory edge.
	Memory *MemoryRecord `json:"memory,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MemoryOrErr returns the Memory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MemoryApprovalEdges) MemoryOrErr() (*MemoryRecord, error) {
	if e.Memory != nil {
		return e.Memory, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: memoryrecord.Label}
	}
	return nil, &NotLoadedError{edge: "memory"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryApproval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryapproval.FieldApproved:
			values[i] = new(sql.NullBool)
		case memoryapproval.FieldID, memoryapproval.FieldMemoryID, memoryapproval.FieldApprover, memoryapproval.FieldReason:
			values[i] = new(sql.NullString)
		case memoryapproval.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryApproval fields.
func (_m *MemoryApproval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryapproval.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case memoryapproval.FieldMemoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memory_id", values[i])
			} else if value.Valid {
				_m.MemoryID = value.String
			}
		case memoryapproval.FieldApprover:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approver", values[i])
			} else if value.Valid {
				_m.Approver = value.String
			}
		case memoryapproval.FieldApproved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved", values[i])
			} else if value.Valid {
				_m.Approved = value.Bool
			}
		case memoryapproval.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case memoryapproval.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryApproval.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryApproval) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMemory queries the "memory" edge of the MemoryApproval entity.
func (_m *MemoryApproval) QueryMemory() *MemoryRecordQuery {
	return NewMemoryApprovalClient(_m.config).QueryMemory(_m)
}

// Update returns a builder for updating this MemoryApproval.
// Note that you need to call MemoryApproval.Unwrap() before calling this method if this MemoryApproval
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryApproval) Update() *MemoryApprovalUpdateOne {
	return NewMemoryApprovalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryApproval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryApproval) Unwrap() *MemoryApproval {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryApproval is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryApproval) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryApproval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("memory_id=")
	builder.WriteString(_m.MemoryID)
	builder.WriteString(", ")
	builder.WriteString("approver=")
	builder.WriteString(_m.Approver)
	builder.WriteString(", ")
	builder.WriteString("approved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approved))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryApprovals is a parsable slice of MemoryApproval.
type MemoryApprovals []*MemoryApproval
