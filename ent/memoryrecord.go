// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/memoryrecord"
)

// MemoryRecord is the model entity for the MemoryRecord schema.
type MemoryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Agent holds the value of the "agent" field.
	Agent string `json:"agent,omitempty"`
	// Team holds the value of the "team" field.
	Team string `json:"team,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope memoryrecord.Scope `json:"scope,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// ExperimentID holds the value of the "experiment_id" field.
	ExperimentID string `json:"experiment_id,omitempty"`
	// DataVersionHash holds the value of the "data_version_hash" field.
	DataVersionHash string `json:"data_version_hash,omitempty"`
	// ArtifactID holds the value of the "artifact_id" field.
	ArtifactID string `json:"artifact_id,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float32 `json:"embedding,omitempty"`
	// ApprovalStatus holds the value of the "approval_status" field.
	ApprovalStatus memoryrecord.ApprovalStatus `json:"approval_status,omitempty"`
	// NeededApprovals holds the value of the "needed_approvals" field.
	NeededApprovals int `json:"needed_approvals,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MemoryRecordQuery when eager-loading is set.
	Edges        MemoryRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MemoryRecordEdges holds the relations/edges for other nodes in the graph.
type MemoryRecordEdges struct {
	// Approvals holds the value of the approvals edge.
	Approvals []*MemoryApproval `json:"approvals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApprovalsOrErr returns the Approvals value or an error if the edge
// was not loaded in eager-loading.
func (e MemoryRecordEdges) ApprovalsOrErr() ([]*MemoryApproval, error) {
	if e.loadedTypes[0] {
		return e.Approvals, nil
	}
	return nil, &NotLoadedError{edge: "approvals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryrecord.FieldTags, memoryrecord.FieldEmbedding:
			values[i] = new([]byte)
		case memoryrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case memoryrecord.FieldNeededApprovals:
			values[i] = new(sql.NullInt64)
		case memoryrecord.FieldID, memoryrecord.FieldAgent, memoryrecord.FieldTeam, memoryrecord.FieldContent, memoryrecord.FieldScope, memoryrecord.FieldExperimentID, memoryrecord.FieldDataVersionHash, memoryrecord.FieldArtifactID, memoryrecord.FieldApprovalStatus:
			values[i] = new(sql.NullString)
		case memoryrecord.FieldExpiresAt, memoryrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryRecord fields.
func (_m *MemoryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case memoryrecord.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = value.String
			}
		case memoryrecord.FieldTeam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team", values[i])
			} else if value.Valid {
				_m.Team = value.String
			}
		case memoryrecord.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case memoryrecord.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case memoryrecord.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = memoryrecord.Scope(value.String)
			}
		case memoryrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case memoryrecord.FieldExperimentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_id", values[i])
			} else if value.Valid {
				_m.ExperimentID = value.String
			}
		case memoryrecord.FieldDataVersionHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_version_hash", values[i])
			} else if value.Valid {
				_m.DataVersionHash = value.String
			}
		case memoryrecord.FieldArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_id", values[i])
			} else if value.Valid {
				_m.ArtifactID = value.String
			}
		case memoryrecord.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case memoryrecord.FieldApprovalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approval_status", values[i])
			} else if value.Valid {
				_m.ApprovalStatus = memoryrecord.ApprovalStatus(value.String)
			}
		case memoryrecord.FieldNeededApprovals:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field needed_approvals", values[i])
			} else if value.Valid {
				_m.NeededApprovals = int(value.Int64)
			}
		case memoryrecord.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case memoryrecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApprovals queries the "approvals" edge of the MemoryRecord entity.
func (_m *MemoryRecord) QueryApprovals() *MemoryApprovalQuery {
	return NewMemoryRecordClient(_m.config).QueryApprovals(_m)
}

// Update returns a builder for updating this MemoryRecord.
// Note that you need to call MemoryRecord.Unwrap() before calling this method if this MemoryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryRecord) Update() *MemoryRecordUpdateOne {
	return NewMemoryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryRecord) Unwrap() *MemoryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent=")
	builder.WriteString(_m.Agent)
	builder.WriteString(", ")
	builder.WriteString("team=")
	builder.WriteString(_m.Team)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("experiment_id=")
	builder.WriteString(_m.ExperimentID)
	builder.WriteString(", ")
	builder.WriteString("data_version_hash=")
	builder.WriteString(_m.DataVersionHash)
	builder.WriteString(", ")
	builder.WriteString("artifact_id=")
	builder.WriteString(_m.ArtifactID)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("approval_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalStatus))
	builder.WriteString(", ")
	builder.WriteString("needed_approvals=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeededApprovals))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryRecords is a parsable slice of MemoryRecord.
type MemoryRecords []*MemoryRecord
