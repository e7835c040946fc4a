// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/riskrule"
)

// RiskRule is the model entity for the RiskRule schema.
type RiskRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Parameters holds the value of the "parameters" field.
	Parameters map[string]float64 `json:"parameters,omitempty"`
	// Status holds the value of the "status" field.
	Status riskrule.Status `json:"status,omitempty"`
	// Proposer holds the value of the "proposer" field.
	Proposer string `json:"proposer,omitempty"`
	// Roles that must vote before tallying
	RequiredVoters []string `json:"required_voters,omitempty"`
	// Votes holds the value of the "votes" field.
	Votes []map[string]interface{} `json:"votes,omitempty"`
	// EffectiveFrom holds the value of the "effective_from" field.
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	// SuspendedBy holds the value of the "suspended_by" field.
	SuspendedBy string `json:"suspended_by,omitempty"`
	// SuspendReason holds the value of the "suspend_reason" field.
	SuspendReason string `json:"suspend_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RiskRuleQuery when eager-loading is set.
	Edges        RiskRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RiskRuleEdges holds the relations/edges for other nodes in the graph.
type RiskRuleEdges struct {
	// Decisions holds the value of the decisions edge.
	Decisions []*GovernanceDecision `json:"decisions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DecisionsOrErr returns the Decisions value or an error if the edge
// was not loaded in eager-loading.
func (e RiskRuleEdges) DecisionsOrErr() ([]*GovernanceDecision, error) {
	if e.loadedTypes[0] {
		return e.Decisions, nil
	}
	return nil, &NotLoadedError{edge: "decisions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RiskRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case riskrule.FieldParameters, riskrule.FieldRequiredVoters, riskrule.FieldVotes:
			values[i] = new([]byte)
		case riskrule.FieldID, riskrule.FieldKind, riskrule.FieldTitle, riskrule.FieldDescription, riskrule.FieldStatus, riskrule.FieldProposer, riskrule.FieldSuspendedBy, riskrule.FieldSuspendReason:
			values[i] = new(sql.NullString)
		case riskrule.FieldEffectiveFrom, riskrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RiskRule fields.
func (_m *RiskRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case riskrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case riskrule.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case riskrule.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case riskrule.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case riskrule.FieldParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parameters); err != nil {
					return fmt.Errorf("unmarshal field parameters: %w", err)
				}
			}
		case riskrule.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = riskrule.Status(value.String)
			}
		case riskrule.FieldProposer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposer", values[i])
			} else if value.Valid {
				_m.Proposer = value.String
			}
		case riskrule.FieldRequiredVoters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_voters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredVoters); err != nil {
					return fmt.Errorf("unmarshal field required_voters: %w", err)
				}
			}
		case riskrule.FieldVotes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field votes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Votes); err != nil {
					return fmt.Errorf("unmarshal field votes: %w", err)
				}
			}
		case riskrule.FieldEffectiveFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_from", values[i])
			} else if value.Valid {
				_m.EffectiveFrom = new(time.Time)
				*_m.EffectiveFrom = value.Time
			}
		case riskrule.FieldSuspendedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suspended_by", values[i])
			} else if value.Valid {
				_m.SuspendedBy = value.String
			}
		case riskrule.FieldSuspendReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suspend_reason", values[i])
			} else if value.Valid {
				_m.SuspendReason = value.String
			}
		case riskrule.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RiskRule.
// This includes values selected through modifiers, order, etc.
func (_m *RiskRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDecisions queries the "decisions" edge of the RiskRule entity.
func (_m *RiskRule) QueryDecisions() *GovernanceDecisionQuery {
	return NewRiskRuleClient(_m.config).QueryDecisions(_m)
}

// Update returns a builder for updating this RiskRule.
// Note that you need to call RiskRule.Unwrap() before calling this method if this RiskRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RiskRule) Update() *RiskRuleUpdateOne {
	return NewRiskRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RiskRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RiskRule) Unwrap() *RiskRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RiskRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RiskRule) String() string {
	var builder strings.Builder
	builder.WriteString("RiskRule(")
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
	builder.WriteString("parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameters))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("proposer=")
	builder.WriteString(_m.Proposer)
	builder.WriteString(", ")
	builder.WriteString("required_voters=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredVoters))
	builder.WriteString(", ")
	builder.WriteString("votes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Votes))
	builder.WriteString(", ")
	if v := _m.EffectiveFrom; v != nil {
		builder.WriteString("effective_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("suspended_by=")
	builder.WriteString(_m.SuspendedBy)
	builder.WriteString(", ")
	builder.WriteString("suspend_reason=")
	builder.WriteString(_m.SuspendReason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RiskRules is a parsable slice of RiskRule.
type RiskRules []*RiskRule
