// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/governancedecision"
	"github.com/NoAme666/aiquant/ent/riskrule"
)

// GovernanceDecision is the model entity for the GovernanceDecision schema.
type GovernanceDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// Participants holds the value of the "participants" field.
	Participants []string `json:"participants,omitempty"`
	// ApprovalRate holds the value of the "approval_rate" field.
	ApprovalRate float64 `json:"approval_rate,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome governancedecision.Outcome `json:"outcome,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt time.Time `json:"decided_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GovernanceDecisionQuery when eager-loading is set.
	Edges        GovernanceDecisionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GovernanceDecisionEdges holds the relations/edges for other nodes in the graph.
type GovernanceDecisionEdges struct {
	// Rule holds the value of the rule edge.
	Rule *RiskRule `json:"rule,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RuleOrErr returns the Rule value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GovernanceDecisionEdges) RuleOrErr() (*RiskRule, error) {
	if e.Rule != nil {
		return e.Rule, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: riskrule.Label}
	}
	return nil, &NotLoadedError{edge: "rule"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GovernanceDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case governancedecision.FieldParticipants:
			values[i] = new([]byte)
		case governancedecision.FieldApprovalRate:
			values[i] = new(sql.NullFloat64)
		case governancedecision.FieldID, governancedecision.FieldRuleID, governancedecision.FieldOutcome:
			values[i] = new(sql.NullString)
		case governancedecision.FieldDecidedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GovernanceDecision fields.
func (_m *GovernanceDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case governancedecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case governancedecision.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case governancedecision.FieldParticipants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Participants); err != nil {
					return fmt.Errorf("unmarshal field participants: %w", err)
				}
			}
		case governancedecision.FieldApprovalRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field approval_rate", values[i])
			} else if value.Valid {
				_m.ApprovalRate = value.Float64
			}
		case governancedecision.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = governancedecision.Outcome(value.String)
			}
		case governancedecision.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GovernanceDecision.
// This includes values selected through modifiers, order, etc.
func (_m *GovernanceDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRule queries the "rule" edge of the GovernanceDecision entity.
func (_m *GovernanceDecision) QueryRule() *RiskRuleQuery {
	return NewGovernanceDecisionClient(_m.config).QueryRule(_m)
}

// Update returns a builder for updating this GovernanceDecision.
// Note that you need to call GovernanceDecision.Unwrap() before calling this method if this GovernanceDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GovernanceDecision) Update() *GovernanceDecisionUpdateOne {
	return NewGovernanceDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GovernanceDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GovernanceDecision) Unwrap() *GovernanceDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GovernanceDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GovernanceDecision) String() string {
	var builder strings.Builder
	builder.WriteString("GovernanceDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("rule_id=")
	builder.WriteString(_m.RuleID)
	builder.WriteString(", ")
	builder.WriteString("participants=")
	builder.WriteString(fmt.Sprintf("%v", _m.Participants))
	builder.WriteString(", ")
	builder.WriteString("approval_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalRate))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outcome))
	builder.WriteString(", ")
	builder.WriteString("decided_at=")
	builder.WriteString(_m.DecidedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GovernanceDecisions is a parsable slice of GovernanceDecision.
type GovernanceDecisions []*GovernanceDecision
