// Code generated by ent, DO NOT EDIT.

package toolrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldContainsFold(FieldID, id))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldToolName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldDescription, v))
}

// RequestCount applies equality check predicate on the "request_count" field. It's identical to RequestCountEQ.
func RequestCount(v int) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldRequestCount, v))
}

// Urgency applies equality check predicate on the "urgency" field. It's identical to UrgencyEQ.
func Urgency(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldUrgency, v))
}

// Feasibility applies equality check predicate on the "feasibility" field. It's identical to FeasibilityEQ.
func Feasibility(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldFeasibility, v))
}

// Deployed applies equality check predicate on the "deployed" field. It's identical to DeployedEQ.
func Deployed(v bool) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldDeployed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldContainsFold(FieldToolName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldContainsFold(FieldDescription, v))
}

// RequestCountEQ applies the EQ predicate on the "request_count" field.
func RequestCountEQ(v int) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldRequestCount, v))
}

// RequestCountNEQ applies the NEQ predicate on the "request_count" field.
func RequestCountNEQ(v int) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNEQ(FieldRequestCount, v))
}

// RequestCountIn applies the In predicate on the "request_count" field.
func RequestCountIn(vs ...int) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldIn(FieldRequestCount, vs...))
}

// RequestCountNotIn applies the NotIn predicate on the "request_count" field.
func RequestCountNotIn(vs ...int) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNotIn(FieldRequestCount, vs...))
}

// RequestCountGT applies the GT predicate on the "request_count" field.
func RequestCountGT(v int) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGT(FieldRequestCount, v))
}

// RequestCountGTE applies the GTE predicate on the "request_count" field.
func RequestCountGTE(v int) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGTE(FieldRequestCount, v))
}

// RequestCountLT applies the LT predicate on the "request_count" field.
func RequestCountLT(v int) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLT(FieldRequestCount, v))
}

// RequestCountLTE applies the LTE predicate on the "request_count" field.
func RequestCountLTE(v int) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLTE(FieldRequestCount, v))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNotIn(FieldUrgency, vs...))
}

// UrgencyGT applies the GT predicate on the "urgency" field.
func UrgencyGT(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGT(FieldUrgency, v))
}

// UrgencyGTE applies the GTE predicate on the "urgency" field.
func UrgencyGTE(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGTE(FieldUrgency, v))
}

// UrgencyLT applies the LT predicate on the "urgency" field.
func UrgencyLT(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLT(FieldUrgency, v))
}

// UrgencyLTE applies the LTE predicate on the "urgency" field.
func UrgencyLTE(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLTE(FieldUrgency, v))
}

// FeasibilityEQ applies the EQ predicate on the "feasibility" field.
func FeasibilityEQ(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldFeasibility, v))
}

// FeasibilityNEQ applies the NEQ predicate on the "feasibility" field.
func FeasibilityNEQ(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNEQ(FieldFeasibility, v))
}

// FeasibilityIn applies the In predicate on the "feasibility" field.
func FeasibilityIn(vs ...float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldIn(FieldFeasibility, vs...))
}

// FeasibilityNotIn applies the NotIn predicate on the "feasibility" field.
func FeasibilityNotIn(vs ...float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNotIn(FieldFeasibility, vs...))
}

// FeasibilityGT applies the GT predicate on the "feasibility" field.
func FeasibilityGT(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGT(FieldFeasibility, v))
}

// FeasibilityGTE applies the GTE predicate on the "feasibility" field.
func FeasibilityGTE(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGTE(FieldFeasibility, v))
}

// FeasibilityLT applies the LT predicate on the "feasibility" field.
func FeasibilityLT(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLT(FieldFeasibility, v))
}

// FeasibilityLTE applies the LTE predicate on the "feasibility" field.
func FeasibilityLTE(v float64) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLTE(FieldFeasibility, v))
}

// DeployedEQ applies the EQ predicate on the "deployed" field.
func DeployedEQ(v bool) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldDeployed, v))
}

// DeployedNEQ applies the NEQ predicate on the "deployed" field.
func DeployedNEQ(v bool) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNEQ(FieldDeployed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ToolRequest {
	return predicate.ToolRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolRequest) predicate.ToolRequest {
	return predicate.ToolRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolRequest) predicate.ToolRequest {
	return predicate.ToolRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolRequest) predicate.ToolRequest {
	return predicate.ToolRequest(sql.NotPredicates(p))
}
