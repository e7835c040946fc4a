// Code generated by ent, DO NOT EDIT.

package toolcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldID, id))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldAgent, v))
}

// Tool applies equality check predicate on the "tool" field. It's identical to ToolEQ.
func Tool(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldTool, v))
}

// EstimatedCost applies equality check predicate on the "estimated_cost" field. It's identical to EstimatedCostEQ.
func EstimatedCost(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldEstimatedCost, v))
}

// ActualCost applies equality check predicate on the "actual_cost" field. It's identical to ActualCostEQ.
func ActualCost(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldActualCost, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldErrorMessage, v))
}

// DataVersionHash applies equality check predicate on the "data_version_hash" field. It's identical to DataVersionHashEQ.
func DataVersionHash(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldDataVersionHash, v))
}

// ExperimentID applies equality check predicate on the "experiment_id" field. It's identical to ExperimentIDEQ.
func ExperimentID(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldExperimentID, v))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldMeetingID, v))
}

// CycleID applies equality check predicate on the "cycle_id" field. It's identical to CycleIDEQ.
func CycleID(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCycleID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldAgent, v))
}

// ToolEQ applies the EQ predicate on the "tool" field.
func ToolEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldTool, v))
}

// ToolNEQ applies the NEQ predicate on the "tool" field.
func ToolNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldTool, v))
}

// ToolIn applies the In predicate on the "tool" field.
func ToolIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldTool, vs...))
}

// ToolNotIn applies the NotIn predicate on the "tool" field.
func ToolNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldTool, vs...))
}

// ToolGT applies the GT predicate on the "tool" field.
func ToolGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldTool, v))
}

// ToolGTE applies the GTE predicate on the "tool" field.
func ToolGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldTool, v))
}

// ToolLT applies the LT predicate on the "tool" field.
func ToolLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldTool, v))
}

// ToolLTE applies the LTE predicate on the "tool" field.
func ToolLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldTool, v))
}

// ToolContains applies the Contains predicate on the "tool" field.
func ToolContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldTool, v))
}

// ToolHasPrefix applies the HasPrefix predicate on the "tool" field.
func ToolHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldTool, v))
}

// ToolHasSuffix applies the HasSuffix predicate on the "tool" field.
func ToolHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldTool, v))
}

// ToolEqualFold applies the EqualFold predicate on the "tool" field.
func ToolEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldTool, v))
}

// ToolContainsFold applies the ContainsFold predicate on the "tool" field.
func ToolContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldTool, v))
}

// ArgsIsNil applies the IsNil predicate on the "args" field.
func ArgsIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldArgs))
}

// ArgsNotNil applies the NotNil predicate on the "args" field.
func ArgsNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldArgs))
}

// EstimatedCostEQ applies the EQ predicate on the "estimated_cost" field.
func EstimatedCostEQ(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldEstimatedCost, v))
}

// EstimatedCostNEQ applies the NEQ predicate on the "estimated_cost" field.
func EstimatedCostNEQ(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldEstimatedCost, v))
}

// EstimatedCostIn applies the In predicate on the "estimated_cost" field.
func EstimatedCostIn(vs ...int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldEstimatedCost, vs...))
}

// EstimatedCostNotIn applies the NotIn predicate on the "estimated_cost" field.
func EstimatedCostNotIn(vs ...int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldEstimatedCost, vs...))
}

// EstimatedCostGT applies the GT predicate on the "estimated_cost" field.
func EstimatedCostGT(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldEstimatedCost, v))
}

// EstimatedCostGTE applies the GTE predicate on the "estimated_cost" field.
func EstimatedCostGTE(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldEstimatedCost, v))
}

// EstimatedCostLT applies the LT predicate on the "estimated_cost" field.
func EstimatedCostLT(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldEstimatedCost, v))
}

// EstimatedCostLTE applies the LTE predicate on the "estimated_cost" field.
func EstimatedCostLTE(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldEstimatedCost, v))
}

// ActualCostEQ applies the EQ predicate on the "actual_cost" field.
func ActualCostEQ(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldActualCost, v))
}

// ActualCostNEQ applies the NEQ predicate on the "actual_cost" field.
func ActualCostNEQ(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldActualCost, v))
}

// ActualCostIn applies the In predicate on the "actual_cost" field.
func ActualCostIn(vs ...int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldActualCost, vs...))
}

// ActualCostNotIn applies the NotIn predicate on the "actual_cost" field.
func ActualCostNotIn(vs ...int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldActualCost, vs...))
}

// ActualCostGT applies the GT predicate on the "actual_cost" field.
func ActualCostGT(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldActualCost, v))
}

// ActualCostGTE applies the GTE predicate on the "actual_cost" field.
func ActualCostGTE(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldActualCost, v))
}

// ActualCostLT applies the LT predicate on the "actual_cost" field.
func ActualCostLT(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldActualCost, v))
}

// ActualCostLTE applies the LTE predicate on the "actual_cost" field.
func ActualCostLTE(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldActualCost, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DataVersionHashEQ applies the EQ predicate on the "data_version_hash" field.
func DataVersionHashEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldDataVersionHash, v))
}

// DataVersionHashNEQ applies the NEQ predicate on the "data_version_hash" field.
func DataVersionHashNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldDataVersionHash, v))
}

// DataVersionHashIn applies the In predicate on the "data_version_hash" field.
func DataVersionHashIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldDataVersionHash, vs...))
}

// DataVersionHashNotIn applies the NotIn predicate on the "data_version_hash" field.
func DataVersionHashNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldDataVersionHash, vs...))
}

// DataVersionHashGT applies the GT predicate on the "data_version_hash" field.
func DataVersionHashGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldDataVersionHash, v))
}

// DataVersionHashGTE applies the GTE predicate on the "data_version_hash" field.
func DataVersionHashGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldDataVersionHash, v))
}

// DataVersionHashLT applies the LT predicate on the "data_version_hash" field.
func DataVersionHashLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldDataVersionHash, v))
}

// DataVersionHashLTE applies the LTE predicate on the "data_version_hash" field.
func DataVersionHashLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldDataVersionHash, v))
}

// DataVersionHashContains applies the Contains predicate on the "data_version_hash" field.
func DataVersionHashContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldDataVersionHash, v))
}

// DataVersionHashHasPrefix applies the HasPrefix predicate on the "data_version_hash" field.
func DataVersionHashHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldDataVersionHash, v))
}

// DataVersionHashHasSuffix applies the HasSuffix predicate on the "data_version_hash" field.
func DataVersionHashHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldDataVersionHash, v))
}

// DataVersionHashIsNil applies the IsNil predicate on the "data_version_hash" field.
func DataVersionHashIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldDataVersionHash))
}

// DataVersionHashNotNil applies the NotNil predicate on the "data_version_hash" field.
func DataVersionHashNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldDataVersionHash))
}

// DataVersionHashEqualFold applies the EqualFold predicate on the "data_version_hash" field.
func DataVersionHashEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldDataVersionHash, v))
}

// DataVersionHashContainsFold applies the ContainsFold predicate on the "data_version_hash" field.
func DataVersionHashContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldDataVersionHash, v))
}

// ExperimentIDEQ applies the EQ predicate on the "experiment_id" field.
func ExperimentIDEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldExperimentID, v))
}

// ExperimentIDNEQ applies the NEQ predicate on the "experiment_id" field.
func ExperimentIDNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldExperimentID, v))
}

// ExperimentIDIn applies the In predicate on the "experiment_id" field.
func ExperimentIDIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldExperimentID, vs...))
}

// ExperimentIDNotIn applies the NotIn predicate on the "experiment_id" field.
func ExperimentIDNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldExperimentID, vs...))
}

// ExperimentIDGT applies the GT predicate on the "experiment_id" field.
func ExperimentIDGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldExperimentID, v))
}

// ExperimentIDGTE applies the GTE predicate on the "experiment_id" field.
func ExperimentIDGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldExperimentID, v))
}

// ExperimentIDLT applies the LT predicate on the "experiment_id" field.
func ExperimentIDLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldExperimentID, v))
}

// ExperimentIDLTE applies the LTE predicate on the "experiment_id" field.
func ExperimentIDLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldExperimentID, v))
}

// ExperimentIDContains applies the Contains predicate on the "experiment_id" field.
func ExperimentIDContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldExperimentID, v))
}

// ExperimentIDHasPrefix applies the HasPrefix predicate on the "experiment_id" field.
func ExperimentIDHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldExperimentID, v))
}

// ExperimentIDHasSuffix applies the HasSuffix predicate on the "experiment_id" field.
func ExperimentIDHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldExperimentID, v))
}

// ExperimentIDIsNil applies the IsNil predicate on the "experiment_id" field.
func ExperimentIDIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldExperimentID))
}

// ExperimentIDNotNil applies the NotNil predicate on the "experiment_id" field.
func ExperimentIDNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldExperimentID))
}

// ExperimentIDEqualFold applies the EqualFold predicate on the "experiment_id" field.
func ExperimentIDEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldExperimentID, v))
}

// ExperimentIDContainsFold applies the ContainsFold predicate on the "experiment_id" field.
func ExperimentIDContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldExperimentID, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDIsNil applies the IsNil predicate on the "meeting_id" field.
func MeetingIDIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldMeetingID))
}

// MeetingIDNotNil applies the NotNil predicate on the "meeting_id" field.
func MeetingIDNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldMeetingID))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldMeetingID, v))
}

// CycleIDEQ applies the EQ predicate on the "cycle_id" field.
func CycleIDEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCycleID, v))
}

// CycleIDNEQ applies the NEQ predicate on the "cycle_id" field.
func CycleIDNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldCycleID, v))
}

// CycleIDIn applies the In predicate on the "cycle_id" field.
func CycleIDIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldCycleID, vs...))
}

// CycleIDNotIn applies the NotIn predicate on the "cycle_id" field.
func CycleIDNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldCycleID, vs...))
}

// CycleIDGT applies the GT predicate on the "cycle_id" field.
func CycleIDGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldCycleID, v))
}

// CycleIDGTE applies the GTE predicate on the "cycle_id" field.
func CycleIDGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldCycleID, v))
}

// CycleIDLT applies the LT predicate on the "cycle_id" field.
func CycleIDLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldCycleID, v))
}

// CycleIDLTE applies the LTE predicate on the "cycle_id" field.
func CycleIDLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldCycleID, v))
}

// CycleIDContains applies the Contains predicate on the "cycle_id" field.
func CycleIDContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldCycleID, v))
}

// CycleIDHasPrefix applies the HasPrefix predicate on the "cycle_id" field.
func CycleIDHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldCycleID, v))
}

// CycleIDHasSuffix applies the HasSuffix predicate on the "cycle_id" field.
func CycleIDHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldCycleID, v))
}

// CycleIDIsNil applies the IsNil predicate on the "cycle_id" field.
func CycleIDIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldCycleID))
}

// CycleIDNotNil applies the NotNil predicate on the "cycle_id" field.
func CycleIDNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldCycleID))
}

// CycleIDEqualFold applies the EqualFold predicate on the "cycle_id" field.
func CycleIDEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldCycleID, v))
}

// CycleIDContainsFold applies the ContainsFold predicate on the "cycle_id" field.
func CycleIDContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldCycleID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.NotPredicates(p))
}
