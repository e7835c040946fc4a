// Code generated by ent, DO NOT EDIT.

package memoryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldID, id))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldAgent, v))
}

// Team applies equality check predicate on the "team" field. It's identical to TeamEQ.
func Team(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldTeam, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldContent, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldConfidence, v))
}

// ExperimentID applies equality check predicate on the "experiment_id" field. It's identical to ExperimentIDEQ.
func ExperimentID(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldExperimentID, v))
}

// DataVersionHash applies equality check predicate on the "data_version_hash" field. It's identical to DataVersionHashEQ.
func DataVersionHash(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldDataVersionHash, v))
}

// ArtifactID applies equality check predicate on the "artifact_id" field. It's identical to ArtifactIDEQ.
func ArtifactID(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldArtifactID, v))
}

// NeededApprovals applies equality check predicate on the "needed_approvals" field. It's identical to NeededApprovalsEQ.
func NeededApprovals(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldNeededApprovals, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldAgent, v))
}

// TeamEQ applies the EQ predicate on the "team" field.
func TeamEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldTeam, v))
}

// TeamNEQ applies the NEQ predicate on the "team" field.
func TeamNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldTeam, v))
}

// TeamIn applies the In predicate on the "team" field.
func TeamIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldTeam, vs...))
}

// TeamNotIn applies the NotIn predicate on the "team" field.
func TeamNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldTeam, vs...))
}

// TeamGT applies the GT predicate on the "team" field.
func TeamGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldTeam, v))
}

// TeamGTE applies the GTE predicate on the "team" field.
func TeamGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldTeam, v))
}

// TeamLT applies the LT predicate on the "team" field.
func TeamLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldTeam, v))
}

// TeamLTE applies the LTE predicate on the "team" field.
func TeamLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldTeam, v))
}

// TeamContains applies the Contains predicate on the "team" field.
func TeamContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldTeam, v))
}

// TeamHasPrefix applies the HasPrefix predicate on the "team" field.
func TeamHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldTeam, v))
}

// TeamHasSuffix applies the HasSuffix predicate on the "team" field.
func TeamHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldTeam, v))
}

// TeamIsNil applies the IsNil predicate on the "team" field.
func TeamIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldTeam))
}

// TeamNotNil applies the NotNil predicate on the "team" field.
func TeamNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldTeam))
}

// TeamEqualFold applies the EqualFold predicate on the "team" field.
func TeamEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldTeam, v))
}

// TeamContainsFold applies the ContainsFold predicate on the "team" field.
func TeamContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldTeam, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldContent, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldTags))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldScope, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldConfidence, v))
}

// ExperimentIDEQ applies the EQ predicate on the "experiment_id" field.
func ExperimentIDEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldExperimentID, v))
}

// ExperimentIDNEQ applies the NEQ predicate on the "experiment_id" field.
func ExperimentIDNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldExperimentID, v))
}

// ExperimentIDIn applies the In predicate on the "experiment_id" field.
func ExperimentIDIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldExperimentID, vs...))
}

// ExperimentIDNotIn applies the NotIn predicate on the "experiment_id" field.
func ExperimentIDNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldExperimentID, vs...))
}

// ExperimentIDGT applies the GT predicate on the "experiment_id" field.
func ExperimentIDGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldExperimentID, v))
}

// ExperimentIDGTE applies the GTE predicate on the "experiment_id" field.
func ExperimentIDGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldExperimentID, v))
}

// ExperimentIDLT applies the LT predicate on the "experiment_id" field.
func ExperimentIDLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldExperimentID, v))
}

// ExperimentIDLTE applies the LTE predicate on the "experiment_id" field.
func ExperimentIDLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldExperimentID, v))
}

// ExperimentIDContains applies the Contains predicate on the "experiment_id" field.
func ExperimentIDContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldExperimentID, v))
}

// ExperimentIDHasPrefix applies the HasPrefix predicate on the "experiment_id" field.
func ExperimentIDHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldExperimentID, v))
}

// ExperimentIDHasSuffix applies the HasSuffix predicate on the "experiment_id" field.
func ExperimentIDHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldExperimentID, v))
}

// ExperimentIDIsNil applies the IsNil predicate on the "experiment_id" field.
func ExperimentIDIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldExperimentID))
}

// ExperimentIDNotNil applies the NotNil predicate on the "experiment_id" field.
func ExperimentIDNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldExperimentID))
}

// ExperimentIDEqualFold applies the EqualFold predicate on the "experiment_id" field.
func ExperimentIDEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldExperimentID, v))
}

// ExperimentIDContainsFold applies the ContainsFold predicate on the "experiment_id" field.
func ExperimentIDContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldExperimentID, v))
}

// DataVersionHashEQ applies the EQ predicate on the "data_version_hash" field.
func DataVersionHashEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldDataVersionHash, v))
}

// DataVersionHashNEQ applies the NEQ predicate on the "data_version_hash" field.
func DataVersionHashNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldDataVersionHash, v))
}

// DataVersionHashIn applies the In predicate on the "data_version_hash" field.
func DataVersionHashIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldDataVersionHash, vs...))
}

// DataVersionHashNotIn applies the NotIn predicate on the "data_version_hash" field.
func DataVersionHashNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldDataVersionHash, vs...))
}

// DataVersionHashGT applies the GT predicate on the "data_version_hash" field.
func DataVersionHashGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldDataVersionHash, v))
}

// DataVersionHashGTE applies the GTE predicate on the "data_version_hash" field.
func DataVersionHashGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldDataVersionHash, v))
}

// DataVersionHashLT applies the LT predicate on the "data_version_hash" field.
func DataVersionHashLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldDataVersionHash, v))
}

// DataVersionHashLTE applies the LTE predicate on the "data_version_hash" field.
func DataVersionHashLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldDataVersionHash, v))
}

// DataVersionHashContains applies the Contains predicate on the "data_version_hash" field.
func DataVersionHashContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldDataVersionHash, v))
}

// DataVersionHashHasPrefix applies the HasPrefix predicate on the "data_version_hash" field.
func DataVersionHashHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldDataVersionHash, v))
}

// DataVersionHashHasSuffix applies the HasSuffix predicate on the "data_version_hash" field.
func DataVersionHashHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldDataVersionHash, v))
}

// DataVersionHashIsNil applies the IsNil predicate on the "data_version_hash" field.
func DataVersionHashIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldDataVersionHash))
}

// DataVersionHashNotNil applies the NotNil predicate on the "data_version_hash" field.
func DataVersionHashNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldDataVersionHash))
}

// DataVersionHashEqualFold applies the EqualFold predicate on the "data_version_hash" field.
func DataVersionHashEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldDataVersionHash, v))
}

// DataVersionHashContainsFold applies the ContainsFold predicate on the "data_version_hash" field.
func DataVersionHashContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldDataVersionHash, v))
}

// ArtifactIDEQ applies the EQ predicate on the "artifact_id" field.
func ArtifactIDEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldArtifactID, v))
}

// ArtifactIDNEQ applies the NEQ predicate on the "artifact_id" field.
func ArtifactIDNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldArtifactID, v))
}

// ArtifactIDIn applies the In predicate on the "artifact_id" field.
func ArtifactIDIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldArtifactID, vs...))
}

// ArtifactIDNotIn applies the NotIn predicate on the "artifact_id" field.
func ArtifactIDNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldArtifactID, vs...))
}

// ArtifactIDGT applies the GT predicate on the "artifact_id" field.
func ArtifactIDGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldArtifactID, v))
}

// ArtifactIDGTE applies the GTE predicate on the "artifact_id" field.
func ArtifactIDGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldArtifactID, v))
}

// ArtifactIDLT applies the LT predicate on the "artifact_id" field.
func ArtifactIDLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldArtifactID, v))
}

// ArtifactIDLTE applies the LTE predicate on the "artifact_id" field.
func ArtifactIDLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldArtifactID, v))
}

// ArtifactIDContains applies the Contains predicate on the "artifact_id" field.
func ArtifactIDContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldArtifactID, v))
}

// ArtifactIDHasPrefix applies the HasPrefix predicate on the "artifact_id" field.
func ArtifactIDHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldArtifactID, v))
}

// ArtifactIDHasSuffix applies the HasSuffix predicate on the "artifact_id" field.
func ArtifactIDHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldArtifactID, v))
}

// ArtifactIDIsNil applies the IsNil predicate on the "artifact_id" field.
func ArtifactIDIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldArtifactID))
}

// ArtifactIDNotNil applies the NotNil predicate on the "artifact_id" field.
func ArtifactIDNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldArtifactID))
}

// ArtifactIDEqualFold applies the EqualFold predicate on the "artifact_id" field.
func ArtifactIDEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldArtifactID, v))
}

// ArtifactIDContainsFold applies the ContainsFold predicate on the "artifact_id" field.
func ArtifactIDContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldArtifactID, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldEmbedding))
}

// ApprovalStatusEQ applies the EQ predicate on the "approval_status" field.
func ApprovalStatusEQ(v ApprovalStatus) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldApprovalStatus, v))
}

// ApprovalStatusNEQ applies the NEQ predicate on the "approval_status" field.
func ApprovalStatusNEQ(v ApprovalStatus) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldApprovalStatus, v))
}

// ApprovalStatusIn applies the In predicate on the "approval_status" field.
func ApprovalStatusIn(vs ...ApprovalStatus) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldApprovalStatus, vs...))
}

// ApprovalStatusNotIn applies the NotIn predicate on the "approval_status" field.
func ApprovalStatusNotIn(vs ...ApprovalStatus) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldApprovalStatus, vs...))
}

// NeededApprovalsEQ applies the EQ predicate on the "needed_approvals" field.
func NeededApprovalsEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldNeededApprovals, v))
}

// NeededApprovalsNEQ applies the NEQ predicate on the "needed_approvals" field.
func NeededApprovalsNEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldNeededApprovals, v))
}

// NeededApprovalsIn applies the In predicate on the "needed_approvals" field.
func NeededApprovalsIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldNeededApprovals, vs...))
}

// NeededApprovalsNotIn applies the NotIn predicate on the "needed_approvals" field.
func NeededApprovalsNotIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldNeededApprovals, vs...))
}

// NeededApprovalsGT applies the GT predicate on the "needed_approvals" field.
func NeededApprovalsGT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldNeededApprovals, v))
}

// NeededApprovalsGTE applies the GTE predicate on the "needed_approvals" field.
func NeededApprovalsGTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldNeededApprovals, v))
}

// NeededApprovalsLT applies the LT predicate on the "needed_approvals" field.
func NeededApprovalsLT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldNeededApprovals, v))
}

// NeededApprovalsLTE applies the LTE predicate on the "needed_approvals" field.
func NeededApprovalsLTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldNeededApprovals, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldExpiresAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasApprovals applies the HasEdge predicate on the "approvals" edge.
func HasApprovals() predicate.MemoryRecord {
	return predicate.MemoryRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApprovalsTable, ApprovalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApprovalsWith applies the HasEdge predicate on the "approvals" edge with a given conditions (other predicates).
func HasApprovalsWith(preds ...predicate.MemoryApproval) predicate.MemoryRecord {
	return predicate.MemoryRecord(func(s *sql.Selector) {
		step := newApprovalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.NotPredicates(p))
}
