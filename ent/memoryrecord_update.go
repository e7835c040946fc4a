// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/memoryapproval"
	"github.com/NoAme666/aiquant/ent/memoryrecord"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// MemoryRecordUpdate is the builder for updating MemoryRecord entities.
type MemoryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryRecordMutation
}

// Where appends a list predicates to the MemoryRecordUpdate builder.
func (_u *MemoryRecordUpdate) Where(ps ...predicate.MemoryRecord) *MemoryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgent sets the "agent" field.
func (_u *MemoryRecordUpdate) SetAgent(v string) *MemoryRecordUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableAgent(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetTeam sets the "team" field.
func (_u *MemoryRecordUpdate) SetTeam(v string) *MemoryRecordUpdate {
	_u.mutation.SetTeam(v)
	return _u
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableTeam(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetTeam(*v)
	}
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *MemoryRecordUpdate) ClearTeam() *MemoryRecordUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryRecordUpdate) SetContent(v string) *MemoryRecordUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableContent(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *MemoryRecordUpdate) SetTags(v []string) *MemoryRecordUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *MemoryRecordUpdate) AppendTags(v []string) *MemoryRecordUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *MemoryRecordUpdate) ClearTags() *MemoryRecordUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetScope sets the "scope" field.
func (_u *MemoryRecordUpdate) SetScope(v memoryrecord.Scope) *MemoryRecordUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableScope(v *memoryrecord.Scope) *MemoryRecordUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MemoryRecordUpdate) SetConfidence(v float64) *MemoryRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableConfidence(v *float64) *MemoryRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MemoryRecordUpdate) AddConfidence(v float64) *MemoryRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *MemoryRecordUpdate) SetExperimentID(v string) *MemoryRecordUpdate {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableExperimentID(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// ClearExperimentID clears the value of the "experiment_id" field.
func (_u *MemoryRecordUpdate) ClearExperimentID() *MemoryRecordUpdate {
	_u.mutation.ClearExperimentID()
	return _u
}

// SetDataVersionHash sets the "data_version_hash" field.
func (_u *MemoryRecordUpdate) SetDataVersionHash(v string) *MemoryRecordUpdate {
	_u.mutation.SetDataVersionHash(v)
	return _u
}

// SetNillableDataVersionHash sets the "data_version_hash" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableDataVersionHash(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetDataVersionHash(*v)
	}
	return _u
}

// ClearDataVersionHash clears the value of the "data_version_hash" field.
func (_u *MemoryRecordUpdate) ClearDataVersionHash() *MemoryRecordUpdate {
	_u.mutation.ClearDataVersionHash()
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *MemoryRecordUpdate) SetArtifactID(v string) *MemoryRecordUpdate {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableArtifactID(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (_u *MemoryRecordUpdate) ClearArtifactID() *MemoryRecordUpdate {
	_u.mutation.ClearArtifactID()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryRecordUpdate) SetEmbedding(v []float32) *MemoryRecordUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryRecordUpdate) AppendEmbedding(v []float32) *MemoryRecordUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryRecordUpdate) ClearEmbedding() *MemoryRecordUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *MemoryRecordUpdate) SetApprovalStatus(v memoryrecord.ApprovalStatus) *MemoryRecordUpdate {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableApprovalStatus(v *memoryrecord.ApprovalStatus) *MemoryRecordUpdate {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetNeededApprovals sets the "needed_approvals" field.
func (_u *MemoryRecordUpdate) SetNeededApprovals(v int) *MemoryRecordUpdate {
	_u.mutation.ResetNeededApprovals()
	_u.mutation.SetNeededApprovals(v)
	return _u
}

// SetNillableNeededApprovals sets the "needed_approvals" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableNeededApprovals(v *int) *MemoryRecordUpdate {
	if v != nil {
		_u.SetNeededApprovals(*v)
	}
	return _u
}

// AddNeededApprovals adds value to the "needed_approvals" field.
func (_u *MemoryRecordUpdate) AddNeededApprovals(v int) *MemoryRecordUpdate {
	_u.mutation.AddNeededApprovals(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *MemoryRecordUpdate) SetExpiresAt(v time.Time) *MemoryRecordUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableExpiresAt(v *time.Time) *MemoryRecordUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *MemoryRecordUpdate) ClearExpiresAt() *MemoryRecordUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// AddApprovalIDs adds the "approvals" edge to the MemoryApproval entity by IDs.
func (_u *MemoryRecordUpdate) AddApprovalIDs(ids ...string) *MemoryRecordUpdate {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the MemoryApproval entity.
func (_u *MemoryRecordUpdate) AddApprovals(v ...*MemoryApproval) *MemoryRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_u *MemoryRecordUpdate) Mutation() *MemoryRecordMutation {
	return _u.mutation
}

// ClearApprovals clears all "approvals" edges to the MemoryApproval entity.
func (_u *MemoryRecordUpdate) ClearApprovals() *MemoryRecordUpdate {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to MemoryApproval entities by IDs.
func (_u *MemoryRecordUpdate) RemoveApprovalIDs(ids ...string) *MemoryRecordUpdate {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to MemoryApproval entities.
func (_u *MemoryRecordUpdate) RemoveApprovals(v ...*MemoryApproval) *MemoryRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryRecordUpdate) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := memoryrecord.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := memoryrecord.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := memoryrecord.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.approval_status": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryrecord.Table, memoryrecord.Columns, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(memoryrecord.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(memoryrecord.FieldTeam, field.TypeString, value)
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(memoryrecord.FieldTeam, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryrecord.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(memoryrecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(memoryrecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(memoryrecord.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(memoryrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(memoryrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExperimentID(); ok {
		_spec.SetField(memoryrecord.FieldExperimentID, field.TypeString, value)
	}
	if _u.mutation.ExperimentIDCleared() {
		_spec.ClearField(memoryrecord.FieldExperimentID, field.TypeString)
	}
	if value, ok := _u.mutation.DataVersionHash(); ok {
		_spec.SetField(memoryrecord.FieldDataVersionHash, field.TypeString, value)
	}
	if _u.mutation.DataVersionHashCleared() {
		_spec.ClearField(memoryrecord.FieldDataVersionHash, field.TypeString)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(memoryrecord.FieldArtifactID, field.TypeString, value)
	}
	if _u.mutation.ArtifactIDCleared() {
		_spec.ClearField(memoryrecord.FieldArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryrecord.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryrecord.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(memoryrecord.FieldApprovalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeededApprovals(); ok {
		_spec.SetField(memoryrecord.FieldNeededApprovals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNeededApprovals(); ok {
		_spec.AddField(memoryrecord.FieldNeededApprovals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(memoryrecord.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(memoryrecord.FieldExpiresAt, field.TypeTime)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryrecord.ApprovalsTable,
			Columns: []string{memoryrecord.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryapproval.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryrecord.ApprovalsTable,
			Columns: []string{memoryrecord.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryapproval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryrecord.ApprovalsTable,
			Columns: []string{memoryrecord.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryapproval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryRecordUpdateOne is the builder for updating a single MemoryRecord entity.
type MemoryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryRecordMutation
}

// SetAgent sets the "agent" field.
func (_u *MemoryRecordUpdateOne) SetAgent(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableAgent(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetTeam sets the "team" field.
func (_u *MemoryRecordUpdateOne) SetTeam(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetTeam(v)
	return _u
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableTeam(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetTeam(*v)
	}
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *MemoryRecordUpdateOne) ClearTeam() *MemoryRecordUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryRecordUpdateOne) SetContent(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableContent(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *MemoryRecordUpdateOne) SetTags(v []string) *MemoryRecordUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *MemoryRecordUpdateOne) AppendTags(v []string) *MemoryRecordUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *MemoryRecordUpdateOne) ClearTags() *MemoryRecordUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetScope sets the "scope" field.
func (_u *MemoryRecordUpdateOne) SetScope(v memoryrecord.Scope) *MemoryRecordUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableScope(v *memoryrecord.Scope) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MemoryRecordUpdateOne) SetConfidence(v float64) *MemoryRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableConfidence(v *float64) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MemoryRecordUpdateOne) AddConfidence(v float64) *MemoryRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *MemoryRecordUpdateOne) SetExperimentID(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableExperimentID(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// ClearExperimentID clears the value of the "experiment_id" field.
func (_u *MemoryRecordUpdateOne) ClearExperimentID() *MemoryRecordUpdateOne {
	_u.mutation.ClearExperimentID()
	return _u
}

// SetDataVersionHash sets the "data_version_hash" field.
func (_u *MemoryRecordUpdateOne) SetDataVersionHash(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetDataVersionHash(v)
	return _u
}

// SetNillableDataVersionHash sets the "data_version_hash" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableDataVersionHash(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetDataVersionHash(*v)
	}
	return _u
}

// ClearDataVersionHash clears the value of the "data_version_hash" field.
func (_u *MemoryRecordUpdateOne) ClearDataVersionHash() *MemoryRecordUpdateOne {
	_u.mutation.ClearDataVersionHash()
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *MemoryRecordUpdateOne) SetArtifactID(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableArtifactID(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (_u *MemoryRecordUpdateOne) ClearArtifactID() *MemoryRecordUpdateOne {
	_u.mutation.ClearArtifactID()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryRecordUpdateOne) SetEmbedding(v []float32) *MemoryRecordUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryRecordUpdateOne) AppendEmbedding(v []float32) *MemoryRecordUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryRecordUpdateOne) ClearEmbedding() *MemoryRecordUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *MemoryRecordUpdateOne) SetApprovalStatus(v memoryrecord.ApprovalStatus) *MemoryRecordUpdateOne {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableApprovalStatus(v *memoryrecord.ApprovalStatus) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetNeededApprovals sets the "needed_approvals" field.
func (_u *MemoryRecordUpdateOne) SetNeededApprovals(v int) *MemoryRecordUpdateOne {
	_u.mutation.ResetNeededApprovals()
	_u.mutation.SetNeededApprovals(v)
	return _u
}

// SetNillableNeededApprovals sets the "needed_approvals" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableNeededApprovals(v *int) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetNeededApprovals(*v)
	}
	return _u
}

// AddNeededApprovals adds value to the "needed_approvals" field.
func (_u *MemoryRecordUpdateOne) AddNeededApprovals(v int) *MemoryRecordUpdateOne {
	_u.mutation.AddNeededApprovals(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *MemoryRecordUpdateOne) SetExpiresAt(v time.Time) *MemoryRecordUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableExpiresAt(v *time.Time) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *MemoryRecordUpdateOne) ClearExpiresAt() *MemoryRecordUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// AddApprovalIDs adds the "approvals" edge to the MemoryApproval entity by IDs.
func (_u *MemoryRecordUpdateOne) AddApprovalIDs(ids ...string) *MemoryRecordUpdateOne {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the MemoryApproval entity.
func (_u *MemoryRecordUpdateOne) AddApprovals(v ...*MemoryApproval) *MemoryRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_u *MemoryRecordUpdateOne) Mutation() *MemoryRecordMutation {
	return _u.mutation
}

// ClearApprovals clears all "approvals" edges to the MemoryApproval entity.
func (_u *MemoryRecordUpdateOne) ClearApprovals() *MemoryRecordUpdateOne {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to MemoryApproval entities by IDs.
func (_u *MemoryRecordUpdateOne) RemoveApprovalIDs(ids ...string) *MemoryRecordUpdateOne {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to MemoryApproval entities.
func (_u *MemoryRecordUpdateOne) RemoveApprovals(v ...*MemoryApproval) *MemoryRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// Where appends a list predicates to the MemoryRecordUpdate builder.
func (_u *MemoryRecordUpdateOne) Where(ps ...predicate.MemoryRecord) *MemoryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryRecordUpdateOne) Select(field string, fields ...string) *MemoryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryRecord entity.
func (_u *MemoryRecordUpdateOne) Save(ctx context.Context) (*MemoryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryRecordUpdateOne) SaveX(ctx context.Context) *MemoryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := memoryrecord.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := memoryrecord.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := memoryrecord.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.approval_status": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MemoryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryrecord.Table, memoryrecord.Columns, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryrecord.FieldID)
		for _, f := range fields {
			if !memoryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(memoryrecord.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(memoryrecord.FieldTeam, field.TypeString, value)
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(memoryrecord.FieldTeam, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryrecord.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(memoryrecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(memoryrecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(memoryrecord.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(memoryrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(memoryrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExperimentID(); ok {
		_spec.SetField(memoryrecord.FieldExperimentID, field.TypeString, value)
	}
	if _u.mutation.ExperimentIDCleared() {
		_spec.ClearField(memoryrecord.FieldExperimentID, field.TypeString)
	}
	if value, ok := _u.mutation.DataVersionHash(); ok {
		_spec.SetField(memoryrecord.FieldDataVersionHash, field.TypeString, value)
	}
	if _u.mutation.DataVersionHashCleared() {
		_spec.ClearField(memoryrecord.FieldDataVersionHash, field.TypeString)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(memoryrecord.FieldArtifactID, field.TypeString, value)
	}
	if _u.mutation.ArtifactIDCleared() {
		_spec.ClearField(memoryrecord.FieldArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryrecord.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryrecord.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(memoryrecord.FieldApprovalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeededApprovals(); ok {
		_spec.SetField(memoryrecord.FieldNeededApprovals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNeededApprovals(); ok {
		_spec.AddField(memoryrecord.FieldNeededApprovals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(memoryrecord.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(memoryrecord.FieldExpiresAt, field.TypeTime)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryrecord.ApprovalsTable,
			Columns: []string{memoryrecord.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryapproval.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryrecord.ApprovalsTable,
			Columns: []string{memoryrecord.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryapproval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryrecord.ApprovalsTable,
			Columns: []string{memoryrecord.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryapproval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MemoryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
