// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/memoryapproval"
	"github.com/NoAme666/aiquant/ent/memoryrecord"
)

// MemoryRecordCreate is the builder for creating a MemoryRecord entity.
type MemoryRecordCreate struct {
	config
	mutation *MemoryRecordMutation
	hooks    []Hook
}

// SetAgent sets the "agent" field.
func (_c *MemoryRecordCreate) SetAgent(v string) *MemoryRecordCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetTeam sets the "team" field.
func (_c *MemoryRecordCreate) SetTeam(v string) *MemoryRecordCreate {
	_c.mutation.SetTeam(v)
	return _c
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableTeam(v *string) *MemoryRecordCreate {
	if v != nil {
		_c.SetTeam(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MemoryRecordCreate) SetContent(v string) *MemoryRecordCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *MemoryRecordCreate) SetTags(v []string) *MemoryRecordCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *MemoryRecordCreate) SetScope(v memoryrecord.Scope) *MemoryRecordCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MemoryRecordCreate) SetConfidence(v float64) *MemoryRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetExperimentID sets the "experiment_id" field.
func (_c *MemoryRecordCreate) SetExperimentID(v string) *MemoryRecordCreate {
	_c.mutation.SetExperimentID(v)
	return _c
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableExperimentID(v *string) *MemoryRecordCreate {
	if v != nil {
		_c.SetExperimentID(*v)
	}
	return _c
}

// SetDataVersionHash sets the "data_version_hash" field.
func (_c *MemoryRecordCreate) SetDataVersionHash(v string) *MemoryRecordCreate {
	_c.mutation.SetDataVersionHash(v)
	return _c
}

// SetNillableDataVersionHash sets the "data_version_hash" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableDataVersionHash(v *string) *MemoryRecordCreate {
	if v != nil {
		_c.SetDataVersionHash(*v)
	}
	return _c
}

// SetArtifactID sets the "artifact_id" field.
func (_c *MemoryRecordCreate) SetArtifactID(v string) *MemoryRecordCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableArtifactID(v *string) *MemoryRecordCreate {
	if v != nil {
		_c.SetArtifactID(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *MemoryRecordCreate) SetEmbedding(v []float32) *MemoryRecordCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetApprovalStatus sets the "approval_status" field.
func (_c *MemoryRecordCreate) SetApprovalStatus(v memoryrecord.ApprovalStatus) *MemoryRecordCreate {
	_c.mutation.SetApprovalStatus(v)
	return _c
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableApprovalStatus(v *memoryrecord.ApprovalStatus) *MemoryRecordCreate {
	if v != nil {
		_c.SetApprovalStatus(*v)
	}
	return _c
}

// SetNeededApprovals sets the "needed_approvals" field.
func (_c *MemoryRecordCreate) SetNeededApprovals(v int) *MemoryRecordCreate {
	_c.mutation.SetNeededApprovals(v)
	return _c
}

// SetNillableNeededApprovals sets the "needed_approvals" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableNeededApprovals(v *int) *MemoryRecordCreate {
	if v != nil {
		_c.SetNeededApprovals(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *MemoryRecordCreate) SetExpiresAt(v time.Time) *MemoryRecordCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableExpiresAt(v *time.Time) *MemoryRecordCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryRecordCreate) SetCreatedAt(v time.Time) *MemoryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableCreatedAt(v *time.Time) *MemoryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryRecordCreate) SetID(v string) *MemoryRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddApprovalIDs adds the "approvals" edge to the MemoryApproval entity by IDs.
func (_c *MemoryRecordCreate) AddApprovalIDs(ids ...string) *MemoryRecordCreate {
	_c.mutation.AddApprovalIDs(ids...)
	return _c
}

// AddApprovals adds the "approvals" edges to the MemoryApproval entity.
func (_c *MemoryRecordCreate) AddApprovals(v ...*MemoryApproval) *MemoryRecordCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalIDs(ids...)
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_c *MemoryRecordCreate) Mutation() *MemoryRecordMutation {
	return _c.mutation
}

// Save creates the MemoryRecord in the database.
func (_c *MemoryRecordCreate) Save(ctx context.Context) (*MemoryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryRecordCreate) SaveX(ctx context.Context) *MemoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryRecordCreate) defaults() {
	if _, ok := _c.mutation.ApprovalStatus(); !ok {
		v := memoryrecord.DefaultApprovalStatus
		_c.mutation.SetApprovalStatus(v)
	}
	if _, ok := _c.mutation.NeededApprovals(); !ok {
		v := memoryrecord.DefaultNeededApprovals
		_c.mutation.SetNeededApprovals(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryRecordCreate) check() error {
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "MemoryRecord.agent"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MemoryRecord.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := memoryrecord.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "MemoryRecord.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := memoryrecord.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MemoryRecord.confidence"`)}
	}
	if _, ok := _c.mutation.ApprovalStatus(); !ok {
		return &ValidationError{Name: "approval_status", err: errors.New(`ent: missing required field "MemoryRecord.approval_status"`)}
	}
	if v, ok := _c.mutation.ApprovalStatus(); ok {
		if err := memoryrecord.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "MemoryRecord.approval_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeededApprovals(); !ok {
		return &ValidationError{Name: "needed_approvals", err: errors.New(`ent: missing required field "MemoryRecord.needed_approvals"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryRecord.created_at"`)}
	}
	return nil
}

func (_c *MemoryRecordCreate) sqlSave(ctx context.Context) (*MemoryRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MemoryRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryRecordCreate) createSpec() (*MemoryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryrecord.Table, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(memoryrecord.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Team(); ok {
		_spec.SetField(memoryrecord.FieldTeam, field.TypeString, value)
		_node.Team = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(memoryrecord.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(memoryrecord.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(memoryrecord.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(memoryrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ExperimentID(); ok {
		_spec.SetField(memoryrecord.FieldExperimentID, field.TypeString, value)
		_node.ExperimentID = value
	}
	if value, ok := _c.mutation.DataVersionHash(); ok {
		_spec.SetField(memoryrecord.FieldDataVersionHash, field.TypeString, value)
		_node.DataVersionHash = value
	}
	if value, ok := _c.mutation.ArtifactID(); ok {
		_spec.SetField(memoryrecord.FieldArtifactID, field.TypeString, value)
		_node.ArtifactID = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(memoryrecord.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.ApprovalStatus(); ok {
		_spec.SetField(memoryrecord.FieldApprovalStatus, field.TypeEnum, value)
		_node.ApprovalStatus = value
	}
	if value, ok := _c.mutation.NeededApprovals(); ok {
		_spec.SetField(memoryrecord.FieldNeededApprovals, field.TypeInt, value)
		_node.NeededApprovals = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(memoryrecord.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MemoryRecordCreateBulk is the builder for creating many MemoryRecord entities in bulk.
type MemoryRecordCreateBulk struct {
	config
	err      error
	builders []*MemoryRecordCreate
}

// Save creates the MemoryRecord entities in the database.
func (_c *MemoryRecordCreateBulk) Save(ctx context.Context) ([]*MemoryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MemoryRecordCreateBulk) SaveX(ctx context.Context) []*MemoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
