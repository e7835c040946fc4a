// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/intentionrecord"
)

// IntentionRecordCreate is the builder for creating a IntentionRecord entity.
type IntentionRecordCreate struct {
	config
	mutation *IntentionRecordMutation
	hooks    []Hook
}

// SetAgent sets the "agent" field.
func (_c *IntentionRecordCreate) SetAgent(v string) *IntentionRecordCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *IntentionRecordCreate) SetKind(v string) *IntentionRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *IntentionRecordCreate) SetPriority(v int) *IntentionRecordCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *IntentionRecordCreate) SetNillablePriority(v *int) *IntentionRecordCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetActionContext sets the "action_context" field.
func (_c *IntentionRecordCreate) SetActionContext(v map[string]interface{}) *IntentionRecordCreate {
	_c.mutation.SetActionContext(v)
	return _c
}

// SetTargetAgents sets the "target_agents" field.
func (_c *IntentionRecordCreate) SetTargetAgents(v []string) *IntentionRecordCreate {
	_c.mutation.SetTargetAgents(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *IntentionRecordCreate) SetScope(v string) *IntentionRecordCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *IntentionRecordCreate) SetNillableScope(v *string) *IntentionRecordCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IntentionRecordCreate) SetStatus(v intentionrecord.Status) *IntentionRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IntentionRecordCreate) SetNillableStatus(v *intentionrecord.Status) *IntentionRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRejectReason sets the "reject_reason" field.
func (_c *IntentionRecordCreate) SetRejectReason(v string) *IntentionRecordCreate {
	_c.mutation.SetRejectReason(v)
	return _c
}

// SetNillableRejectReason sets the "reject_reason" field if the given value is not nil.
func (_c *IntentionRecordCreate) SetNillableRejectReason(v *string) *IntentionRecordCreate {
	if v != nil {
		_c.SetRejectReason(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *IntentionRecordCreate) SetExpiresAt(v time.Time) *IntentionRecordCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntentionRecordCreate) SetCreatedAt(v time.Time) *IntentionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntentionRecordCreate) SetNillableCreatedAt(v *time.Time) *IntentionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntentionRecordCreate) SetID(v string) *IntentionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IntentionRecordMutation object of the builder.
func (_c *IntentionRecordCreate) Mutation() *IntentionRecordMutation {
	return _c.mutation
}

// Save creates the IntentionRecord in the database.
func (_c *IntentionRecordCreate) Save(ctx context.Context) (*IntentionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntentionRecordCreate) SaveX(ctx context.Context) *IntentionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntentionRecordCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := intentionrecord.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := intentionrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intentionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntentionRecordCreate) check() error {
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "IntentionRecord.agent"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "IntentionRecord.kind"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "IntentionRecord.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IntentionRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := intentionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntentionRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "IntentionRecord.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IntentionRecord.created_at"`)}
	}
	return nil
}

func (_c *IntentionRecordCreate) sqlSave(ctx context.Context) (*IntentionRecord, error) {
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
			return nil, fmt.Errorf("unexpected IntentionRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntentionRecordCreate) createSpec() (*IntentionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &IntentionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intentionrecord.Table, sqlgraph.NewFieldSpec(intentionrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(intentionrecord.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(intentionrecord.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(intentionrecord.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.ActionContext(); ok {
		_spec.SetField(intentionrecord.FieldActionContext, field.TypeJSON, value)
		_node.ActionContext = value
	}
	if value, ok := _c.mutation.TargetAgents(); ok {
		_spec.SetField(intentionrecord.FieldTargetAgents, field.TypeJSON, value)
		_node.TargetAgents = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(intentionrecord.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(intentionrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RejectReason(); ok {
		_spec.SetField(intentionrecord.FieldRejectReason, field.TypeString, value)
		_node.RejectReason = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(intentionrecord.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intentionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// IntentionRecordCreateBulk is the builder for creating many IntentionRecord entities in bulk.
type IntentionRecordCreateBulk struct {
	config
	err      error
	builders []*IntentionRecordCreate
}

// Save creates the IntentionRecord entities in the database.
func (_c *IntentionRecordCreateBulk) Save(ctx context.Context) ([]*IntentionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntentionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntentionRecordMutation)
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
func (_c *IntentionRecordCreateBulk) SaveX(ctx context.Context) []*IntentionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
