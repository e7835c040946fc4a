// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/toolrequest"
)

// ToolRequestCreate is the builder for creating a ToolRequest entity.
type ToolRequestCreate struct {
	config
	mutation *ToolRequestMutation
	hooks    []Hook
}

// SetToolName sets the "tool_name" field.
func (_c *ToolRequestCreate) SetToolName(v string) *ToolRequestCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ToolRequestCreate) SetDescription(v string) *ToolRequestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ToolRequestCreate) SetNillableDescription(v *string) *ToolRequestCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequesters sets the "requesters" field.
func (_c *ToolRequestCreate) SetRequesters(v []string) *ToolRequestCreate {
	_c.mutation.SetRequesters(v)
	return _c
}

// SetRequestCount sets the "request_count" field.
func (_c *ToolRequestCreate) SetRequestCount(v int) *ToolRequestCreate {
	_c.mutation.SetRequestCount(v)
	return _c
}

// SetNillableRequestCount sets the "request_count" field if the given value is not nil.
func (_c *ToolRequestCreate) SetNillableRequestCount(v *int) *ToolRequestCreate {
	if v != nil {
		_c.SetRequestCount(*v)
	}
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *ToolRequestCreate) SetUrgency(v float64) *ToolRequestCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetFeasibility sets the "feasibility" field.
func (_c *ToolRequestCreate) SetFeasibility(v float64) *ToolRequestCreate {
	_c.mutation.SetFeasibility(v)
	return _c
}

// SetDeployed sets the "deployed" field.
func (_c *ToolRequestCreate) SetDeployed(v bool) *ToolRequestCreate {
	_c.mutation.SetDeployed(v)
	return _c
}

// SetNillableDeployed sets the "deployed" field if the given value is not nil.
func (_c *ToolRequestCreate) SetNillableDeployed(v *bool) *ToolRequestCreate {
	if v != nil {
		_c.SetDeployed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolRequestCreate) SetCreatedAt(v time.Time) *ToolRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolRequestCreate) SetNillableCreatedAt(v *time.Time) *ToolRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ToolRequestCreate) SetUpdatedAt(v time.Time) *ToolRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ToolRequestCreate) SetNillableUpdatedAt(v *time.Time) *ToolRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolRequestCreate) SetID(v string) *ToolRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ToolRequestMutation object of the builder.
func (_c *ToolRequestCreate) Mutation() *ToolRequestMutation {
	return _c.mutation
}

// Save creates the ToolRequest in the database.
func (_c *ToolRequestCreate) Save(ctx context.Context) (*ToolRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolRequestCreate) SaveX(ctx context.Context) *ToolRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolRequestCreate) defaults() {
	if _, ok := _c.mutation.RequestCount(); !ok {
		v := toolrequest.DefaultRequestCount
		_c.mutation.SetRequestCount(v)
	}
	if _, ok := _c.mutation.Deployed(); !ok {
		v := toolrequest.DefaultDeployed
		_c.mutation.SetDeployed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := toolrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolRequestCreate) check() error {
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolRequest.tool_name"`)}
	}
	if _, ok := _c.mutation.Requesters(); !ok {
		return &ValidationError{Name: "requesters", err: errors.New(`ent: missing required field "ToolRequest.requesters"`)}
	}
	if _, ok := _c.mutation.RequestCount(); !ok {
		return &ValidationError{Name: "request_count", err: errors.New(`ent: missing required field "ToolRequest.request_count"`)}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`ent: missing required field "ToolRequest.urgency"`)}
	}
	if _, ok := _c.mutation.Feasibility(); !ok {
		return &ValidationError{Name: "feasibility", err: errors.New(`ent: missing required field "ToolRequest.feasibility"`)}
	}
	if _, ok := _c.mutation.Deployed(); !ok {
		return &ValidationError{Name: "deployed", err: errors.New(`ent: missing required field "ToolRequest.deployed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ToolRequest.updated_at"`)}
	}
	return nil
}

func (_c *ToolRequestCreate) sqlSave(ctx context.Context) (*ToolRequest, error) {
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
			return nil, fmt.Errorf("unexpected ToolRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolRequestCreate) createSpec() (*ToolRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolrequest.Table, sqlgraph.NewFieldSpec(toolrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolrequest.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(toolrequest.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Requesters(); ok {
		_spec.SetField(toolrequest.FieldRequesters, field.TypeJSON, value)
		_node.Requesters = value
	}
	if value, ok := _c.mutation.RequestCount(); ok {
		_spec.SetField(toolrequest.FieldRequestCount, field.TypeInt, value)
		_node.RequestCount = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(toolrequest.FieldUrgency, field.TypeFloat64, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Feasibility(); ok {
		_spec.SetField(toolrequest.FieldFeasibility, field.TypeFloat64, value)
		_node.Feasibility = value
	}
	if value, ok := _c.mutation.Deployed(); ok {
		_spec.SetField(toolrequest.FieldDeployed, field.TypeBool, value)
		_node.Deployed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(toolrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ToolRequestCreateBulk is the builder for creating many ToolRequest entities in bulk.
type ToolRequestCreateBulk struct {
	config
	err      error
	builders []*ToolRequestCreate
}

// Save creates the ToolRequest entities in the database.
func (_c *ToolRequestCreateBulk) Save(ctx context.Context) ([]*ToolRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolRequestMutation)
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
func (_c *ToolRequestCreateBulk) SaveX(ctx context.Context) []*ToolRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
