// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/toolcall"
)

// ToolCallCreate is the builder for creating a ToolCall entity.
type ToolCallCreate struct {
	config
	mutation *ToolCallMutation
	hooks    []Hook
}

// SetAgent sets the "agent" field.
func (_c *ToolCallCreate) SetAgent(v string) *ToolCallCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetTool sets the "tool" field.
func (_c *ToolCallCreate) SetTool(v string) *ToolCallCreate {
	_c.mutation.SetTool(v)
	return _c
}

// SetArgs sets the "args" field.
func (_c *ToolCallCreate) SetArgs(v map[string]interface{}) *ToolCallCreate {
	_c.mutation.SetArgs(v)
	return _c
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_c *ToolCallCreate) SetEstimatedCost(v int) *ToolCallCreate {
	_c.mutation.SetEstimatedCost(v)
	return _c
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableEstimatedCost(v *int) *ToolCallCreate {
	if v != nil {
		_c.SetEstimatedCost(*v)
	}
	return _c
}

// SetActualCost sets the "actual_cost" field.
func (_c *ToolCallCreate) SetActualCost(v int) *ToolCallCreate {
	_c.mutation.SetActualCost(v)
	return _c
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableActualCost(v *int) *ToolCallCreate {
	if v != nil {
		_c.SetActualCost(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolCallCreate) SetStatus(v toolcall.Status) *ToolCallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ToolCallCreate) SetErrorMessage(v string) *ToolCallCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableErrorMessage(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDataVersionHash sets the "data_version_hash" field.
func (_c *ToolCallCreate) SetDataVersionHash(v string) *ToolCallCreate {
	_c.mutation.SetDataVersionHash(v)
	return _c
}

// SetNillableDataVersionHash sets the "data_version_hash" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableDataVersionHash(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetDataVersionHash(*v)
	}
	return _c
}

// SetExperimentID sets the "experiment_id" field.
func (_c *ToolCallCreate) SetExperimentID(v string) *ToolCallCreate {
	_c.mutation.SetExperimentID(v)
	return _c
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableExperimentID(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetExperimentID(*v)
	}
	return _c
}

// SetMeetingID sets the "meeting_id" field.
func (_c *ToolCallCreate) SetMeetingID(v string) *ToolCallCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableMeetingID(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetMeetingID(*v)
	}
	return _c
}

// SetCycleID sets the "cycle_id" field.
func (_c *ToolCallCreate) SetCycleID(v string) *ToolCallCreate {
	_c.mutation.SetCycleID(v)
	return _c
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableCycleID(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetCycleID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolCallCreate) SetCreatedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableCreatedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolCallCreate) SetID(v string) *ToolCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ToolCallMutation object of the builder.
func (_c *ToolCallCreate) Mutation() *ToolCallMutation {
	return _c.mutation
}

// Save creates the ToolCall in the database.
func (_c *ToolCallCreate) Save(ctx context.Context) (*ToolCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolCallCreate) SaveX(ctx context.Context) *ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolCallCreate) defaults() {
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		v := toolcall.DefaultEstimatedCost
		_c.mutation.SetEstimatedCost(v)
	}
	if _, ok := _c.mutation.ActualCost(); !ok {
		v := toolcall.DefaultActualCost
		_c.mutation.SetActualCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolcall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolCallCreate) check() error {
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "ToolCall.agent"`)}
	}
	if _, ok := _c.mutation.Tool(); !ok {
		return &ValidationError{Name: "tool", err: errors.New(`ent: missing required field "ToolCall.tool"`)}
	}
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		return &ValidationError{Name: "estimated_cost", err: errors.New(`ent: missing required field "ToolCall.estimated_cost"`)}
	}
	if _, ok := _c.mutation.ActualCost(); !ok {
		return &ValidationError{Name: "actual_cost", err: errors.New(`ent: missing required field "ToolCall.actual_cost"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolCall.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolCall.created_at"`)}
	}
	return nil
}

func (_c *ToolCallCreate) sqlSave(ctx context.Context) (*ToolCall, error) {
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
			return nil, fmt.Errorf("unexpected ToolCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolCallCreate) createSpec() (*ToolCall, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolcall.Table, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(toolcall.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Tool(); ok {
		_spec.SetField(toolcall.FieldTool, field.TypeString, value)
		_node.Tool = value
	}
	if value, ok := _c.mutation.Args(); ok {
		_spec.SetField(toolcall.FieldArgs, field.TypeJSON, value)
		_node.Args = value
	}
	if value, ok := _c.mutation.EstimatedCost(); ok {
		_spec.SetField(toolcall.FieldEstimatedCost, field.TypeInt, value)
		_node.EstimatedCost = value
	}
	if value, ok := _c.mutation.ActualCost(); ok {
		_spec.SetField(toolcall.FieldActualCost, field.TypeInt, value)
		_node.ActualCost = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(toolcall.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.DataVersionHash(); ok {
		_spec.SetField(toolcall.FieldDataVersionHash, field.TypeString, value)
		_node.DataVersionHash = value
	}
	if value, ok := _c.mutation.ExperimentID(); ok {
		_spec.SetField(toolcall.FieldExperimentID, field.TypeString, value)
		_node.ExperimentID = value
	}
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(toolcall.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = value
	}
	if value, ok := _c.mutation.CycleID(); ok {
		_spec.SetField(toolcall.FieldCycleID, field.TypeString, value)
		_node.CycleID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ToolCallCreateBulk is the builder for creating many ToolCall entities in bulk.
type ToolCallCreateBulk struct {
	config
	err      error
	builders []*ToolCallCreate
}

// Save creates the ToolCall entities in the database.
func (_c *ToolCallCreateBulk) Save(ctx context.Context) ([]*ToolCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolCallMutation)
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
func (_c *ToolCallCreateBulk) SaveX(ctx context.Context) []*ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
