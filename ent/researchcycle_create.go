// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/researchcycle"
)

// ResearchCycleCreate is the builder for creating a ResearchCycle entity.
type ResearchCycleCreate struct {
	config
	mutation *ResearchCycleMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ResearchCycleCreate) SetTitle(v string) *ResearchCycleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *ResearchCycleCreate) SetOwner(v string) *ResearchCycleCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ResearchCycleCreate) SetState(v researchcycle.State) *ResearchCycleCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ResearchCycleCreate) SetNillableState(v *researchcycle.State) *ResearchCycleCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetRejections sets the "rejections" field.
func (_c *ResearchCycleCreate) SetRejections(v int) *ResearchCycleCreate {
	_c.mutation.SetRejections(v)
	return _c
}

// SetNillableRejections sets the "rejections" field if the given value is not nil.
func (_c *ResearchCycleCreate) SetNillableRejections(v *int) *ResearchCycleCreate {
	if v != nil {
		_c.SetRejections(*v)
	}
	return _c
}

// SetHistory sets the "history" field.
func (_c *ResearchCycleCreate) SetHistory(v []map[string]interface{}) *ResearchCycleCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchCycleCreate) SetCreatedAt(v time.Time) *ResearchCycleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchCycleCreate) SetNillableCreatedAt(v *time.Time) *ResearchCycleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResearchCycleCreate) SetUpdatedAt(v time.Time) *ResearchCycleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResearchCycleCreate) SetNillableUpdatedAt(v *time.Time) *ResearchCycleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchCycleCreate) SetID(v string) *ResearchCycleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResearchCycleMutation object of the builder.
func (_c *ResearchCycleCreate) Mutation() *ResearchCycleMutation {
	return _c.mutation
}

// Save creates the ResearchCycle in the database.
func (_c *ResearchCycleCreate) Save(ctx context.Context) (*ResearchCycle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchCycleCreate) SaveX(ctx context.Context) *ResearchCycle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchCycleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchCycleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchCycleCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := researchcycle.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Rejections(); !ok {
		v := researchcycle.DefaultRejections
		_c.mutation.SetRejections(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchcycle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := researchcycle.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchCycleCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ResearchCycle.title"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "ResearchCycle.owner"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ResearchCycle.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := researchcycle.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ResearchCycle.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rejections(); !ok {
		return &ValidationError{Name: "rejections", err: errors.New(`ent: missing required field "ResearchCycle.rejections"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchCycle.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ResearchCycle.updated_at"`)}
	}
	return nil
}

func (_c *ResearchCycleCreate) sqlSave(ctx context.Context) (*ResearchCycle, error) {
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
			return nil, fmt.Errorf("unexpected ResearchCycle.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchCycleCreate) createSpec() (*ResearchCycle, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchCycle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchcycle.Table, sqlgraph.NewFieldSpec(researchcycle.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(researchcycle.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(researchcycle.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(researchcycle.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Rejections(); ok {
		_spec.SetField(researchcycle.FieldRejections, field.TypeInt, value)
		_node.Rejections = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(researchcycle.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchcycle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(researchcycle.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ResearchCycleCreateBulk is the builder for creating many ResearchCycle entities in bulk.
type ResearchCycleCreateBulk struct {
	config
	err      error
	builders []*ResearchCycleCreate
}

// Save creates the ResearchCycle entities in the database.
func (_c *ResearchCycleCreateBulk) Save(ctx context.Context) ([]*ResearchCycle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchCycle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchCycleMutation)
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
func (_c *ResearchCycleCreateBulk) SaveX(ctx context.Context) []*ResearchCycle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchCycleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchCycleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
