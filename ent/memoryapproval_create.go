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

// MemoryApprovalCreate is the builder for creating a MemoryApproval entity.
type MemoryApprovalCreate struct {
	config
	mutation *MemoryApprovalMutation
	hooks    []Hook
}

// SetMemoryID sets the "memory_id" field.
func (_c *MemoryApprovalCreate) SetMemoryID(v string) *MemoryApprovalCreate {
	_c.mutation.SetMemoryID(v)
	return _c
}

// SetApprover sets the "approver" field.
func (_c *MemoryApprovalCreate) SetApprover(v string) *MemoryApprovalCreate {
	_c.mutation.SetApprover(v)
	return _c
}

// SetApproved sets the "approved" field.
func (_c *MemoryApprovalCreate) SetApproved(v bool) *MemoryApprovalCreate {
	_c.mutation.SetApproved(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *MemoryApprovalCreate) SetReason(v string) *MemoryApprovalCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *MemoryApprovalCreate) SetNillableReason(v *string) *MemoryApprovalCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryApprovalCreate) SetCreatedAt(v time.Time) *MemoryApprovalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryApprovalCreate) SetNillableCreatedAt(v *time.Time) *MemoryApprovalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryApprovalCreate) SetID(v string) *MemoryApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMemory sets the "memory" edge to the MemoryRecord entity.
func (_c *MemoryApprovalCreate) SetMemory(v *MemoryRecord) *MemoryApprovalCreate {
	return _c.SetMemoryID(v.ID)
}

// Mutation returns the MemoryApprovalMutation object of the builder.
func (_c *MemoryApprovalCreate) Mutation() *MemoryApprovalMutation {
	return _c.mutation
}

// Save creates the MemoryApproval in the database.
func (_c *MemoryApprovalCreate) Save(ctx context.Context) (*MemoryApproval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryApprovalCreate) SaveX(ctx context.Context) *MemoryApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryApprovalCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryapproval.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryApprovalCreate) check() error {
	if _, ok := _c.mutation.MemoryID(); !ok {
		return &ValidationError{Name: "memory_id", err: errors.New(`ent: missing required field "MemoryApproval.memory_id"`)}
	}
	if _, ok := _c.mutation.Approver(); !ok {
		return &ValidationError{Name: "approver", err: errors.New(`ent: missing required field "MemoryApproval.approver"`)}
	}
	if _, ok := _c.mutation.Approved(); !ok {
		return &ValidationError{Name: "approved", err: errors.New(`ent: missing required field "MemoryApproval.approved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryApproval.created_at"`)}
	}
	if len(_c.mutation.MemoryIDs()) == 0 {
		return &ValidationError{Name: "memory", err: errors.New(`ent: missing required edge "MemoryApproval.memory"`)}
	}
	return nil
}

func (_c *MemoryApprovalCreate) sqlSave(ctx context.Context) (*MemoryApproval, error) {
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
			return nil, fmt.Errorf("unexpected MemoryApproval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryApprovalCreate) createSpec() (*MemoryApproval, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryApproval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryapproval.Table, sqlgraph.NewFieldSpec(memoryapproval.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Approver(); ok {
		_spec.SetField(memoryapproval.FieldApprover, field.TypeString, value)
		_node.Approver = value
	}
	if value, ok := _c.mutation.Approved(); ok {
		_spec.SetField(memoryapproval.FieldApproved, field.TypeBool, value)
		_node.Approved = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(memoryapproval.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryapproval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MemoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   memoryapproval.MemoryTable,
			Columns: []string{memoryapproval.MemoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MemoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MemoryApprovalCreateBulk is the builder for creating many MemoryApproval entities in bulk.
type MemoryApprovalCreateBulk struct {
	config
	err      error
	builders []*MemoryApprovalCreate
}

// Save creates the MemoryApproval entities in the database.
func (_c *MemoryApprovalCreateBulk) Save(ctx context.Context) ([]*MemoryApproval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryApproval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryApprovalMutation)
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
func (_c *MemoryApprovalCreateBulk) SaveX(ctx context.Context) []*MemoryApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
