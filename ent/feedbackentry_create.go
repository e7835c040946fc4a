// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/feedbackentry"
)

// FeedbackEntryCreate is the builder for creating a FeedbackEntry entity.
type FeedbackEntryCreate struct {
	config
	mutation *FeedbackEntryMutation
	hooks    []Hook
}

// SetAgent sets the "agent" field.
func (_c *FeedbackEntryCreate) SetAgent(v string) *FeedbackEntryCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *FeedbackEntryCreate) SetCategory(v feedbackentry.Category) *FeedbackEntryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *FeedbackEntryCreate) SetContent(v string) *FeedbackEntryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackEntryCreate) SetCreatedAt(v time.Time) *FeedbackEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackEntryCreate) SetNillableCreatedAt(v *time.Time) *FeedbackEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedbackEntryCreate) SetID(v string) *FeedbackEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FeedbackEntryMutation object of the builder.
func (_c *FeedbackEntryCreate) Mutation() *FeedbackEntryMutation {
	return _c.mutation
}

// Save creates the FeedbackEntry in the database.
func (_c *FeedbackEntryCreate) Save(ctx context.Context) (*FeedbackEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackEntryCreate) SaveX(ctx context.Context) *FeedbackEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedbackentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackEntryCreate) check() error {
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "FeedbackEntry.agent"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "FeedbackEntry.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := feedbackentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "FeedbackEntry.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "FeedbackEntry.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedbackEntry.created_at"`)}
	}
	return nil
}

func (_c *FeedbackEntryCreate) sqlSave(ctx context.Context) (*FeedbackEntry, error) {
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
			return nil, fmt.Errorf("unexpected FeedbackEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedbackEntryCreate) createSpec() (*FeedbackEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbackentry.Table, sqlgraph.NewFieldSpec(feedbackentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(feedbackentry.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(feedbackentry.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(feedbackentry.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedbackentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FeedbackEntryCreateBulk is the builder for creating many FeedbackEntry entities in bulk.
type FeedbackEntryCreateBulk struct {
	config
	err      error
	builders []*FeedbackEntryCreate
}

// Save creates the FeedbackEntry entities in the database.
func (_c *FeedbackEntryCreateBulk) Save(ctx context.Context) ([]*FeedbackEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackEntryMutation)
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
func (_c *FeedbackEntryCreateBulk) SaveX(ctx context.Context) []*FeedbackEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
