// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/feedbackentry"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// FeedbackEntryUpdate is the builder for updating FeedbackEntry entities.
type FeedbackEntryUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackEntryMutation
}

// Where appends a list predicates to the FeedbackEntryUpdate builder.
func (_u *FeedbackEntryUpdate) Where(ps ...predicate.FeedbackEntry) *FeedbackEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgent sets the "agent" field.
func (_u *FeedbackEntryUpdate) SetAgent(v string) *FeedbackEntryUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *FeedbackEntryUpdate) SetNillableAgent(v *string) *FeedbackEntryUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *FeedbackEntryUpdate) SetCategory(v feedbackentry.Category) *FeedbackEntryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FeedbackEntryUpdate) SetNillableCategory(v *feedbackentry.Category) *FeedbackEntryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *FeedbackEntryUpdate) SetContent(v string) *FeedbackEntryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *FeedbackEntryUpdate) SetNillableContent(v *string) *FeedbackEntryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the FeedbackEntryMutation object of the builder.
func (_u *FeedbackEntryUpdate) Mutation() *FeedbackEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEntryUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := feedbackentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "FeedbackEntry.category": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackentry.Table, feedbackentry.Columns, sqlgraph.NewFieldSpec(feedbackentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(feedbackentry.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(feedbackentry.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(feedbackentry.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackEntryUpdateOne is the builder for updating a single FeedbackEntry entity.
type FeedbackEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackEntryMutation
}

// SetAgent sets the "agent" field.
func (_u *FeedbackEntryUpdateOne) SetAgent(v string) *FeedbackEntryUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *FeedbackEntryUpdateOne) SetNillableAgent(v *string) *FeedbackEntryUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *FeedbackEntryUpdateOne) SetCategory(v feedbackentry.Category) *FeedbackEntryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FeedbackEntryUpdateOne) SetNillableCategory(v *feedbackentry.Category) *FeedbackEntryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *FeedbackEntryUpdateOne) SetContent(v string) *FeedbackEntryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *FeedbackEntryUpdateOne) SetNillableContent(v *string) *FeedbackEntryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the FeedbackEntryMutation object of the builder.
func (_u *FeedbackEntryUpdateOne) Mutation() *FeedbackEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackEntryUpdate builder.
func (_u *FeedbackEntryUpdateOne) Where(ps ...predicate.FeedbackEntry) *FeedbackEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackEntryUpdateOne) Select(field string, fields ...string) *FeedbackEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackEntry entity.
func (_u *FeedbackEntryUpdateOne) Save(ctx context.Context) (*FeedbackEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEntryUpdateOne) SaveX(ctx context.Context) *FeedbackEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := feedbackentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "FeedbackEntry.category": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEntryUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackentry.Table, feedbackentry.Columns, sqlgraph.NewFieldSpec(feedbackentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackentry.FieldID)
		for _, f := range fields {
			if !feedbackentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackentry.FieldID {
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
		_spec.SetField(feedbackentry.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(feedbackentry.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(feedbackentry.FieldContent, field.TypeString, value)
	}
	_node = &FeedbackEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
