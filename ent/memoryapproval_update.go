// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/memoryapproval"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// MemoryApprovalUpdate is the builder for updating MemoryApproval entities.
type MemoryApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryApprovalMutation
}

// Where appends a list predicates to the MemoryApprovalUpdate builder.
func (_u *MemoryApprovalUpdate) Where(ps ...predicate.MemoryApproval) *MemoryApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApprover sets the "approver" field.
func (_u *MemoryApprovalUpdate) SetApprover(v string) *MemoryApprovalUpdate {
	_u.mutation.SetApprover(v)
	return _u
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_u *MemoryApprovalUpdate) SetNillableApprover(v *string) *MemoryApprovalUpdate {
	if v != nil {
		_u.SetApprover(*v)
	}
	return _u
}

// SetApproved sets the "approved" field.
func (_u *MemoryApprovalUpdate) SetApproved(v bool) *MemoryApprovalUpdate {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *MemoryApprovalUpdate) SetNillableApproved(v *bool) *MemoryApprovalUpdate {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *MemoryApprovalUpdate) SetReason(v string) *MemoryApprovalUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *MemoryApprovalUpdate) SetNillableReason(v *string) *MemoryApprovalUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *MemoryApprovalUpdate) ClearReason() *MemoryApprovalUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the MemoryApprovalMutation object of the builder.
func (_u *MemoryApprovalUpdate) Mutation() *MemoryApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryApprovalUpdate) check() error {
	if _u.mutation.MemoryCleared() && len(_u.mutation.MemoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MemoryApproval.memory"`)
	}
	return nil
}

func (_u *MemoryApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryapproval.Table, memoryapproval.Columns, sqlgraph.NewFieldSpec(memoryapproval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Approver(); ok {
		_spec.SetField(memoryapproval.FieldApprover, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(memoryapproval.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(memoryapproval.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(memoryapproval.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryApprovalUpdateOne is the builder for updating a single MemoryApproval entity.
type MemoryApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryApprovalMutation
}

// SetApprover sets the "approver" field.
func (_u *MemoryApprovalUpdateOne) SetApprover(v string) *MemoryApprovalUpdateOne {
	_u.mutation.SetApprover(v)
	return _u
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_u *MemoryApprovalUpdateOne) SetNillableApprover(v *string) *MemoryApprovalUpdateOne {
	if v != nil {
		_u.SetApprover(*v)
	}
	return _u
}

// SetApproved sets the "approved" field.
func (_u *MemoryApprovalUpdateOne) SetApproved(v bool) *MemoryApprovalUpdateOne {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *MemoryApprovalUpdateOne) SetNillableApproved(v *bool) *MemoryApprovalUpdateOne {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *MemoryApprovalUpdateOne) SetReason(v string) *MemoryApprovalUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *MemoryApprovalUpdateOne) SetNillableReason(v *string) *MemoryApprovalUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *MemoryApprovalUpdateOne) ClearReason() *MemoryApprovalUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the MemoryApprovalMutation object of the builder.
func (_u *MemoryApprovalUpdateOne) Mutation() *MemoryApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryApprovalUpdate builder.
func (_u *MemoryApprovalUpdateOne) Where(ps ...predicate.MemoryApproval) *MemoryApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryApprovalUpdateOne) Select(field string, fields ...string) *MemoryApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryApproval entity.
func (_u *MemoryApprovalUpdateOne) Save(ctx context.Context) (*MemoryApproval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryApprovalUpdateOne) SaveX(ctx context.Context) *MemoryApproval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryApprovalUpdateOne) check() error {
	if _u.mutation.MemoryCleared() && len(_u.mutation.MemoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MemoryApproval.memory"`)
	}
	return nil
}

func (_u *MemoryApprovalUpdateOne) sqlSave(ctx context.Context) (_node *MemoryApproval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryapproval.Table, memoryapproval.Columns, sqlgraph.NewFieldSpec(memoryapproval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryApproval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryapproval.FieldID)
		for _, f := range fields {
			if !memoryapproval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryapproval.FieldID {
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
	if value, ok := _u.mutation.Approver(); ok {
		_spec.SetField(memoryapproval.FieldApprover, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(memoryapproval.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(memoryapproval.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(memoryapproval.FieldReason, field.TypeString)
	}
	_node = &MemoryApproval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
