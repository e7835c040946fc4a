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
	"github.com/NoAme666/aiquant/ent/predicate"
	"github.com/NoAme666/aiquant/ent/researchcycle"
)

// ResearchCycleUpdate is the builder for updating ResearchCycle entities.
type ResearchCycleUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchCycleMutation
}

// Where appends a list predicates to the ResearchCycleUpdate builder.
func (_u *ResearchCycleUpdate) Where(ps ...predicate.ResearchCycle) *ResearchCycleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ResearchCycleUpdate) SetTitle(v string) *ResearchCycleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchCycleUpdate) SetNillableTitle(v *string) *ResearchCycleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *ResearchCycleUpdate) SetOwner(v string) *ResearchCycleUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *ResearchCycleUpdate) SetNillableOwner(v *string) *ResearchCycleUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ResearchCycleUpdate) SetState(v researchcycle.State) *ResearchCycleUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ResearchCycleUpdate) SetNillableState(v *researchcycle.State) *ResearchCycleUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRejections sets the "rejections" field.
func (_u *ResearchCycleUpdate) SetRejections(v int) *ResearchCycleUpdate {
	_u.mutation.ResetRejections()
	_u.mutation.SetRejections(v)
	return _u
}

// SetNillableRejections sets the "rejections" field if the given value is not nil.
func (_u *ResearchCycleUpdate) SetNillableRejections(v *int) *ResearchCycleUpdate {
	if v != nil {
		_u.SetRejections(*v)
	}
	return _u
}

// AddRejections adds value to the "rejections" field.
func (_u *ResearchCycleUpdate) AddRejections(v int) *ResearchCycleUpdate {
	_u.mutation.AddRejections(v)
	return _u
}

// SetHistory sets the "history" field.
func (_u *ResearchCycleUpdate) SetHistory(v []map[string]interface{}) *ResearchCycleUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ResearchCycleUpdate) AppendHistory(v []map[string]interface{}) *ResearchCycleUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ResearchCycleUpdate) ClearHistory() *ResearchCycleUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchCycleUpdate) SetUpdatedAt(v time.Time) *ResearchCycleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ResearchCycleMutation object of the builder.
func (_u *ResearchCycleUpdate) Mutation() *ResearchCycleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchCycleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchCycleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchCycleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchCycleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchCycleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchcycle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchCycleUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := researchcycle.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ResearchCycle.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchCycleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchcycle.Table, researchcycle.Columns, sqlgraph.NewFieldSpec(researchcycle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchcycle.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(researchcycle.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(researchcycle.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rejections(); ok {
		_spec.SetField(researchcycle.FieldRejections, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejections(); ok {
		_spec.AddField(researchcycle.FieldRejections, field.TypeInt, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(researchcycle.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchcycle.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(researchcycle.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchcycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchCycleUpdateOne is the builder for updating a single ResearchCycle entity.
type ResearchCycleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchCycleMutation
}

// SetTitle sets the "title" field.
func (_u *ResearchCycleUpdateOne) SetTitle(v string) *ResearchCycleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchCycleUpdateOne) SetNillableTitle(v *string) *ResearchCycleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *ResearchCycleUpdateOne) SetOwner(v string) *ResearchCycleUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *ResearchCycleUpdateOne) SetNillableOwner(v *string) *ResearchCycleUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ResearchCycleUpdateOne) SetState(v researchcycle.State) *ResearchCycleUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ResearchCycleUpdateOne) SetNillableState(v *researchcycle.State) *ResearchCycleUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRejections sets the "rejections" field.
func (_u *ResearchCycleUpdateOne) SetRejections(v int) *ResearchCycleUpdateOne {
	_u.mutation.ResetRejections()
	_u.mutation.SetRejections(v)
	return _u
}

// SetNillableRejections sets the "rejections" field if the given value is not nil.
func (_u *ResearchCycleUpdateOne) SetNillableRejections(v *int) *ResearchCycleUpdateOne {
	if v != nil {
		_u.SetRejections(*v)
	}
	return _u
}

// AddRejections adds value to the "rejections" field.
func (_u *ResearchCycleUpdateOne) AddRejections(v int) *ResearchCycleUpdateOne {
	_u.mutation.AddRejections(v)
	return _u
}

// SetHistory sets the "history" field.
func (_u *ResearchCycleUpdateOne) SetHistory(v []map[string]interface{}) *ResearchCycleUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ResearchCycleUpdateOne) AppendHistory(v []map[string]interface{}) *ResearchCycleUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ResearchCycleUpdateOne) ClearHistory() *ResearchCycleUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchCycleUpdateOne) SetUpdatedAt(v time.Time) *ResearchCycleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ResearchCycleMutation object of the builder.
func (_u *ResearchCycleUpdateOne) Mutation() *ResearchCycleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResearchCycleUpdate builder.
func (_u *ResearchCycleUpdateOne) Where(ps ...predicate.ResearchCycle) *ResearchCycleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchCycleUpdateOne) Select(field string, fields ...string) *ResearchCycleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchCycle entity.
func (_u *ResearchCycleUpdateOne) Save(ctx context.Context) (*ResearchCycle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchCycleUpdateOne) SaveX(ctx context.Context) *ResearchCycle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchCycleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchCycleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchCycleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchcycle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchCycleUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := researchcycle.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ResearchCycle.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchCycleUpdateOne) sqlSave(ctx context.Context) (_node *ResearchCycle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchcycle.Table, researchcycle.Columns, sqlgraph.NewFieldSpec(researchcycle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchCycle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchcycle.FieldID)
		for _, f := range fields {
			if !researchcycle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchcycle.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchcycle.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(researchcycle.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(researchcycle.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rejections(); ok {
		_spec.SetField(researchcycle.FieldRejections, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejections(); ok {
		_spec.AddField(researchcycle.FieldRejections, field.TypeInt, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(researchcycle.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchcycle.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(researchcycle.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchcycle.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ResearchCycle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
