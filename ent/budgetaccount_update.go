// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/budgetaccount"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// BudgetAccountUpdate is the builder for updating BudgetAccount entities.
type BudgetAccountUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetAccountMutation
}

// Where appends a list predicates to the BudgetAccountUpdate builder.
func (_u *BudgetAccountUpdate) Where(ps ...predicate.BudgetAccount) *BudgetAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountType sets the "account_type" field.
func (_u *BudgetAccountUpdate) SetAccountType(v budgetaccount.AccountType) *BudgetAccountUpdate {
	_u.mutation.SetAccountType(v)
	return _u
}

// SetNillableAccountType sets the "account_type" field if the given value is not nil.
func (_u *BudgetAccountUpdate) SetNillableAccountType(v *budgetaccount.AccountType) *BudgetAccountUpdate {
	if v != nil {
		_u.SetAccountType(*v)
	}
	return _u
}

// SetBaseWeeklyPoints sets the "base_weekly_points" field.
func (_u *BudgetAccountUpdate) SetBaseWeeklyPoints(v int) *BudgetAccountUpdate {
	_u.mutation.ResetBaseWeeklyPoints()
	_u.mutation.SetBaseWeeklyPoints(v)
	return _u
}

// SetNillableBaseWeeklyPoints sets the "base_weekly_points" field if the given value is not nil.
func (_u *BudgetAccountUpdate) SetNillableBaseWeeklyPoints(v *int) *BudgetAccountUpdate {
	if v != nil {
		_u.SetBaseWeeklyPoints(*v)
	}
	return _u
}

// AddBaseWeeklyPoints adds value to the "base_weekly_points" field.
func (_u *BudgetAccountUpdate) AddBaseWeeklyPoints(v int) *BudgetAccountUpdate {
	_u.mutation.AddBaseWeeklyPoints(v)
	return _u
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_u *BudgetAccountUpdate) SetCurrentPeriodStart(v time.Time) *BudgetAccountUpdate {
	_u.mutation.SetCurrentPeriodStart(v)
	return _u
}

// SetNillableCurrentPeriodStart sets the "current_period_start" field if the given value is not nil.
func (_u *BudgetAccountUpdate) SetNillableCurrentPeriodStart(v *time.Time) *BudgetAccountUpdate {
	if v != nil {
		_u.SetCurrentPeriodStart(*v)
	}
	return _u
}

// SetPointsSpent sets the "points_spent" field.
func (_u *BudgetAccountUpdate) SetPointsSpent(v int) *BudgetAccountUpdate {
	_u.mutation.ResetPointsSpent()
	_u.mutation.SetPointsSpent(v)
	return _u
}

// SetNillablePointsSpent sets the "points_spent" field if the given value is not nil.
func (_u *BudgetAccountUpdate) SetNillablePointsSpent(v *int) *BudgetAccountUpdate {
	if v != nil {
		_u.SetPointsSpent(*v)
	}
	return _u
}

// AddPointsSpent adds value to the "points_spent" field.
func (_u *BudgetAccountUpdate) AddPointsSpent(v int) *BudgetAccountUpdate {
	_u.mutation.AddPointsSpent(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetAccountUpdate) SetUpdatedAt(v time.Time) *BudgetAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetAccountMutation object of the builder.
func (_u *BudgetAccountUpdate) Mutation() *BudgetAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetAccountUpdate) check() error {
	if v, ok := _u.mutation.AccountType(); ok {
		if err := budgetaccount.AccountTypeValidator(v); err != nil {
			return &ValidationError{Name: "account_type", err: fmt.Errorf(`ent: validator failed for field "BudgetAccount.account_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetaccount.Table, budgetaccount.Columns, sqlgraph.NewFieldSpec(budgetaccount.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountType(); ok {
		_spec.SetField(budgetaccount.FieldAccountType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseWeeklyPoints(); ok {
		_spec.SetField(budgetaccount.FieldBaseWeeklyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaseWeeklyPoints(); ok {
		_spec.AddField(budgetaccount.FieldBaseWeeklyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(budgetaccount.FieldCurrentPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PointsSpent(); ok {
		_spec.SetField(budgetaccount.FieldPointsSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsSpent(); ok {
		_spec.AddField(budgetaccount.FieldPointsSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetAccountUpdateOne is the builder for updating a single BudgetAccount entity.
type BudgetAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetAccountMutation
}

// SetAccountType sets the "account_type" field.
func (_u *BudgetAccountUpdateOne) SetAccountType(v budgetaccount.AccountType) *BudgetAccountUpdateOne {
	_u.mutation.SetAccountType(v)
	return _u
}

// SetNillableAccountType sets the "account_type" field if the given value is not nil.
func (_u *BudgetAccountUpdateOne) SetNillableAccountType(v *budgetaccount.AccountType) *BudgetAccountUpdateOne {
	if v != nil {
		_u.SetAccountType(*v)
	}
	return _u
}

// SetBaseWeeklyPoints sets the "base_weekly_points" field.
func (_u *BudgetAccountUpdateOne) SetBaseWeeklyPoints(v int) *BudgetAccountUpdateOne {
	_u.mutation.ResetBaseWeeklyPoints()
	_u.mutation.SetBaseWeeklyPoints(v)
	return _u
}

// SetNillableBaseWeeklyPoints sets the "base_weekly_points" field if the given value is not nil.
func (_u *BudgetAccountUpdateOne) SetNillableBaseWeeklyPoints(v *int) *BudgetAccountUpdateOne {
	if v != nil {
		_u.SetBaseWeeklyPoints(*v)
	}
	return _u
}

// AddBaseWeeklyPoints adds value to the "base_weekly_points" field.
func (_u *BudgetAccountUpdateOne) AddBaseWeeklyPoints(v int) *BudgetAccountUpdateOne {
	_u.mutation.AddBaseWeeklyPoints(v)
	return _u
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_u *BudgetAccountUpdateOne) SetCurrentPeriodStart(v time.Time) *BudgetAccountUpdateOne {
	_u.mutation.SetCurrentPeriodStart(v)
	return _u
}

// SetNillableCurrentPeriodStart sets the "current_period_start" field if the given value is not nil.
func (_u *BudgetAccountUpdateOne) SetNillableCurrentPeriodStart(v *time.Time) *BudgetAccountUpdateOne {
	if v != nil {
		_u.SetCurrentPeriodStart(*v)
	}
	return _u
}

// SetPointsSpent sets the "points_spent" field.
func (_u *BudgetAccountUpdateOne) SetPointsSpent(v int) *BudgetAccountUpdateOne {
	_u.mutation.ResetPointsSpent()
	_u.mutation.SetPointsSpent(v)
	return _u
}

// SetNillablePointsSpent sets the "points_spent" field if the given value is not nil.
func (_u *BudgetAccountUpdateOne) SetNillablePointsSpent(v *int) *BudgetAccountUpdateOne {
	if v != nil {
		_u.SetPointsSpent(*v)
	}
	return _u
}

// AddPointsSpent adds value to the "points_spent" field.
func (_u *BudgetAccountUpdateOne) AddPointsSpent(v int) *BudgetAccountUpdateOne {
	_u.mutation.AddPointsSpent(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetAccountUpdateOne) SetUpdatedAt(v time.Time) *BudgetAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetAccountMutation object of the builder.
func (_u *BudgetAccountUpdateOne) Mutation() *BudgetAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the BudgetAccountUpdate builder.
func (_u *BudgetAccountUpdateOne) Where(ps ...predicate.BudgetAccount) *BudgetAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetAccountUpdateOne) Select(field string, fields ...string) *BudgetAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BudgetAccount entity.
func (_u *BudgetAccountUpdateOne) Save(ctx context.Context) (*BudgetAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetAccountUpdateOne) SaveX(ctx context.Context) *BudgetAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetAccountUpdateOne) check() error {
	if v, ok := _u.mutation.AccountType(); ok {
		if err := budgetaccount.AccountTypeValidator(v); err != nil {
			return &ValidationError{Name: "account_type", err: fmt.Errorf(`ent: validator failed for field "BudgetAccount.account_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetAccountUpdateOne) sqlSave(ctx context.Context) (_node *BudgetAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetaccount.Table, budgetaccount.Columns, sqlgraph.NewFieldSpec(budgetaccount.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BudgetAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budgetaccount.FieldID)
		for _, f := range fields {
			if !budgetaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budgetaccount.FieldID {
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
	if value, ok := _u.mutation.AccountType(); ok {
		_spec.SetField(budgetaccount.FieldAccountType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseWeeklyPoints(); ok {
		_spec.SetField(budgetaccount.FieldBaseWeeklyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaseWeeklyPoints(); ok {
		_spec.AddField(budgetaccount.FieldBaseWeeklyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(budgetaccount.FieldCurrentPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PointsSpent(); ok {
		_spec.SetField(budgetaccount.FieldPointsSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsSpent(); ok {
		_spec.AddField(budgetaccount.FieldPointsSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BudgetAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
