// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/budgetaccount"
)

// BudgetAccountCreate is the builder for creating a BudgetAccount entity.
type BudgetAccountCreate struct {
	config
	mutation *BudgetAccountMutation
	hooks    []Hook
}

// SetAccountType sets the "account_type" field.
func (_c *BudgetAccountCreate) SetAccountType(v budgetaccount.AccountType) *BudgetAccountCreate {
	_c.mutation.SetAccountType(v)
	return _c
}

// SetBaseWeeklyPoints sets the "base_weekly_points" field.
func (_c *BudgetAccountCreate) SetBaseWeeklyPoints(v int) *BudgetAccountCreate {
	_c.mutation.SetBaseWeeklyPoints(v)
	return _c
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_c *BudgetAccountCreate) SetCurrentPeriodStart(v time.Time) *BudgetAccountCreate {
	_c.mutation.SetCurrentPeriodStart(v)
	return _c
}

// SetPointsSpent sets the "points_spent" field.
func (_c *BudgetAccountCreate) SetPointsSpent(v int) *BudgetAccountCreate {
	_c.mutation.SetPointsSpent(v)
	return _c
}

// SetNillablePointsSpent sets the "points_spent" field if the given value is not nil.
func (_c *BudgetAccountCreate) SetNillablePointsSpent(v *int) *BudgetAccountCreate {
	if v != nil {
		_c.SetPointsSpent(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetAccountCreate) SetUpdatedAt(v time.Time) *BudgetAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetAccountCreate) SetNillableUpdatedAt(v *time.Time) *BudgetAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetAccountCreate) SetID(v string) *BudgetAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BudgetAccountMutation object of the builder.
func (_c *BudgetAccountCreate) Mutation() *BudgetAccountMutation {
	return _c.mutation
}

// Save creates the BudgetAccount in the database.
func (_c *BudgetAccountCreate) Save(ctx context.Context) (*BudgetAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetAccountCreate) SaveX(ctx context.Context) *BudgetAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetAccountCreate) defaults() {
	if _, ok := _c.mutation.PointsSpent(); !ok {
		v := budgetaccount.DefaultPointsSpent
		_c.mutation.SetPointsSpent(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budgetaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetAccountCreate) check() error {
	if _, ok := _c.mutation.AccountType(); !ok {
		return &ValidationError{Name: "account_type", err: errors.New(`ent: missing required field "BudgetAccount.account_type"`)}
	}
	if v, ok := _c.mutation.AccountType(); ok {
		if err := budgetaccount.AccountTypeValidator(v); err != nil {
			return &ValidationError{Name: "account_type", err: fmt.Errorf(`ent: validator failed for field "BudgetAccount.account_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseWeeklyPoints(); !ok {
		return &ValidationError{Name: "base_weekly_points", err: errors.New(`ent: missing required field "BudgetAccount.base_weekly_points"`)}
	}
	if _, ok := _c.mutation.CurrentPeriodStart(); !ok {
		return &ValidationError{Name: "current_period_start", err: errors.New(`ent: missing required field "BudgetAccount.current_period_start"`)}
	}
	if _, ok := _c.mutation.PointsSpent(); !ok {
		return &ValidationError{Name: "points_spent", err: errors.New(`ent: missing required field "BudgetAccount.points_spent"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BudgetAccount.updated_at"`)}
	}
	return nil
}

func (_c *BudgetAccountCreate) sqlSave(ctx context.Context) (*BudgetAccount, error) {
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
			return nil, fmt.Errorf("unexpected BudgetAccount.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetAccountCreate) createSpec() (*BudgetAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &BudgetAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budgetaccount.Table, sqlgraph.NewFieldSpec(budgetaccount.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AccountType(); ok {
		_spec.SetField(budgetaccount.FieldAccountType, field.TypeEnum, value)
		_node.AccountType = value
	}
	if value, ok := _c.mutation.BaseWeeklyPoints(); ok {
		_spec.SetField(budgetaccount.FieldBaseWeeklyPoints, field.TypeInt, value)
		_node.BaseWeeklyPoints = value
	}
	if value, ok := _c.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(budgetaccount.FieldCurrentPeriodStart, field.TypeTime, value)
		_node.CurrentPeriodStart = value
	}
	if value, ok := _c.mutation.PointsSpent(); ok {
		_spec.SetField(budgetaccount.FieldPointsSpent, field.TypeInt, value)
		_node.PointsSpent = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BudgetAccountCreateBulk is the builder for creating many BudgetAccount entities in bulk.
type BudgetAccountCreateBulk struct {
	config
	err      error
	builders []*BudgetAccountCreate
}

// Save creates the BudgetAccount entities in the database.
func (_c *BudgetAccountCreateBulk) Save(ctx context.Context) ([]*BudgetAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BudgetAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetAccountMutation)
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
func (_c *BudgetAccountCreateBulk) SaveX(ctx context.Context) []*BudgetAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
