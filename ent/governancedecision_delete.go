// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/governancedecision"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// GovernanceDecisionDelete is the builder for deleting a GovernanceDecision entity.
type GovernanceDecisionDelete struct {
	config
	hooks    []Hook
	mutation *GovernanceDecisionMutation
}

// Where appends a list predicates to the GovernanceDecisionDelete builder.
func (_d *GovernanceDecisionDelete) Where(ps ...predicate.GovernanceDecision) *GovernanceDecisionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GovernanceDecisionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GovernanceDecisionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GovernanceDecisionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(governancedecision.Table, sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GovernanceDecisionDeleteOne is the builder for deleting a single GovernanceDecision entity.
type GovernanceDecisionDeleteOne struct {
	_d *GovernanceDecisionDelete
}

// Where appends a list predicates to the GovernanceDecisionDelete builder.
func (_d *GovernanceDecisionDeleteOne) Where(ps ...predicate.GovernanceDecision) *GovernanceDecisionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GovernanceDecisionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{governancedecision.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GovernanceDecisionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
