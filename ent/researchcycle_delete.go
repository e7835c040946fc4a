// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/predicate"
	"github.com/NoAme666/aiquant/ent/researchcycle"
)

// ResearchCycleDelete is the builder for deleting a ResearchCycle entity.
type ResearchCycleDelete struct {
	config
	hooks    []Hook
	mutation *ResearchCycleMutation
}

// Where appends a list predicates to the ResearchCycleDelete builder.
func (_d *ResearchCycleDelete) Where(ps ...predicate.ResearchCycle) *ResearchCycleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ResearchCycleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResearchCycleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ResearchCycleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(researchcycle.Table, sqlgraph.NewFieldSpec(researchcycle.FieldID, field.TypeString))
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

// ResearchCycleDeleteOne is the builder for deleting a single ResearchCycle entity.
type ResearchCycleDeleteOne struct {
	_d *ResearchCycleDelete
}

// Where appends a list predicates to the ResearchCycleDelete builder.
func (_d *ResearchCycleDeleteOne) Where(ps ...predicate.ResearchCycle) *ResearchCycleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ResearchCycleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{researchcycle.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResearchCycleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
