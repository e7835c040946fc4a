// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/governancedecision"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// GovernanceDecisionUpdate is the builder for updating GovernanceDecision entities.
type GovernanceDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *GovernanceDecisionMutation
}

// Where appends a list predicates to the GovernanceDecisionUpdate builder.
func (_u *GovernanceDecisionUpdate) Where(ps ...predicate.GovernanceDecision) *GovernanceDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *GovernanceDecisionUpdate) SetParticipants(v []string) *GovernanceDecisionUpdate {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *GovernanceDecisionUpdate) AppendParticipants(v []string) *GovernanceDecisionUpdate {
	_u.mutation.AppendParticipants(v)
	return _u
}

// SetApprovalRate sets the "approval_rate" field.
func (_u *GovernanceDecisionUpdate) SetApprovalRate(v float64) *GovernanceDecisionUpdate {
	_u.mutation.ResetApprovalRate()
	_u.mutation.SetApprovalRate(v)
	return _u
}

// SetNillableApprovalRate sets the "approval_rate" field if the given value is not nil.
func (_u *GovernanceDecisionUpdate) SetNillableApprovalRate(v *float64) *GovernanceDecisionUpdate {
	if v != nil {
		_u.SetApprovalRate(*v)
	}
	return _u
}

// AddApprovalRate adds value to the "approval_rate" field.
func (_u *GovernanceDecisionUpdate) AddApprovalRate(v float64) *GovernanceDecisionUpdate {
	_u.mutation.AddApprovalRate(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *GovernanceDecisionUpdate) SetOutcome(v governancedecision.Outcome) *GovernanceDecisionUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *GovernanceDecisionUpdate) SetNillableOutcome(v *governancedecision.Outcome) *GovernanceDecisionUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the GovernanceDecisionMutation object of the builder.
func (_u *GovernanceDecisionUpdate) Mutation() *GovernanceDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GovernanceDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GovernanceDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GovernanceDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GovernanceDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GovernanceDecisionUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := governancedecision.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "GovernanceDecision.outcome": %w`, err)}
		}
	}
	if _u.mutation.RuleCleared() && len(_u.mutation.RuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GovernanceDecision.rule"`)
	}
	return nil
}

func (_u *GovernanceDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(governancedecision.Table, governancedecision.Columns, sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(governancedecision.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, governancedecision.FieldParticipants, value)
		})
	}
	if value, ok := _u.mutation.ApprovalRate(); ok {
		_spec.SetField(governancedecision.FieldApprovalRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedApprovalRate(); ok {
		_spec.AddField(governancedecision.FieldApprovalRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(governancedecision.FieldOutcome, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{governancedecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GovernanceDecisionUpdateOne is the builder for updating a single GovernanceDecision entity.
type GovernanceDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GovernanceDecisionMutation
}

// SetParticipants sets the "participants" field.
func (_u *GovernanceDecisionUpdateOne) SetParticipants(v []string) *GovernanceDecisionUpdateOne {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *GovernanceDecisionUpdateOne) AppendParticipants(v []string) *GovernanceDecisionUpdateOne {
	_u.mutation.AppendParticipants(v)
	return _u
}

// SetApprovalRate sets the "approval_rate" field.
func (_u *GovernanceDecisionUpdateOne) SetApprovalRate(v float64) *GovernanceDecisionUpdateOne {
	_u.mutation.ResetApprovalRate()
	_u.mutation.SetApprovalRate(v)
	return _u
}

// SetNillableApprovalRate sets the "approval_rate" field if the given value is not nil.
func (_u *GovernanceDecisionUpdateOne) SetNillableApprovalRate(v *float64) *GovernanceDecisionUpdateOne {
	if v != nil {
		_u.SetApprovalRate(*v)
	}
	return _u
}

// AddApprovalRate adds value to the "approval_rate" field.
func (_u *GovernanceDecisionUpdateOne) AddApprovalRate(v float64) *GovernanceDecisionUpdateOne {
	_u.mutation.AddApprovalRate(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *GovernanceDecisionUpdateOne) SetOutcome(v governancedecision.Outcome) *GovernanceDecisionUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *GovernanceDecisionUpdateOne) SetNillableOutcome(v *governancedecision.Outcome) *GovernanceDecisionUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the GovernanceDecisionMutation object of the builder.
func (_u *GovernanceDecisionUpdateOne) Mutation() *GovernanceDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GovernanceDecisionUpdate builder.
func (_u *GovernanceDecisionUpdateOne) Where(ps ...predicate.GovernanceDecision) *GovernanceDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GovernanceDecisionUpdateOne) Select(field string, fields ...string) *GovernanceDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GovernanceDecision entity.
func (_u *GovernanceDecisionUpdateOne) Save(ctx context.Context) (*GovernanceDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GovernanceDecisionUpdateOne) SaveX(ctx context.Context) *GovernanceDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GovernanceDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GovernanceDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GovernanceDecisionUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := governancedecision.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "GovernanceDecision.outcome": %w`, err)}
		}
	}
	if _u.mutation.RuleCleared() && len(_u.mutation.RuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GovernanceDecision.rule"`)
	}
	return nil
}

func (_u *GovernanceDecisionUpdateOne) sqlSave(ctx context.Context) (_node *GovernanceDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(governancedecision.Table, governancedecision.Columns, sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GovernanceDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, governancedecision.FieldID)
		for _, f := range fields {
			if !governancedecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != governancedecision.FieldID {
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
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(governancedecision.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, governancedecision.FieldParticipants, value)
		})
	}
	if value, ok := _u.mutation.ApprovalRate(); ok {
		_spec.SetField(governancedecision.FieldApprovalRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedApprovalRate(); ok {
		_spec.AddField(governancedecision.FieldApprovalRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(governancedecision.FieldOutcome, field.TypeEnum, value)
	}
	_node = &GovernanceDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{governancedecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
